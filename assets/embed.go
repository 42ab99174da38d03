// Package assets embeds everything the server ships besides Go code: the
// HTML templates, the static files (digit widget script, stylesheet), and
// the SQL migrations.
package assets

import "embed"

//go:embed templates/*.html static/* sql/*.sql
var FS embed.FS
