// internal/httpserver/server.go
//
// HTTP wiring for the digits game.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts).
//   - Page routes: setup ("/") and guess ("/guess"), plus "/health" and
//     the embedded static files.
//   - Session cookie handling: an HS256 JWT carries the player ID, the
//     active game-session ID, and the CSRF token.
//   - Best-effort persistence of game rows and player stats to SQLite.

package httpserver

import (
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/dafrizzy/digits/assets"
	"github.com/dafrizzy/digits/internal/solver"
	"github.com/dafrizzy/digits/internal/store"
)

// Options carries the cookie/signing settings and the playable
// digit-count range from the config.
type Options struct {
	SessionSecret string
	CookieName    string
	Secure        bool
	MinDigits     int
	MaxDigits     int
}

// Server bundles router, session store, solver, and DB handle.
type Server struct {
	r      *chi.Mux
	store  store.Store
	db     *sql.DB
	solver *solver.Solver
	tmpl   *template.Template
	opts   Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, db *sql.DB, sv *solver.Solver, opts Options) *Server {
	if opts.CookieName == "" {
		opts.CookieName = "digits_session"
	}
	if opts.MinDigits == 0 {
		opts.MinDigits = 3
	}
	if opts.MaxDigits == 0 {
		opts.MaxDigits = 6
	}
	s := &Server{
		r:      chi.NewRouter(),
		store:  st,
		db:     db,
		solver: sv,
		tmpl:   mustParseTemplates(),
		opts:   opts,
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(15 * time.Second))

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	staticFS, _ := fs.Sub(assets.FS, "static")
	s.r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.FS(staticFS))))

	s.r.Get("/", s.handleSetupPage)
	s.r.Post("/", s.handleStartGame)
	s.r.Get("/guess", s.handleGuessPage)
	s.r.Post("/guess", s.handleGuessAction)

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

func mustParseTemplates() *template.Template {
	t := template.New("").Funcs(template.FuncMap{
		"fieldNum": func(i int) int { return i + 1 },
	})
	return template.Must(t.ParseFS(assets.FS, "templates/*.html"))
}

// ------------------------------ sessions ------------------------------------

// session is what the signed cookie carries across requests.
type session struct {
	PlayerID string
	GameID   string
	CSRF     string
}

// loadSession reads and verifies the session cookie, minting a fresh
// session when the cookie is missing or invalid. Fresh sessions are
// written back immediately so the first rendered form already holds a
// verifiable CSRF token.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) session {
	if c, err := r.Cookie(s.opts.CookieName); err == nil && c.Value != "" {
		claims := jwt.MapClaims{}
		tok, err := jwt.ParseWithClaims(c.Value, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(s.opts.SessionSecret), nil
		})
		if err == nil && tok.Valid {
			pid, _ := claims["pid"].(string)
			gid, _ := claims["gid"].(string)
			csrf, _ := claims["csrf"].(string)
			if pid != "" && csrf != "" {
				return session{PlayerID: pid, GameID: gid, CSRF: csrf}
			}
		}
	}
	sess := session{PlayerID: genID(), CSRF: genID()}
	s.saveSession(w, sess)
	return sess
}

// saveSession signs the session into the cookie.
func (s *Server) saveSession(w http.ResponseWriter, sess session) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"pid":  sess.PlayerID,
		"gid":  sess.GameID,
		"csrf": sess.CSRF,
		"iat":  time.Now().Unix(),
	})
	signed, err := t.SignedString([]byte(s.opts.SessionSecret))
	if err != nil {
		log.Error().Err(err).Msg("sign session cookie")
		return
	}
	sameSite := http.SameSiteLaxMode
	if s.opts.Secure {
		sameSite = http.SameSiteStrictMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.Secure,
		SameSite: sameSite,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
	})
}

// checkCSRF compares the form token with the session's token.
func checkCSRF(r *http.Request, sess session) bool {
	return r.PostFormValue("csrf_token") == sess.CSRF && sess.CSRF != ""
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}

// render executes a template, logging and failing the request on error.
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("render")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
