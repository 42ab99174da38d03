// internal/mapsdb/mapsdb.go
//
// SQLite-backed index of clue maps. For every number in the playable digit
// range, and every clue kind, the index stores the number under the
// canonical key of its clue map. The solver then asks: which numbers share
// this exact map with the answer?
//
// Special-property kinds (prime/perfect/fibonacci) depend on the
// difficulty's run limit, so their rows are scoped per difficulty; every
// other kind produces the same map at any difficulty and is stored once
// under a shared scope.
package mapsdb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/dafrizzy/digits/internal/clue"
	"github.com/dafrizzy/digits/internal/numutil"
)

const sharedScope = "all"

// scopeFor returns the storage scope of a clue key at a difficulty.
func scopeFor(key string, d clue.Difficulty) string {
	switch key {
	case clue.KeyPrime, clue.KeyPerfect, clue.KeyFibonacci:
		return string(d)
	default:
		return sharedScope
	}
}

// Store reads match lists out of the index.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// EnsureSchema creates the index tables. Idempotent.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS clue_maps (
            scope    TEXT    NOT NULL,
            clue_key TEXT    NOT NULL,
            map_key  TEXT    NOT NULL,
            number   INTEGER NOT NULL
        );
        CREATE INDEX IF NOT EXISTS idx_clue_maps_lookup
            ON clue_maps(scope, clue_key, map_key);
        CREATE TABLE IF NOT EXISTS clue_maps_built (
            scope      TEXT    NOT NULL,
            clue_key   TEXT    NOT NULL,
            num_digits INTEGER NOT NULL,
            PRIMARY KEY (scope, clue_key, num_digits)
        );`)
	if err != nil {
		return fmt.Errorf("create clue_maps schema: %w", err)
	}
	return nil
}

// Matches returns every numDigits-long number whose map for key equals
// mapKey at difficulty d. The answer itself is always among them.
func (s *Store) Matches(ctx context.Context, d clue.Difficulty, key, mapKey string, numDigits int) ([]int, error) {
	lo, hi := digitBounds(numDigits)
	rows, err := s.db.QueryContext(ctx, `
        SELECT number FROM clue_maps
        WHERE scope=? AND clue_key=? AND map_key=? AND number BETWEEN ? AND ?
        ORDER BY number`,
		scopeFor(key, d), key, mapKey, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("query clue_maps %s/%s: %w", key, mapKey, err)
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// Builder populates the index. Build is idempotent: each (scope, key,
// digit-count) slice is recorded in clue_maps_built once written, in the
// same bookkeeping spirit as the SQL migrations table.
type Builder struct {
	db *sql.DB
}

func NewBuilder(db *sql.DB) *Builder { return &Builder{db: db} }

// Build indexes every number with minDigits..maxDigits digits for every
// clue kind and scope that is not already present.
func (b *Builder) Build(ctx context.Context, minDigits, maxDigits int) error {
	for _, key := range clue.Keys() {
		for _, scope := range scopesOf(key) {
			for n := minDigits; n <= maxDigits; n++ {
				done, err := b.built(ctx, scope, key, n)
				if err != nil {
					return err
				}
				if done {
					continue
				}
				if err := b.buildSlice(ctx, scope, key, n); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func scopesOf(key string) []string {
	switch key {
	case clue.KeyPrime, clue.KeyPerfect, clue.KeyFibonacci:
		return []string{string(clue.Easy), string(clue.Medium), string(clue.Hard)}
	default:
		return []string{sharedScope}
	}
}

func (b *Builder) built(ctx context.Context, scope, key string, numDigits int) (bool, error) {
	var one int
	err := b.db.QueryRowContext(ctx,
		`SELECT 1 FROM clue_maps_built WHERE scope=? AND clue_key=? AND num_digits=?`,
		scope, key, numDigits).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query clue_maps_built: %w", err)
	}
	return true, nil
}

// buildSlice writes one (scope, key, digit-count) slice in a single
// transaction so a crash never leaves a half-indexed slice marked done.
func (b *Builder) buildSlice(ctx context.Context, scope, key string, numDigits int) error {
	lo, hi := digitBounds(numDigits)
	log.Info().Str("clue", key).Str("scope", scope).Int("digits", numDigits).
		Msg("indexing clue maps")

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO clue_maps (scope, clue_key, map_key, number) VALUES (?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	d := difficultyOf(scope)
	for val := lo; val <= hi; val++ {
		mapKey := clue.MapKeyFor(key, numutil.NumToDigits(val), d)
		if _, err := stmt.ExecContext(ctx, scope, key, mapKey, val); err != nil {
			return fmt.Errorf("index %d under %s/%s: %w", val, scope, key, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO clue_maps_built (scope, clue_key, num_digits) VALUES (?,?,?)`,
		scope, key, numDigits); err != nil {
		return fmt.Errorf("record built slice: %w", err)
	}
	return tx.Commit()
}

// difficultyOf maps a storage scope back to the difficulty whose run limit
// applies; the shared scope is limit-independent so any difficulty works.
func difficultyOf(scope string) clue.Difficulty {
	if scope == sharedScope {
		return clue.Hard
	}
	return clue.Difficulty(scope)
}

// digitBounds returns the inclusive number range with exactly n digits.
func digitBounds(n int) (int, int) {
	lo := 1
	for i := 1; i < n; i++ {
		lo *= 10
	}
	return lo, lo*10 - 1
}
