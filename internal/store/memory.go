// internal/store/memory.go
//
// In-memory implementation of the game-session Store. Sessions live for
// the duration of a play-through and are keyed by the ID carried in the
// player's session cookie; restarting the server forgets them, which just
// sends the player back to the setup page.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/dafrizzy/digits/internal/game"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("game not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save persists or updates a game session.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game session by ID; ErrNotFound if missing.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Delete removes a finished session. Unknown IDs are a no-op.
	Delete(ctx context.Context, id string) error
}

// memory is a map-based Store guarded by an RWMutex.
type memory struct {
	mu    sync.RWMutex
	games map[string]*game.Game
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	return nil
}
