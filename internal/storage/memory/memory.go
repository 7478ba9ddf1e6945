package memory

// Package memory provides a simple in-memory implementation used for development and tests.
// It keeps code paths easy to follow while allowing the file or DB backends to be swapped in.
import (
    "context"
    "sync"

    "github.com/tinoosan/players/internal/errs"
    "github.com/tinoosan/players/internal/roster"
)

// Store is an in-memory implementation of the player repo+writer.
// It is guarded by an RWMutex for concurrent reads/writes.
type Store struct {
    mu      sync.RWMutex
    // order keeps insertion order of ids; byID holds the records.
    order   []string
    players map[string]roster.Player
}

// New constructs an empty in-memory store.
func New() *Store {
    return &Store{players: make(map[string]roster.Player)}
}

// Seed inserts players for local dev/tests, bypassing id generation.
func (s *Store) Seed(players ...roster.Player) {
    s.mu.Lock(); defer s.mu.Unlock()
    for _, p := range players { s.putLocked(p) }
}

func (s *Store) Reset() {
    s.mu.Lock()
    s.order = nil
    s.players = map[string]roster.Player{}
    s.mu.Unlock()
}

// List returns every player in insertion order.
func (s *Store) List(_ context.Context) ([]roster.Player, error) {
    s.mu.RLock(); defer s.mu.RUnlock()
    out := make([]roster.Player, 0, len(s.order))
    for _, id := range s.order {
        out = append(out, s.players[id].Clone())
    }
    return out, nil
}

// Get returns a player by id.
func (s *Store) Get(_ context.Context, id string) (roster.Player, error) {
    s.mu.RLock(); defer s.mu.RUnlock()
    p, ok := s.players[id]
    if !ok { return roster.Player{}, errs.ErrNotFound }
    return p.Clone(), nil
}

// Put inserts or replaces a player.
func (s *Store) Put(_ context.Context, p roster.Player) (roster.Player, error) {
    s.mu.Lock(); defer s.mu.Unlock()
    s.putLocked(p)
    return p.Clone(), nil
}

// Delete removes a player by id.
func (s *Store) Delete(_ context.Context, id string) error {
    s.mu.Lock(); defer s.mu.Unlock()
    if _, ok := s.players[id]; !ok { return errs.ErrNotFound }
    delete(s.players, id)
    for i, oid := range s.order {
        if oid == id {
            s.order = append(s.order[:i], s.order[i+1:]...)
            break
        }
    }
    return nil
}

// Ready always succeeds for the in-memory store.
func (s *Store) Ready(_ context.Context) error { return nil }

// putLocked stores a copy of p. Caller must hold s.mu (write lock).
func (s *Store) putLocked(p roster.Player) {
    if _, exists := s.players[p.ID]; !exists {
        s.order = append(s.order, p.ID)
    }
    s.players[p.ID] = p.Clone()
}
