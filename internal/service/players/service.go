// Package players implements the player store rules: server-assigned ids,
// replace-or-create, merge-only patch and serialized read-modify-write.
package players

import (
    "context"
    "errors"
    "log/slog"
    "sync"

    "github.com/google/uuid"
    "github.com/tinoosan/players/internal/errs"
    "github.com/tinoosan/players/internal/roster"
)

// Repo defines read operations needed by the service.
type Repo interface {
    List(ctx context.Context) ([]roster.Player, error)
    // Get returns errs.ErrNotFound when no player has the id.
    Get(ctx context.Context, id string) (roster.Player, error)
}

// Writer defines write operations needed by the service.
type Writer interface {
    // Put inserts p, or replaces the player with the same id keeping its position.
    Put(ctx context.Context, p roster.Player) (roster.Player, error)
    // Delete returns errs.ErrNotFound when no player has the id.
    Delete(ctx context.Context, id string) error
}

// Store is the full storage capability; every backend satisfies it.
type Store interface {
    Repo
    Writer
}

type Service interface {
    List(ctx context.Context) ([]roster.Player, error)
    Create(ctx context.Context, u roster.Update) (roster.Player, error)
    Get(ctx context.Context, id string) (roster.Player, error)
    Replace(ctx context.Context, id string, u roster.Update) (roster.Player, bool, error)
    Patch(ctx context.Context, id string, u roster.Update) (roster.Player, error)
    Delete(ctx context.Context, id string) error
}

// Option customizes a service.
type Option func(*service)

// WithIDGenerator replaces the default uuid-based id generator.
func WithIDGenerator(gen func() string) Option {
    return func(s *service) { if gen != nil { s.newID = gen } }
}

// WithLogger sets the logger used for mutation logs.
func WithLogger(l *slog.Logger) Option {
    return func(s *service) { if l != nil { s.log = l } }
}

type service struct {
    repo   Repo
    writer Writer
    newID  func() string
    log    *slog.Logger
    // mu serializes every read-modify-write so concurrent writers cannot lose updates.
    mu     sync.Mutex
}

func New(repo Repo, writer Writer, opts ...Option) Service {
    s := &service{repo: repo, writer: writer, newID: uuid.NewString, log: slog.Default()}
    for _, o := range opts { o(s) }
    return s
}

func (s *service) List(ctx context.Context) ([]roster.Player, error) {
    out, err := s.repo.List(ctx)
    if err != nil { return nil, err }
    if out == nil { out = []roster.Player{} }
    return out, nil
}

func (s *service) Get(ctx context.Context, id string) (roster.Player, error) {
    if id == "" { return roster.Player{}, errs.ErrNotFound }
    return s.repo.Get(ctx, id)
}

// Create assigns a fresh id; any id the client sent is never part of u.
func (s *service) Create(ctx context.Context, u roster.Update) (roster.Player, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.createLocked(ctx, u)
}

// Replace overwrites the player's fields when id exists, otherwise creates a new
// player under a fresh id (the path id is not reused). The bool reports creation.
func (s *service) Replace(ctx context.Context, id string, u roster.Update) (roster.Player, bool, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    current, err := s.getForWrite(ctx, id)
    if errors.Is(err, errs.ErrNotFound) {
        created, err := s.createLocked(ctx, u)
        return created, err == nil, err
    }
    if err != nil { return roster.Player{}, false, err }
    current.Replace(u)
    saved, err := s.writer.Put(ctx, current)
    if err != nil { return roster.Player{}, false, err }
    s.log.DebugContext(ctx, "player replaced", "player_id", saved.ID)
    return saved, false, nil
}

// Patch applies only the provided fields. An empty update returns the stored player unchanged.
func (s *service) Patch(ctx context.Context, id string, u roster.Update) (roster.Player, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    current, err := s.getForWrite(ctx, id)
    if err != nil { return roster.Player{}, err }
    if u.Empty() { return current, nil }
    current.Apply(u)
    saved, err := s.writer.Put(ctx, current)
    if err != nil { return roster.Player{}, err }
    s.log.DebugContext(ctx, "player patched", "player_id", saved.ID)
    return saved, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
    if id == "" { return errs.ErrNotFound }
    s.mu.Lock()
    defer s.mu.Unlock()
    if err := s.writer.Delete(ctx, id); err != nil { return err }
    s.log.DebugContext(ctx, "player deleted", "player_id", id)
    return nil
}

// createLocked builds and persists a new player. Caller must hold s.mu.
func (s *service) createLocked(ctx context.Context, u roster.Update) (roster.Player, error) {
    p := roster.New(s.newID(), u)
    saved, err := s.writer.Put(ctx, p)
    if err != nil { return roster.Player{}, err }
    s.log.DebugContext(ctx, "player created", "player_id", saved.ID)
    return saved, nil
}

func (s *service) getForWrite(ctx context.Context, id string) (roster.Player, error) {
    if id == "" { return roster.Player{}, errs.ErrNotFound }
    return s.repo.Get(ctx, id)
}
