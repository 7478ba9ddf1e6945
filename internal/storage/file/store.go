// Package file stores the whole player collection as one JSON array in a single file.
// Every call reads and parses the full file; every write re-serializes the full
// array and swaps it in with a rename, so a crash never leaves a half-written file.
package file

import (
    "bytes"
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "sync"

    "github.com/tinoosan/players/internal/errs"
    "github.com/tinoosan/players/internal/roster"
)

// Store is a JSON file backed repo+writer. No state is cached between calls;
// the file is the only source of truth. All methods are safe for concurrent use.
type Store struct {
    path string
    mu   sync.Mutex
}

// New returns a store for path. The file is not touched until the first call.
func New(path string) *Store { return &Store{path: path} }

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

func (s *Store) List(ctx context.Context) ([]roster.Player, error) {
    if err := ctx.Err(); err != nil { return nil, err }
    s.mu.Lock(); defer s.mu.Unlock()
    return s.load()
}

func (s *Store) Get(ctx context.Context, id string) (roster.Player, error) {
    if err := ctx.Err(); err != nil { return roster.Player{}, err }
    s.mu.Lock(); defer s.mu.Unlock()
    all, err := s.load()
    if err != nil { return roster.Player{}, err }
    if i := indexOf(all, id); i >= 0 { return all[i], nil }
    return roster.Player{}, errs.ErrNotFound
}

// Put replaces the player with the same id in place, or appends it.
func (s *Store) Put(ctx context.Context, p roster.Player) (roster.Player, error) {
    if err := ctx.Err(); err != nil { return roster.Player{}, err }
    s.mu.Lock(); defer s.mu.Unlock()
    all, err := s.load()
    if err != nil { return roster.Player{}, err }
    if i := indexOf(all, p.ID); i >= 0 {
        all[i] = p.Clone()
    } else {
        all = append(all, p.Clone())
    }
    if err := s.save(all); err != nil { return roster.Player{}, err }
    return p, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
    if err := ctx.Err(); err != nil { return err }
    s.mu.Lock(); defer s.mu.Unlock()
    all, err := s.load()
    if err != nil { return err }
    i := indexOf(all, id)
    if i < 0 { return errs.ErrNotFound }
    all = append(all[:i], all[i+1:]...)
    return s.save(all)
}

// Ready verifies the backing file (if present) parses.
func (s *Store) Ready(ctx context.Context) error {
    _, err := s.List(ctx)
    return err
}

// load reads the whole collection. A missing or blank file is an empty collection.
// Caller must hold s.mu.
func (s *Store) load() ([]roster.Player, error) {
    b, err := os.ReadFile(s.path)
    if errors.Is(err, os.ErrNotExist) { return []roster.Player{}, nil }
    if err != nil { return nil, fmt.Errorf("read players file: %w", err) }
    if len(bytes.TrimSpace(b)) == 0 { return []roster.Player{}, nil }
    var out []roster.Player
    if err := json.Unmarshal(b, &out); err != nil {
        return nil, fmt.Errorf("parse players file %s: %w", s.path, err)
    }
    if out == nil { out = []roster.Player{} }
    return out, nil
}

// dataFileMode is applied to the temp file so the rename leaves a world-readable data file.
const dataFileMode os.FileMode = 0o644

// save writes the whole collection to a temp file next to the target and renames it over.
// Caller must hold s.mu.
func (s *Store) save(all []roster.Player) error {
    if all == nil { all = []roster.Player{} }
    data, err := json.Marshal(all)
    if err != nil { return fmt.Errorf("marshal players: %w", err) }
    dir := filepath.Dir(s.path)
    if err := os.MkdirAll(dir, 0o755); err != nil { return fmt.Errorf("create data dir: %w", err) }
    tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
    if err != nil { return fmt.Errorf("create temp file: %w", err) }
    tmpName := tmp.Name()
    if _, err := tmp.Write(data); err != nil {
        tmp.Close(); os.Remove(tmpName)
        return fmt.Errorf("write players: %w", err)
    }
    if err := tmp.Chmod(dataFileMode); err != nil {
        tmp.Close(); os.Remove(tmpName)
        return fmt.Errorf("chmod players: %w", err)
    }
    if err := tmp.Sync(); err != nil {
        tmp.Close(); os.Remove(tmpName)
        return fmt.Errorf("sync players: %w", err)
    }
    if err := tmp.Close(); err != nil { os.Remove(tmpName); return fmt.Errorf("close players: %w", err) }
    if err := os.Rename(tmpName, s.path); err != nil {
        os.Remove(tmpName)
        return fmt.Errorf("replace players file: %w", err)
    }
    return nil
}

func indexOf(all []roster.Player, id string) int {
    for i := range all {
        if all[i].ID == id { return i }
    }
    return -1
}
