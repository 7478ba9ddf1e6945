package postgres

// Package postgres provides a pgx-backed player store that satisfies the
// repo and writer interfaces used by the player service.
//
// The schema lives under db/migrations. Insertion order is kept by the seq
// column, which an upsert never touches.

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"

    "github.com/jackc/pgx/v5"
    "github.com/jackc/pgx/v5/pgxpool"

    "github.com/tinoosan/players/internal/errs"
    "github.com/tinoosan/players/internal/roster"
)

// Store holds a pgx connection pool. All methods are safe for concurrent use.
type Store struct {
    pool *pgxpool.Pool
}

// Open establishes a pgx pool using the provided connection string.
func Open(ctx context.Context, dsn string) (*Store, error) {
    cfg, err := pgxpool.ParseConfig(dsn)
    if err != nil { return nil, err }
    pool, err := pgxpool.NewWithConfig(ctx, cfg)
    if err != nil { return nil, err }
    // Verify connection
    if err := pool.Ping(ctx); err != nil { pool.Close(); return nil, err }
    return &Store{pool: pool}, nil
}

// Close releases the underlying pool.
func (s *Store) Close() { if s.pool != nil { s.pool.Close() } }

// Ready pings the pool to verify connectivity.
func (s *Store) Ready(ctx context.Context) error { return s.pool.Ping(ctx) }

// List returns all players in insertion order.
func (s *Store) List(ctx context.Context) ([]roster.Player, error) {
    rows, err := s.pool.Query(ctx, `
        select id, name, country, rank
        from players
        order by seq asc
    `)
    if err != nil { return nil, fmt.Errorf("list players: %w", err) }
    defer rows.Close()
    out := make([]roster.Player, 0)
    for rows.Next() {
        p, err := scanPlayer(rows)
        if err != nil { return nil, err }
        out = append(out, p)
    }
    return out, rows.Err()
}

// Get fetches a single player by id.
func (s *Store) Get(ctx context.Context, id string) (roster.Player, error) {
    row := s.pool.QueryRow(ctx, `
        select id, name, country, rank
        from players
        where id = $1
    `, id)
    p, err := scanPlayer(row)
    if errors.Is(err, pgx.ErrNoRows) { return roster.Player{}, errs.ErrNotFound }
    if err != nil { return roster.Player{}, err }
    return p, nil
}

// Put inserts a player or overwrites name/country/rank of the existing row.
func (s *Store) Put(ctx context.Context, p roster.Player) (roster.Player, error) {
    _, err := s.pool.Exec(ctx, `
        insert into players (id, name, country, rank)
        values ($1, $2, $3, $4)
        on conflict (id) do update
        set name = excluded.name, country = excluded.country, rank = excluded.rank
    `, p.ID, jsonbArg(p.Name), jsonbArg(p.Country), jsonbArg(p.Rank))
    if err != nil { return roster.Player{}, fmt.Errorf("put player: %w", err) }
    return p, nil
}

// Delete removes a player row.
func (s *Store) Delete(ctx context.Context, id string) error {
    ct, err := s.pool.Exec(ctx, `delete from players where id = $1`, id)
    if err != nil { return fmt.Errorf("delete player: %w", err) }
    if ct.RowsAffected() == 0 { return errs.ErrNotFound }
    return nil
}

func scanPlayer(row pgx.Row) (roster.Player, error) {
    var p roster.Player
    var name, country, rank []byte
    if err := row.Scan(&p.ID, &name, &country, &rank); err != nil { return roster.Player{}, err }
    p.Name, p.Country, p.Rank = jsonbValue(name), jsonbValue(country), jsonbValue(rank)
    return p, nil
}

// jsonbArg passes an absent field as SQL NULL and anything else as raw JSON.
func jsonbArg(v json.RawMessage) []byte {
    if len(v) == 0 { return nil }
    return []byte(v)
}

func jsonbValue(b []byte) json.RawMessage {
    if len(b) == 0 { return nil }
    return json.RawMessage(b)
}
