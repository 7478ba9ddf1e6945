package postgres

import "github.com/tinoosan/players/internal/service/players"

// Compile-time interface assertions documenting which interfaces Store satisfies.
var _ players.Store = (*Store)(nil)
