package memory

import "github.com/tinoosan/players/internal/service/players"

// Compile-time interface assertions documenting which interfaces Store satisfies.
var (
	_ players.Repo   = (*Store)(nil)
	_ players.Writer = (*Store)(nil)
	_ players.Store  = (*Store)(nil)
)
