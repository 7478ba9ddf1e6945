package httpapi

import (
    "github.com/tinoosan/players/internal/storage/file"
    "github.com/tinoosan/players/internal/storage/memory"
    "github.com/tinoosan/players/internal/storage/mongodb"
    "github.com/tinoosan/players/internal/storage/postgres"
)

// Compile-time assertions: every backend exposes readiness to /readyz.
var (
    _ ReadyChecker = (*file.Store)(nil)
    _ ReadyChecker = (*memory.Store)(nil)
    _ ReadyChecker = (*postgres.Store)(nil)
    _ ReadyChecker = (*mongodb.Store)(nil)
)
