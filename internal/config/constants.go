package config

import "time"

const (
	envPort            = "PORT"
	envDataFile        = "DATA_FILE"
	envStorage         = "STORAGE"
	envDatabaseURL     = "DATABASE_URL"
	envMongoURI        = "MONGO_URI"
	envMongoDatabase   = "MONGO_DATABASE"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envShutdownTimeout = "SHUTDOWN_TIMEOUT"

	defaultPort            = "4000"
	defaultDataFile        = "data/players.json"
	defaultStorage         = StorageFile
	defaultMongoDatabase   = "players"
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultShutdownTimeout = 10 * time.Second
)

// Storage backends selectable without a database URL.
const (
	StorageFile   = "file"
	StorageMemory = "memory"
)
