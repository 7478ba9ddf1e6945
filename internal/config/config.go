// Package config loads runtime settings from the environment.
package config

import "time"

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	DataFile        string
	Storage         string
	DatabaseURL     string
	MongoURI        string
	MongoDatabase   string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		DataFile:        envOrDefault(envDataFile, defaultDataFile),
		Storage:         oneOfOrDefault(envStorage, defaultStorage, StorageFile, StorageMemory),
		DatabaseURL:     envOrDefault(envDatabaseURL, ""),
		MongoURI:        envOrDefault(envMongoURI, ""),
		MongoDatabase:   envOrDefault(envMongoDatabase, defaultMongoDatabase),
		LogLevel:        oneOfOrDefault(envLogLevel, defaultLogLevel, "debug", "info", "warn", "warning", "error"),
		LogFormat:       oneOfOrDefault(envLogFormat, defaultLogFormat, "json", "text"),
		ShutdownTimeout: durationEnvOrDefault(envShutdownTimeout, defaultShutdownTimeout),
	}
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string { return ":" + c.Port }

// Backend names the storage backend Load's settings select.
// A database URL wins over a Mongo URI, which wins over STORAGE.
func (c Config) Backend() string {
	switch {
	case c.DatabaseURL != "":
		return "postgres"
	case c.MongoURI != "":
		return "mongo"
	default:
		return c.Storage
	}
}
