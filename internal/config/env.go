package config

import (
	"os"
	"strings"
	"time"
)

func envOrDefault(key, defaultValue string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val != "" {
		return val
	}
	return defaultValue
}

func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func oneOfOrDefault(key, defaultValue string, allowed ...string) string {
	raw := strings.ToLower(envOrDefault(key, defaultValue))
	for _, a := range allowed {
		if raw == a {
			return raw
		}
	}
	return defaultValue
}
