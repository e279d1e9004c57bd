package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by parseEnv.
const (
	EnvServerBaseURL  = "ASTROAI_SERVER_URL"
	EnvDatabasePath   = "ASTROAI_DB_PATH"
	EnvRequestTimeout = "ASTROAI_REQUEST_TIMEOUT"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first when present; a missing file
// is not an error. Variables already set in the environment win over the
// file, which is godotenv's default.
//
// ASTROAI_REQUEST_TIMEOUT uses time.ParseDuration syntax ("30s", "1m").
// A malformed value is ignored and the previous timeout stays in effect.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvServerBaseURL); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv(EnvDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
