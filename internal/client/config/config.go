package config

import "time"

// Config holds runtime settings for the AstroAI CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP API, without a trailing
//     slash (e.g. http://127.0.0.1:8000).
//   - DatabasePath: path of the local SQLite database holding the preference
//     store.
//   - RequestTimeout: per-request deadline applied by the HTTP client.
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000"
	c.DatabasePath = "astroai.db"
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including an optional .env file), a JSON file (if one is
// named via -c/-config) and command-line flags. Later sources take precedence
// over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
