// Package config loads runtime configuration for the AstroAI CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend HTTP API
//	-d string   path of the local SQLite database
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader accepts durations either as strings like "30s" or as
// integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8000",
//	  "database_path": "astroai.db",
//	  "request_timeout": "30s"
//	}
package config
