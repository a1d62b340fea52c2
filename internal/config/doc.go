// Package config loads runtime configuration for the time-capsule CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the local schedule ledger database
//	-o string   directory for exported encrypted artifacts
//	-i int      watch tick interval (seconds)
//	-t string   transcription backend base URL
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "1s" or integer nanoseconds:
//
//	{
//	  "ledger_dsn": "capsules.db",
//	  "artifact_dir": "capsules",
//	  "tick_interval": "1s",
//	  "transcriber_addr": "http://127.0.0.1:3001"
//	}
//
// Primary API
//
//   - type Config                     — runtime settings for the CLI
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
