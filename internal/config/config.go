package config

import "time"

// Config holds runtime settings for the time-capsule CLI.
//
// Fields:
//   - LedgerDSN: path of the local SQLite schedule ledger.
//   - ArtifactDir: directory where encrypted artifacts are exported.
//   - TickInterval: how often watch mode re-evaluates due capsules.
//   - TranscriberAddr: base URL of the optional transcription backend;
//     empty disables it.
type Config struct {
	LedgerDSN       string
	ArtifactDir     string
	TickInterval    time.Duration
	TranscriberAddr string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.LedgerDSN = "capsules.db"
	c.ArtifactDir = "capsules"
	c.TickInterval = 1 * time.Second
	c.TranscriberAddr = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
