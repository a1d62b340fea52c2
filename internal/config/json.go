package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/timecapsule/internal/flagx"
	"github.com/dmitrijs2005/timecapsule/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s"
// or as integer nanoseconds. After parsing, set values are copied into the
// runtime Config.
type JsonConfig struct {
	LedgerDSN       string         `json:"ledger_dsn"`
	ArtifactDir     string         `json:"artifact_dir"`
	TickInterval    timex.Duration `json:"tick_interval"`
	TranscriberAddr string         `json:"transcriber_addr"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags; when neither is given,
// no JSON is loaded. Only fields present in the file override the defaults.
// Read or unmarshal errors panic (caller may recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.LedgerDSN != "" {
		cfg.LedgerDSN = jc.LedgerDSN
	}
	if jc.ArtifactDir != "" {
		cfg.ArtifactDir = jc.ArtifactDir
	}
	if jc.TickInterval.Duration > 0 {
		cfg.TickInterval = time.Duration(jc.TickInterval.Duration)
	}
	if jc.TranscriberAddr != "" {
		cfg.TranscriberAddr = jc.TranscriberAddr
	}
}
