package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/timecapsule/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local schedule ledger database
//	-o string   directory for exported encrypted artifacts
//	-i int      watch tick interval in seconds
//	-t string   transcription backend base URL (optional)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-o", "-i", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.LedgerDSN, "d", cfg.LedgerDSN, "path of the local schedule ledger database")
	fs.StringVar(&cfg.ArtifactDir, "o", cfg.ArtifactDir, "directory for exported encrypted artifacts")
	tickInterval := fs.Int("i", int(cfg.TickInterval.Seconds()), "watch tick interval (in seconds)")
	fs.StringVar(&cfg.TranscriberAddr, "t", cfg.TranscriberAddr, "transcription backend base URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.TickInterval = time.Duration(*tickInterval) * time.Second
}
