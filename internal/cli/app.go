package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/dmitrijs2005/timecapsule/internal/config"
	"github.com/dmitrijs2005/timecapsule/internal/filex"
	"github.com/dmitrijs2005/timecapsule/internal/logging"
	"github.com/dmitrijs2005/timecapsule/internal/repositories/capsules"
	"github.com/dmitrijs2005/timecapsule/internal/services"
	"github.com/dmitrijs2005/timecapsule/internal/transcribe"

	_ "modernc.org/sqlite"
)

// App wires the configuration, ledger, artifact store and services behind
// the interactive prompt.
type App struct {
	config      *config.Config
	db          *sql.DB
	ledger      capsules.Repository
	artifacts   *filex.Store
	capsules    *services.CapsuleService
	gate        *services.RevealGate
	transcriber *transcribe.Client
	log         logging.Logger
	reader      *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := capsules.Open(ctx, cfg.LedgerDSN)
	if err != nil {
		log.Error(ctx, "error initializing ledger database", "error", err)
		return nil, err
	}

	ledger := capsules.NewSQLiteRepository(db)
	artifacts := filex.NewStore(cfg.ArtifactDir)

	return &App{
		config:      cfg,
		db:          db,
		ledger:      ledger,
		artifacts:   artifacts,
		capsules:    services.NewCapsuleService(ledger, artifacts, log),
		gate:        services.NewRevealGate(ledger, log),
		transcriber: transcribe.NewClient(cfg.TranscriberAddr, log),
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

// Close releases the ledger database handle.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
