package capsules

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/timecapsule/internal/migrations"
	"github.com/pressly/goose/v3"
)

// Open opens (creating if necessary) the ledger database at dsn and brings
// its schema up to date with the embedded migrations. The caller owns the
// returned handle and must close it. The driver is registered by a blank
// import of modernc.org/sqlite at the application edge.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate ledger database: %w", err)
	}

	return db, nil
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}
