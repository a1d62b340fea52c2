package capsules

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/timecapsule/internal/common"
	"github.com/dmitrijs2005/timecapsule/internal/dbx"
	"github.com/dmitrijs2005/timecapsule/internal/models"
)

// timeLayout is how timestamps are stored in the ledger. RFC3339 keeps the
// rows human-inspectable and sorts lexicographically.
const timeLayout = time.RFC3339Nano

const selectColumns = `id, deliver_at, key_material, secondary_code, artifact_name, owner_name, owner_birthday, revealed_at, created_at`

// SQLiteRepository implements Repository on a local SQLite database. Every
// mutation is a single statement (or a single transaction), so a crash
// between operations never leaves a half-written row.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given database.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Append inserts a new ledger entry. The id check and the insert run in
// one transaction; a collision yields ErrDuplicateID and nothing is written.
func (r *SQLiteRepository) Append(ctx context.Context, e *models.Entry) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM capsules WHERE id = ?`, e.Id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check capsule id: %w", err)
		}
		if exists > 0 {
			return fmt.Errorf("%w: %s", common.ErrDuplicateID, e.Id)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO capsules (id, deliver_at, key_material, secondary_code, artifact_name, owner_name, owner_birthday, revealed_at, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.Id,
			e.DeliverAt.UTC().Format(timeLayout),
			e.Key,
			e.SecondaryCode,
			e.ArtifactName,
			e.OwnerName,
			e.OwnerBirthday,
			nullableTime(e.RevealedAt),
			e.CreatedAt.UTC().Format(timeLayout),
		)
		if err != nil {
			return fmt.Errorf("failed to insert capsule: %w", err)
		}
		return nil
	})
}

// List returns all entries ordered by insertion (rowid), not by deliver_at.
func (r *SQLiteRepository) List(ctx context.Context) ([]models.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM capsules ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to select capsules: %w", err)
	}
	defer rows.Close()

	result := make([]models.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate capsules: %w", err)
	}
	return result, nil
}

// FindByIdentity filters the ledger by normalized owner fields. Matching
// happens in Go so the lookup and the reveal gate share one normalization
// rule (models.NormalizeIdentity), Unicode case folding included.
func (r *SQLiteRepository) FindByIdentity(ctx context.Context, name, birthday string) ([]models.Entry, error) {
	if models.NormalizeIdentity(name) == "" || models.NormalizeIdentity(birthday) == "" {
		return []models.Entry{}, nil
	}

	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Entry, 0)
	for _, e := range all {
		if e.MatchesIdentity(name, birthday) {
			result = append(result, e)
		}
	}
	return result, nil
}

// GetByID returns a single entry or ErrorNotFound.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Entry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM capsules WHERE id = ?`, id)

	e, err := scanEntry(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: capsule %s", common.ErrorNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// MarkRevealed stamps revealed_at if and only if it is still null. The
// guard runs against the current persisted row, never a cached copy, so
// repeated calls and concurrent processes cannot overwrite the first stamp.
func (r *SQLiteRepository) MarkRevealed(ctx context.Context, id string, when time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE capsules SET revealed_at = ? WHERE id = ? AND revealed_at IS NULL`,
		when.UTC().Format(timeLayout), id)
	if err != nil {
		return fmt.Errorf("failed to mark capsule revealed: %w", err)
	}
	return nil
}

// Remove deletes the entry. An absent id is a no-op, not an error.
func (r *SQLiteRepository) Remove(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM capsules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete capsule: %w", err)
	}
	return nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(timeLayout)
}

func scanEntry(scan func(dest ...any) error) (*models.Entry, error) {
	var e models.Entry
	var deliverAt, createdAt string
	var revealedAt sql.NullString

	if err := scan(&e.Id, &deliverAt, &e.Key, &e.SecondaryCode, &e.ArtifactName,
		&e.OwnerName, &e.OwnerBirthday, &revealedAt, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if e.DeliverAt, err = time.Parse(timeLayout, deliverAt); err != nil {
		return nil, fmt.Errorf("failed to parse deliver_at: %w", err)
	}
	if e.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if revealedAt.Valid {
		t, err := time.Parse(timeLayout, revealedAt.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse revealed_at: %w", err)
		}
		e.RevealedAt = &t
	}
	return &e, nil
}
