// Package capsules implements the durable schedule ledger: one row per
// created capsule, keyed by capsule id. The ledger holds metadata and key
// material for reveal-time convenience; plaintext never enters it.
package capsules

import (
	"context"
	"time"

	"github.com/dmitrijs2005/timecapsule/internal/models"
)

// Repository is the ledger contract used by the services layer.
type Repository interface {
	// Append adds a new entry. An id collision yields ErrDuplicateID and
	// leaves the ledger untouched.
	Append(ctx context.Context, e *models.Entry) error

	// List returns a snapshot of all entries in insertion order.
	List(ctx context.Context) ([]models.Entry, error)

	// FindByIdentity returns the entries matching the claimed owner name
	// and birthday (case-insensitive, whitespace-trimmed). Either field
	// blank yields an empty result: the lookup is the access gate and
	// must not degrade into a browse of the whole ledger.
	FindByIdentity(ctx context.Context, name, birthday string) ([]models.Entry, error)

	// GetByID returns a single entry or ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Entry, error)

	// MarkRevealed stamps revealed_at if and only if it is still unset.
	// Calling it again later is a no-op, not an error.
	MarkRevealed(ctx context.Context, id string, when time.Time) error

	// Remove deletes an entry. Removing an absent id is a no-op.
	Remove(ctx context.Context, id string) error
}
