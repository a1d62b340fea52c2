package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/timecapsule/internal/logging"
	"github.com/dmitrijs2005/timecapsule/internal/models"
	"github.com/dmitrijs2005/timecapsule/internal/repositories/capsules"
)

// Verdict is the reveal gate's answer for one entry.
type Verdict struct {
	// Visible reports whether the entry, key material included, may be
	// shown to the claimant.
	Visible bool

	// Entry is the entry as it should be presented: stamped on first
	// reveal, redacted of key material when not visible.
	Entry models.Entry
}

// RevealGate decides when ledger entries and their key material may be
// shown. It has no clock of its own: the caller supplies now, so any host
// can drive it by polling, by a ticker, or with a single on-demand check.
type RevealGate struct {
	ledger capsules.Repository
	log    logging.Logger
}

func NewRevealGate(ledger capsules.Repository, log logging.Logger) *RevealGate {
	return &RevealGate{ledger: ledger, log: log}
}

// Evaluate applies the gate to one entry. Identity is checked first: on a
// mismatch the verdict is not visible regardless of timing and the entry
// comes back redacted. With a matching identity an entry is visible once
// due (deliverAt <= now, boundary inclusive) or once already revealed;
// the first due sighting stamps revealedAt in the ledger exactly once.
func (g *RevealGate) Evaluate(ctx context.Context, e models.Entry, now time.Time, claimedName, claimedBirthday string) (*Verdict, error) {
	if !e.MatchesIdentity(claimedName, claimedBirthday) {
		return &Verdict{Visible: false, Entry: e.Redacted()}, nil
	}

	due := !now.Before(e.DeliverAt)

	if due && e.RevealedAt == nil {
		if err := g.ledger.MarkRevealed(ctx, e.Id, now); err != nil {
			return nil, fmt.Errorf("failed to stamp reveal: %w", err)
		}
		stamped := now
		e.RevealedAt = &stamped

		g.log.Info(ctx, "capsule revealed", "id", e.Id, "revealedAt", stamped)
		return &Verdict{Visible: true, Entry: e}, nil
	}

	if due || e.RevealedAt != nil {
		return &Verdict{Visible: true, Entry: e}, nil
	}

	return &Verdict{Visible: false, Entry: e.Redacted()}, nil
}
