package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/timecapsule/internal/models"
	"github.com/dmitrijs2005/timecapsule/internal/services"
	"github.com/fatih/color"
)

// find looks up capsules for a claimed identity and prints each one
// through the reveal gate: unlocked capsules show their key material,
// pending ones only a countdown.
func (a *App) find(ctx context.Context) {

	name, err := GetSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	birthday, err := GetSimpleText(a.reader, "Enter your birthday (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	entries, err := a.ledger.FindByIdentity(ctx, name, birthday)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	if len(entries) == 0 {
		fmt.Println("No capsule found for that name & birthday.")
		return
	}

	now := time.Now()
	pending := 0
	for _, e := range entries {
		verdict, err := a.gate.Evaluate(ctx, e, now, name, birthday)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
		printVerdict(verdict, now)
		if !verdict.Visible {
			pending++
		}
	}

	if pending > 0 {
		fmt.Println("Keys hidden until unlock time.")
	}
}

func printVerdict(v *services.Verdict, now time.Time) {
	e := v.Entry
	fmt.Printf("Capsule %s (artifact %s)\n", e.Id, e.ArtifactName)
	if v.Visible {
		color.Green("  Unlocked at %s", e.DeliverAt.Local().Format(time.RFC1123))
		fmt.Printf("  Key:            %s\n", e.Key)
		fmt.Printf("  Secondary code: %s\n", e.SecondaryCode)
		return
	}
	color.Yellow("  Opens in: %s", services.Countdown(now, e.DeliverAt))
}

// anyPending reports whether any entry is still locked at now.
func anyPending(entries []models.Entry, now time.Time) bool {
	for _, e := range entries {
		if now.Before(e.DeliverAt) {
			return true
		}
	}
	return false
}
