package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/timecapsule/internal/services"
)

// watch polls the ledger for a claimed identity and keeps a live countdown
// on screen, announcing each capsule the moment it unlocks. It returns
// when nothing is pending anymore or the context is cancelled.
func (a *App) watch(ctx context.Context) {

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

	ticker := time.NewTicker(a.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()

			entries, err := a.ledger.FindByIdentity(ctx, name, birthday)
			if err != nil {
				fmt.Println(err.Error())
				return
			}
			if len(entries) == 0 {
				fmt.Println("No capsule found for that name & birthday.")
				return
			}

			for _, e := range entries {
				verdict, err := a.gate.Evaluate(ctx, e, now, name, birthday)
				if err != nil {
					fmt.Println(err.Error())
					return
				}
				// stamped on this tick: the entry was read without a
				// reveal mark and came back visible
				if verdict.Visible && e.RevealedAt == nil {
					color.Green("Capsule %s unlocked! Key: %s", verdict.Entry.Id, verdict.Entry.Key)
					continue
				}
				if !verdict.Visible {
					fmt.Printf("Capsule %s opens in: %s\n",
						e.Id, services.Countdown(now, e.DeliverAt))
				}
			}

			if !anyPending(entries, now) {
				fmt.Println("All capsules unlocked.")
				return
			}

		case <-ctx.Done():
			return
		}
	}
}
