package cli

import (
	"context"
	"fmt"
	"os"
)

// remove deletes a ledger entry by id. The exported artifact file is left
// in place: the ledger never owned it.
func (a *App) remove(ctx context.Context) {

	id, err := GetSimpleText(a.reader, "Capsule id to remove", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	if id == "" {
		fmt.Println("Nothing to remove.")
		return
	}

	if err := a.ledger.Remove(ctx, id); err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Println("Removed.")
}
