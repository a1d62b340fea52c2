package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// Root runs the interactive prompt until EOF or an exit command.
func (a *App) Root(ctx context.Context) {

	fmt.Println("Time Capsule CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("tc> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			fmt.Println("Available commands: create, find, watch, open, remove, exit")

		case "create":
			a.create(ctx)
		case "find":
			a.find(ctx)
		case "watch":
			a.watch(ctx)
		case "open":
			a.open(ctx)
		case "remove":
			a.remove(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
