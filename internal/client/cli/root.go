package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// getStatus summarizes the connection and session state for the prompt.
// It is recomputed on every REPL iteration from the session manager, so
// the prompt always reflects the current state.
func (a *App) getStatus() string {
	server := "waiting for server"
	if a.Endpoint() != "" {
		server = "connected"
	}
	who := "guest"
	if a.isLoggedIn() {
		who = "authenticated"
	}
	return fmt.Sprintf("(%s, %s)", server, who)
}

// Root shows the initial screen and runs the REPL until the user exits.
// The initial screen is chosen once, at startup, from the session state.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to the authgate CLI (type 'help' for commands)")

	if a.isLoggedIn() {
		fmt.Println("You are logged in.")
	} else {
		fmt.Println("Please log in to continue.")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
