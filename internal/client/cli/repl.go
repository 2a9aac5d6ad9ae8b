package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Status(ctx context.Context) error
	Resolve(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the authgate CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The command set shown by "help" is derived from session state on every
// iteration, so the screens the user can reach always follow the session
// rather than any remembered navigation.
//
//	Not logged in:
//	  - help:        show available commands
//	  - login:       authenticate against the resolved endpoint
//	  - status:      show endpoint and session state
//	  - resolve:     run a new endpoint resolution pass
//	  - exit | quit: leave the program
//
//	Logged in:
//	  - help:        show available commands
//	  - whoami:      show the profile behind the bearer token
//	  - status:      show endpoint and session state
//	  - resolve:     run a new endpoint resolution pass
//	  - logout:      log out
//	  - exit | quit: leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("auth %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, status, resolve, logout, exit")
			} else {
				printlnFn("Available commands: login, status, resolve, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "status":
			_ = a.Status(ctx)

		case "resolve":
			_ = a.Resolve(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
