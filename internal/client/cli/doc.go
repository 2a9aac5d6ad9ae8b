// Package cli provides the interactive authgate command-line client.
//
// It wires configuration, endpoint resolution, the API client, and an
// interactive REPL whose available commands derive from the current
// session state. Typical flow: resolve a reachable server endpoint,
// prompt for credentials, exchange them for a bearer token, and let the
// user inspect the session.
//
// Key features:
//   - Endpoint resolution across emulator/local/device candidates, with a
//     background watcher that keeps retrying while no server is known
//   - Login / Logout against the resolved endpoint
//   - Whoami: fetch the profile behind the session's bearer token
//   - Status: show the resolved endpoint and session state
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
