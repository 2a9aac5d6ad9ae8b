package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/authgate/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and performs one login attempt
// against the resolved endpoint.
//
// Attempts are exclusive per user gesture: while one is in flight, another
// invocation reports busy and returns without touching anything. On
// success the session transitions to the authenticated state; on any
// failure a single human-readable message is printed, the session is left
// unchanged, and the user may retry immediately.
//
// The password is securely wiped before returning and is never logged.
func (a *App) Login(ctx context.Context) error {
	if !a.loginInFlight.CompareAndSwap(false, true) {
		fmt.Println("A login attempt is already in progress")
		return nil
	}
	defer a.loginInFlight.Store(false)

	endpoint := a.Endpoint()
	if endpoint == "" {
		fmt.Println(loginFailureMessage(common.ErrNoEndpoint))
		return common.ErrNoEndpoint
	}

	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.AttemptLogin(ctx, userName, string(password), endpoint); err != nil {
		fmt.Println(loginFailureMessage(err))
		return err
	}

	fmt.Println("Login successful!")
	return nil
}

// loginFailureMessage maps login errors onto the messages shown to the
// user. Server-supplied detail is preferred when the server rejected the
// attempt; transport-level failures get a generic message.
func loginFailureMessage(err error) string {
	var rejection *common.ServerRejection
	switch {
	case errors.As(err, &rejection):
		return rejection.Error()
	case errors.Is(err, common.ErrMissingUsername):
		return "Please enter a username"
	case errors.Is(err, common.ErrMissingPassword):
		return "Please enter a password"
	case errors.Is(err, common.ErrNoEndpoint):
		return "Waiting for server: no reachable endpoint yet"
	case errors.Is(err, common.ErrMalformedResponse):
		return "Login failed"
	default:
		return "Something went wrong, please try again"
	}
}

// Logout resets the session to its unauthenticated state. The resolved
// endpoint is kept, so logging back in needs no new resolution pass.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout()
	fmt.Println("Logged out")
	return nil
}

// Whoami fetches and prints the profile behind the session's bearer token.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.authService.CurrentUser(ctx, a.Endpoint())
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			fmt.Println("Not logged in")
		case errors.Is(err, common.ErrNoEndpoint):
			fmt.Println("Waiting for server: no reachable endpoint yet")
		default:
			fmt.Println("Something went wrong, please try again")
		}
		return err
	}

	fmt.Printf("%s <%s>\n", user.FullName, user.Email)
	return nil
}

// Status prints the resolved endpoint and the current session state.
func (a *App) Status(ctx context.Context) error {
	if endpoint := a.Endpoint(); endpoint != "" {
		fmt.Printf("Server:  %s\n", endpoint)
	} else {
		fmt.Println("Server:  waiting for server")
	}

	if a.session.Current().Authenticated {
		fmt.Println("Session: authenticated")
	} else {
		fmt.Println("Session: not authenticated")
	}
	return nil
}
