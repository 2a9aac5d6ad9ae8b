// Package services contains application services for the authgate client.
// This file defines the authentication service: the glue between a
// resolved endpoint, the token issuance contract, and the session state.
package services

import (
	"context"

	"github.com/dmitrijs2005/authgate/internal/client/api"
	"github.com/dmitrijs2005/authgate/internal/client/session"
	"github.com/dmitrijs2005/authgate/internal/common"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - AttemptLogin: one credentials-for-token exchange against a resolved
//     endpoint; mutates the session only on success.
//   - Logout: reset the session to its initial state.
//   - CurrentUser: fetch the profile behind the session's token.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	AttemptLogin(ctx context.Context, username, password, endpoint string) error
	Logout()
	CurrentUser(ctx context.Context, endpoint string) (*api.User, error)
}

// authService is the concrete AuthService backed by a remote Client and
// the process-wide session manager.
type authService struct {
	client  api.Client
	session *session.Manager
}

// NewAuthService constructs an AuthService bound to the given API client
// and session manager.
func NewAuthService(client api.Client, session *session.Manager) AuthService {
	return &authService{client: client, session: session}
}

// AttemptLogin validates its preconditions, then performs exactly one
// token exchange against endpoint. Preconditions fail fast, before any
// network I/O: common.ErrMissingUsername, common.ErrMissingPassword,
// common.ErrNoEndpoint, each a distinct user-visible rejection.
//
// On success the session transitions to the authenticated state holding
// the issued token. On any failure (rejection, transport error, or a
// malformed response) the session is left untouched and the caller may
// retry immediately.
func (a *authService) AttemptLogin(ctx context.Context, username, password, endpoint string) error {
	if username == "" {
		return common.ErrMissingUsername
	}
	if password == "" {
		return common.ErrMissingPassword
	}
	if endpoint == "" {
		return common.ErrNoEndpoint
	}

	token, err := a.client.Token(ctx, endpoint, username, password)
	if err != nil {
		return err
	}

	a.session.Login(token)
	return nil
}

// Logout resets the session. Safe to call when already logged out. The
// resolved endpoint is unaffected; a new resolution pass is not required
// to log back in.
func (a *authService) Logout() {
	a.session.Logout()
}

// CurrentUser fetches the profile for the session's bearer token. Returns
// common.ErrorUnauthorized without network I/O when no session is active.
func (a *authService) CurrentUser(ctx context.Context, endpoint string) (*api.User, error) {
	st := a.session.Current()
	if !st.Authenticated {
		return nil, common.ErrorUnauthorized
	}
	if endpoint == "" {
		return nil, common.ErrNoEndpoint
	}
	return a.client.CurrentUser(ctx, endpoint, st.Token)
}
