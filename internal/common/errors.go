// Package common defines shared constants and sentinel errors used across
// client and server layers of authgate. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Login precondition errors. Each one maps to a distinct user-visible
	// rejection; none of them permit a network request.
	ErrMissingUsername = errors.New("username is required")
	ErrMissingPassword = errors.New("password is required")
	ErrNoEndpoint      = errors.New("no server endpoint resolved")

	// Transport-level errors.
	ErrUnavailable       = errors.New("server unavailable")
	ErrMalformedResponse = errors.New("malformed server response")

	// Resolver errors (every candidate endpoint failed the probe).
	ErrEndpointUnreachable = errors.New("no reachable server endpoint")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)

// ServerRejection is returned when the token endpoint rejects a login
// attempt with a failure status. Detail carries the server-supplied
// message verbatim, when one was present in the response body.
type ServerRejection struct {
	Detail string
}

func (e *ServerRejection) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "login failed"
}
