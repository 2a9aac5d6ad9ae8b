package api

import "context"

// User mirrors the profile document returned by GET /users/me/.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Disabled bool   `json:"disabled"`
}

// Client is the transport-agnostic contract for talking to the token
// server. The base URL is passed per call because the active endpoint is
// discovered at runtime and may change between calls.
type Client interface {
	// Ping checks that the server behind baseURL is semantically alive.
	Ping(ctx context.Context, baseURL string) error

	// Token exchanges credentials for a bearer token.
	Token(ctx context.Context, baseURL, username, password string) (string, error)

	// CurrentUser fetches the profile of the user the token belongs to.
	CurrentUser(ctx context.Context, baseURL, accessToken string) (*User, error)
}
