package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/authgate/internal/client/api"
	"github.com/dmitrijs2005/authgate/internal/client/session"
	"github.com/dmitrijs2005/authgate/internal/common"
)

// ---- fake client ----

// fakeClient implements api.Client for AuthService unit tests.
type fakeClient struct {
	TokenRet string
	TokenErr error

	CurrentUserRet *api.User
	CurrentUserErr error

	PingErr error

	// call recording
	TokenCalls   int
	LastUsername string
	LastPassword string
	LastEndpoint string
	LastToken    string
}

func (f *fakeClient) Ping(ctx context.Context, baseURL string) error { return f.PingErr }

func (f *fakeClient) Token(ctx context.Context, baseURL, username, password string) (string, error) {
	f.TokenCalls++
	f.LastEndpoint = baseURL
	f.LastUsername = username
	f.LastPassword = password
	return f.TokenRet, f.TokenErr
}

func (f *fakeClient) CurrentUser(ctx context.Context, baseURL, accessToken string) (*api.User, error) {
	f.LastEndpoint = baseURL
	f.LastToken = accessToken
	return f.CurrentUserRet, f.CurrentUserErr
}

// ---- TESTS ----

func TestAttemptLogin_Preconditions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		password string
		endpoint string
		wantErr  error
	}{
		{name: "empty username", username: "", password: "password123", endpoint: "http://host:8000", wantErr: common.ErrMissingUsername},
		{name: "empty password", username: "johndoe", password: "", endpoint: "http://host:8000", wantErr: common.ErrMissingPassword},
		{name: "no endpoint", username: "johndoe", password: "password123", endpoint: "", wantErr: common.ErrNoEndpoint},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeClient{}
			sess := session.NewManager()
			svc := NewAuthService(client, sess)

			err := svc.AttemptLogin(context.Background(), tc.username, tc.password, tc.endpoint)
			require.ErrorIs(t, err, tc.wantErr)

			// No network request, no state mutation.
			assert.Zero(t, client.TokenCalls)
			assert.Equal(t, session.State{}, sess.Current())
		})
	}
}

func TestAttemptLogin_Success(t *testing.T) {
	t.Parallel()

	client := &fakeClient{TokenRet: "abc123"}
	sess := session.NewManager()
	svc := NewAuthService(client, sess)

	err := svc.AttemptLogin(context.Background(), "johndoe", "password123", "http://host:8000")
	require.NoError(t, err)

	assert.Equal(t, 1, client.TokenCalls)
	assert.Equal(t, "http://host:8000", client.LastEndpoint)
	assert.Equal(t, "johndoe", client.LastUsername)
	assert.Equal(t, "password123", client.LastPassword)

	assert.Equal(t, session.State{Token: "abc123", Authenticated: true}, sess.Current())
}

func TestAttemptLogin_RejectionLeavesSessionUntouched(t *testing.T) {
	t.Parallel()

	client := &fakeClient{TokenErr: &common.ServerRejection{Detail: "Incorrect username or password"}}
	sess := session.NewManager()
	svc := NewAuthService(client, sess)

	err := svc.AttemptLogin(context.Background(), "johndoe", "wrong", "http://host:8000")

	var rejection *common.ServerRejection
	require.True(t, errors.As(err, &rejection))
	assert.Equal(t, "Incorrect username or password", rejection.Detail)
	assert.Equal(t, session.State{}, sess.Current())
}

func TestAttemptLogin_TransportFailureLeavesSessionUntouched(t *testing.T) {
	t.Parallel()

	client := &fakeClient{TokenErr: common.ErrUnavailable}
	sess := session.NewManager()
	sess.Login("existing-token")
	svc := NewAuthService(client, sess)

	err := svc.AttemptLogin(context.Background(), "johndoe", "password123", "http://host:8000")
	require.ErrorIs(t, err, common.ErrUnavailable)

	// A failed attempt must not clobber a prior session either.
	assert.Equal(t, session.State{Token: "existing-token", Authenticated: true}, sess.Current())
}

func TestLogout_ResetsSession(t *testing.T) {
	t.Parallel()

	sess := session.NewManager()
	sess.Login("abc123")
	svc := NewAuthService(&fakeClient{}, sess)

	svc.Logout()
	assert.Equal(t, session.State{}, sess.Current())

	// Idempotent.
	svc.Logout()
	assert.Equal(t, session.State{}, sess.Current())
}

func TestCurrentUser_RequiresSession(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	svc := NewAuthService(client, session.NewManager())

	_, err := svc.CurrentUser(context.Background(), "http://host:8000")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.Empty(t, client.LastToken)
}

func TestCurrentUser_PassesSessionToken(t *testing.T) {
	t.Parallel()

	client := &fakeClient{CurrentUserRet: &api.User{Username: "johndoe", FullName: "John Doe"}}
	sess := session.NewManager()
	sess.Login("abc123")
	svc := NewAuthService(client, sess)

	user, err := svc.CurrentUser(context.Background(), "http://host:8000")
	require.NoError(t, err)
	assert.Equal(t, "johndoe", user.Username)
	assert.Equal(t, "abc123", client.LastToken)
}
