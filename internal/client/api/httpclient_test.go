package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/authgate/internal/common"
)

func newClient() *HTTPClient {
	return NewHTTPClient(2 * time.Second)
}

func TestHTTPClient_Ping(t *testing.T) {
	t.Parallel()

	t.Run("success with json body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ping", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message":"pong"}`))
		}))
		defer srv.Close()

		require.NoError(t, newClient().Ping(context.Background(), srv.URL))
	})

	t.Run("non-json body is not alive", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>gateway</html>"))
		}))
		defer srv.Close()

		err := newClient().Ping(context.Background(), srv.URL)
		assert.ErrorIs(t, err, common.ErrUnavailable)
	})

	t.Run("failure status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		err := newClient().Ping(context.Background(), srv.URL)
		assert.ErrorIs(t, err, common.ErrUnavailable)
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		err := newClient().Ping(context.Background(), srv.URL)
		assert.ErrorIs(t, err, common.ErrUnavailable)
	})
}

func TestHTTPClient_Token_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/token", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "johndoe", r.PostFormValue("username"))
		assert.Equal(t, "password123", r.PostFormValue("password"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"abc123","token_type":"bearer"}`))
	}))
	defer srv.Close()

	token, err := newClient().Token(context.Background(), srv.URL, "johndoe", "password123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
}

func TestHTTPClient_Token_Rejected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Incorrect username or password"}`))
	}))
	defer srv.Close()

	_, err := newClient().Token(context.Background(), srv.URL, "johndoe", "wrong")
	var rejection *common.ServerRejection
	require.True(t, errors.As(err, &rejection))
	assert.Equal(t, "Incorrect username or password", rejection.Detail)
}

func TestHTTPClient_Token_RejectedWithoutDetail(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newClient().Token(context.Background(), srv.URL, "johndoe", "password123")
	var rejection *common.ServerRejection
	require.True(t, errors.As(err, &rejection))
	assert.Equal(t, "login failed", rejection.Error())
}

func TestHTTPClient_Token_MalformedSuccessBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "ok"},
		{name: "missing access_token", body: `{"token_type":"bearer"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := newClient().Token(context.Background(), srv.URL, "johndoe", "password123")
			assert.ErrorIs(t, err, common.ErrMalformedResponse)
		})
	}
}

func TestHTTPClient_Token_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newClient().Token(context.Background(), srv.URL, "johndoe", "password123")
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestHTTPClient_CurrentUser(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/me/", r.URL.Path)
			assert.Equal(t, "Bearer abc123", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"username":"johndoe","email":"johndoe@example.com","full_name":"John Doe","disabled":false}`))
		}))
		defer srv.Close()

		user, err := newClient().CurrentUser(context.Background(), srv.URL, "abc123")
		require.NoError(t, err)
		assert.Equal(t, "johndoe", user.Username)
		assert.Equal(t, "John Doe", user.FullName)
	})

	t.Run("unauthorized", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Could not validate credentials"}`))
		}))
		defer srv.Close()

		_, err := newClient().CurrentUser(context.Background(), srv.URL, "expired")
		assert.ErrorIs(t, err, common.ErrorUnauthorized)
	})
}
