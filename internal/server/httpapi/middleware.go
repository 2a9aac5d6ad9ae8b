package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/authgate/internal/server/auth"
)

type contextKey string

const usernameContextKey contextKey = "username"

func usernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameContextKey).(string)
	return username, ok
}

const bearerPrefix = "Bearer "

// authMiddleware verifies the Authorization bearer token and stores the
// username it was issued for in the request context. A missing, expired,
// or otherwise invalid token ends the request with 401 and a bearer
// challenge.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			writeError(w, http.StatusUnauthorized, "Could not validate credentials", true)
			return
		}

		username, err := auth.GetUsernameFromToken(strings.TrimPrefix(header, bearerPrefix), s.secretKey)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Could not validate credentials", true)
			return
		}

		ctx := context.WithValue(r.Context(), usernameContextKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// corsMiddleware answers preflight requests and marks every response as
// accessible from any origin. The clients are mobile apps and dev tools
// on arbitrary hosts, so origins are wide open here.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
