// Package httpapi exposes the server's public HTTP surface: the liveness
// probe, the token issuance endpoint, and the bearer-protected profile
// endpoint.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/dmitrijs2005/authgate/internal/server/users"
)

// Server owns the router and the HTTP listener.
type Server struct {
	addr          string
	logger        logging.Logger
	userService   *users.Service
	secretKey     []byte
	tokenValidity time.Duration
	httpServer    *http.Server
}

// NewServer wires the HTTP surface. secretKey signs issued tokens;
// tokenValidity bounds their lifetime.
func NewServer(addr string, logger logging.Logger, userService *users.Service, secretKey []byte, tokenValidity time.Duration) *Server {
	return &Server{
		addr:          addr,
		logger:        logger,
		userService:   userService,
		secretKey:     secretKey,
		tokenValidity: tokenValidity,
	}
}

// Routes builds the router. Exposed for handler tests.
func (s *Server) Routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.corsMiddleware)

	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/ping", s.handlePing).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/token", s.handleToken).Methods(http.MethodPost, http.MethodOptions)

	protected := r.PathPrefix("/users").Subrouter()
	protected.Use(s.authMiddleware)
	protected.HandleFunc("/me/", s.handleCurrentUser).Methods(http.MethodGet, http.MethodOptions)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{Addr: s.addr, Handler: s.Routes()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	s.logger.Info(ctx, "http server listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
