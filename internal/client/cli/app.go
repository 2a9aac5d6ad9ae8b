package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/authgate/internal/client/api"
	"github.com/dmitrijs2005/authgate/internal/client/config"
	"github.com/dmitrijs2005/authgate/internal/client/resolver"
	"github.com/dmitrijs2005/authgate/internal/client/services"
	"github.com/dmitrijs2005/authgate/internal/client/session"
	"github.com/dmitrijs2005/authgate/internal/logging"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	session     *session.Manager
	authService services.AuthService
	resolver    *resolver.Resolver
	reader      *bufio.Reader

	// endpoint is the resolved server base URL, empty when no server is
	// currently known. generation counts resolution passes so a stale
	// pass cannot overwrite the result of a newer one.
	mu         sync.Mutex
	endpoint   string
	generation uint64

	// loginInFlight makes a login attempt exclusive per user gesture.
	loginInFlight atomic.Bool
}

func NewApp(c *config.Config) *App {
	slogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger := logging.NewSlogLogger(slogger)

	apiClient := api.NewHTTPClient(c.RequestTimeout)
	sess := session.NewManager()

	return &App{
		config:      c,
		logger:      logger,
		session:     sess,
		authService: services.NewAuthService(apiClient, sess),
		resolver:    resolver.New(apiClient, c.ProbeTimeout, logger),
		reader:      bufio.NewReader(os.Stdin),
	}
}

func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.Resolve(ctx)

	go a.StartEndpointWatcher(ctx, a.config.ResolveInterval)

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().Authenticated
}

// Endpoint returns the currently resolved server base URL, or "" when no
// server is known.
func (a *App) Endpoint() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.endpoint
}

// Resolve runs one resolution pass over the configured candidates and
// installs the winner, unless a newer pass has started in the meantime.
func (a *App) Resolve(ctx context.Context) error {
	a.mu.Lock()
	a.generation++
	gen := a.generation
	a.mu.Unlock()

	endpoint, ok := a.resolver.Resolve(ctx, a.config.Candidates())
	a.applyResolution(gen, endpoint, ok)
	return nil
}

// applyResolution installs the outcome of resolution pass gen. A result
// from a superseded pass is discarded so it cannot overwrite newer state.
func (a *App) applyResolution(gen uint64, endpoint string, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if gen != a.generation {
		return
	}
	if ok {
		a.endpoint = endpoint
	} else {
		a.endpoint = ""
	}
}

// StartEndpointWatcher keeps retrying endpoint resolution every interval
// while no server is known. Once an endpoint is resolved it stays active
// until an explicit new resolution pass; logout does not clear it.
func (a *App) StartEndpointWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if a.Endpoint() != "" {
				continue
			}
			_ = a.Resolve(ctx)

		case <-ctx.Done():
			return
		}
	}
}
