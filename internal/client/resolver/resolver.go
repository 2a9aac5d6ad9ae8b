// Package resolver discovers a reachable server endpoint among several
// candidate base URLs. The client may run next to an emulator loopback, a
// local development server, or a server on the LAN; which of those is
// actually reachable is only known at runtime.
package resolver

import (
	"context"
	"time"

	"github.com/dmitrijs2005/authgate/internal/logging"
)

// Prober checks whether the server behind baseURL is alive. The HTTP
// client's Ping satisfies this interface.
type Prober interface {
	Ping(ctx context.Context, baseURL string) error
}

// Resolver probes candidate base URLs in order and reports the first one
// whose server answers the liveness check.
type Resolver struct {
	prober  Prober
	timeout time.Duration
	logger  logging.Logger
}

// New constructs a Resolver. timeout bounds each individual probe.
func New(prober Prober, timeout time.Duration, logger logging.Logger) *Resolver {
	return &Resolver{prober: prober, timeout: timeout, logger: logger}
}

// Dedupe removes duplicate candidates, preserving first-seen order.
func Dedupe(candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Resolve probes each candidate sequentially with a bounded per-candidate
// timeout and returns the first reachable one, short-circuiting the rest.
// Probing is deliberately sequential so the winner is deterministic under
// partial reachability. Individual probe failures are swallowed; they
// mean "try the next candidate", and only exhaustion is reported, as
// ok == false. Session state is never touched here.
func (r *Resolver) Resolve(ctx context.Context, candidates []string) (endpoint string, ok bool) {
	for _, candidate := range Dedupe(candidates) {
		probeCtx, cancel := context.WithTimeout(ctx, r.timeout)
		err := r.prober.Ping(probeCtx, candidate)
		cancel()

		if err == nil {
			r.logger.Info(ctx, "server endpoint resolved", "endpoint", candidate)
			return candidate, true
		}
		r.logger.Debug(ctx, "candidate endpoint not reachable", "endpoint", candidate)

		if ctx.Err() != nil {
			break
		}
	}

	r.logger.Warn(ctx, "no reachable server endpoint", "candidates", len(candidates))
	return "", false
}
