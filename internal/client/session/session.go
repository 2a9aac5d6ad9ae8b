// Package session owns the single process-wide piece of authentication
// state. Every screen of the client reads the same Manager instance;
// there are no per-screen copies. The state lives and dies with the
// process; nothing is persisted.
package session

import "sync"

// State is an immutable snapshot of the authentication session.
// Invariant: Authenticated == (Token != "").
type State struct {
	Token         string
	Authenticated bool
}

// Manager is the session state container. Reads are safe from any
// goroutine; writes go through Login and Logout only and are serialized.
// Subscribers observe every transition synchronously, so consumers never
// need an explicit refresh. The Manager knows nothing about HTTP or
// endpoint resolution.
type Manager struct {
	mu          sync.RWMutex
	state       State
	subscribers []func(State)
}

// NewManager returns a Manager in the initial, unauthenticated state.
func NewManager() *Manager {
	return &Manager{}
}

// Login replaces the session with one holding token. Calling it with a
// new token fully overwrites prior state. The token's shape is not
// validated here, that is the server's responsibility. An empty token
// yields an unauthenticated state, preserving the invariant.
func (m *Manager) Login(token string) {
	m.transition(State{Token: token, Authenticated: token != ""})
}

// Logout resets the session to its initial state, regardless of prior
// state. Safe to call when already logged out.
func (m *Manager) Logout() {
	m.transition(State{})
}

// Current returns a snapshot of the session state.
func (m *Manager) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Subscribe registers fn to be invoked synchronously on every state
// transition, with the new state. Subscriptions last for the lifetime of
// the process.
func (m *Manager) Subscribe(fn func(State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

func (m *Manager) transition(next State) {
	m.mu.Lock()
	m.state = next
	subs := make([]func(State), len(m.subscribers))
	copy(subs, m.subscribers)
	m.mu.Unlock()

	// Invoked outside the lock so a subscriber may call Current.
	for _, fn := range subs {
		fn(next)
	}
}
