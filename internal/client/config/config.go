package config

import "time"

// Config holds runtime settings for the authgate client.
//
// Fields:
//   - EmulatorURL / LocalURL / DeviceURL: candidate base URLs of the token
//     server, in probing priority order.
//   - ProbeTimeout: bound on each individual liveness probe.
//   - ResolveInterval: how often the client retries endpoint resolution
//     while no endpoint is known.
//   - RequestTimeout: bound on a single API request (login, profile).
type Config struct {
	EmulatorURL     string
	LocalURL        string
	DeviceURL       string
	ProbeTimeout    time.Duration
	ResolveInterval time.Duration
	RequestTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.EmulatorURL = "http://10.0.2.2:8000"
	c.LocalURL = "http://localhost:8000"
	c.DeviceURL = "http://192.168.29.93:8000"
	c.ProbeTimeout = 2 * time.Second
	c.ResolveInterval = 3 * time.Second
	c.RequestTimeout = 10 * time.Second
}

// Candidates returns the candidate endpoint list in priority order.
// Duplicates are allowed here; the resolver deduplicates preserving
// first-seen order.
func (c *Config) Candidates() []string {
	return []string{c.EmulatorURL, c.LocalURL, c.DeviceURL}
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
