package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://10.0.2.2:8000", c.EmulatorURL)
	assert.Equal(t, "http://localhost:8000", c.LocalURL)
	assert.Equal(t, "http://192.168.29.93:8000", c.DeviceURL)
	assert.Equal(t, 2*time.Second, c.ProbeTimeout)
	assert.Equal(t, 3*time.Second, c.ResolveInterval)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestCandidates_PriorityOrder(t *testing.T) {
	var c Config
	c.LoadDefaults()

	got := c.Candidates()
	require.Len(t, got, 3)
	assert.Equal(t, []string{
		"http://10.0.2.2:8000",
		"http://localhost:8000",
		"http://192.168.29.93:8000",
	}, got)
}

func TestCandidates_NeverEmpty(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.NotEmpty(t, cfg.Candidates())
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("AUTHGATE_EMULATOR_URL", "http://emu:9000")
	t.Setenv("AUTHGATE_DEVICE_URL", "http://10.1.2.3:9000")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://emu:9000", c.EmulatorURL)
	assert.Equal(t, "http://localhost:8000", c.LocalURL, "unset variable keeps the fallback")
	assert.Equal(t, "http://10.1.2.3:9000", c.DeviceURL)
}

func TestParseEnv_EmptyValueKeepsFallback(t *testing.T) {
	t.Setenv("AUTHGATE_LOCAL_URL", "")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://localhost:8000", c.LocalURL)
}
