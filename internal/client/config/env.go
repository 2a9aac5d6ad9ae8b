package config

import "os"

// parseEnv overlays selected Config fields from the environment.
//
// Supported variables:
//
//	AUTHGATE_EMULATOR_URL  base URL reachable from an emulator
//	AUTHGATE_LOCAL_URL     base URL for local development
//	AUTHGATE_DEVICE_URL    base URL reachable from a physical device
//
// Unset or empty variables leave the corresponding field untouched, so
// the hardcoded fallbacks guarantee the candidate list is never empty.
func parseEnv(cfg *Config) {
	if v := os.Getenv("AUTHGATE_EMULATOR_URL"); v != "" {
		cfg.EmulatorURL = v
	}
	if v := os.Getenv("AUTHGATE_LOCAL_URL"); v != "" {
		cfg.LocalURL = v
	}
	if v := os.Getenv("AUTHGATE_DEVICE_URL"); v != "" {
		cfg.DeviceURL = v
	}
}
