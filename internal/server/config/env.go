package config

import (
	"os"
	"time"
)

// parseEnv overlays selected Config fields from the environment.
//
// Supported variables:
//
//	AUTHGATE_ADDRESS         bind address, e.g. ":8000"
//	AUTHGATE_SECRET_KEY      JWT signing secret
//	AUTHGATE_TOKEN_VALIDITY  access token lifetime, e.g. "30m"
//
// A malformed AUTHGATE_TOKEN_VALIDITY panics; it is operator input.
func parseEnv(cfg *Config) {
	if v := os.Getenv("AUTHGATE_ADDRESS"); v != "" {
		cfg.EndpointAddr = v
	}
	if v := os.Getenv("AUTHGATE_SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("AUTHGATE_TOKEN_VALIDITY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.AccessTokenValidityDuration = d
	}
}
