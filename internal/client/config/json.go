package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/authgate/internal/flagx"
	"github.com/dmitrijs2005/authgate/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can specify intervals either as strings like
// "3s" or as integer nanoseconds. After parsing, values are copied into
// the runtime Config (which uses time.Duration).
type JsonConfig struct {
	EmulatorURL     string         `json:"emulator_url"`
	LocalURL        string         `json:"local_url"`
	DeviceURL       string         `json:"device_url"`
	ProbeTimeout    timex.Duration `json:"probe_timeout"`
	ResolveInterval timex.Duration `json:"resolve_interval"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file whose
// path comes from the -c/-config flags (flagx.JsonConfigFlags). When no
// path is given, nothing is loaded. Read or unmarshal errors panic; the
// config file is a deliberate operator input, not a runtime condition.
//
// Only non-zero JSON values overwrite the Config, so a partial file
// overrides just the fields it names.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.EmulatorURL != "" {
		cfg.EmulatorURL = jc.EmulatorURL
	}
	if jc.LocalURL != "" {
		cfg.LocalURL = jc.LocalURL
	}
	if jc.DeviceURL != "" {
		cfg.DeviceURL = jc.DeviceURL
	}
	if jc.ProbeTimeout.Duration != 0 {
		cfg.ProbeTimeout = time.Duration(jc.ProbeTimeout.Duration)
	}
	if jc.ResolveInterval.Duration != 0 {
		cfg.ResolveInterval = time.Duration(jc.ResolveInterval.Duration)
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
