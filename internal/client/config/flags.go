package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/authgate/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-e string   emulator endpoint URL (default from Config)
//	-l string   local development endpoint URL
//	-d string   physical device endpoint URL
//	-i int      resolve retry interval in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-e", "-l", "-d", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EmulatorURL, "e", cfg.EmulatorURL, "emulator endpoint URL")
	fs.StringVar(&cfg.LocalURL, "l", cfg.LocalURL, "local development endpoint URL")
	fs.StringVar(&cfg.DeviceURL, "d", cfg.DeviceURL, "physical device endpoint URL")
	resolveInterval := fs.Int("i", int(cfg.ResolveInterval.Seconds()), "resolve retry interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ResolveInterval = time.Duration(*resolveInterval) * time.Second
}
