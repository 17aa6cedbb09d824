package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the gopass-agent command line.
//
// Flags:
//
//	-c/-config       json config file path
//	-data-dir        directory for the vault cache, journal and log
//	-runtime-dir     directory for the socket and pid lock
//	-lock-timeout    inactivity timeout (e.g. "15m", "1h")
//	-sync-interval   background sync period, a negative value disables it
func ParseFlags(args []string) (*StructuredConfig, error) {
	var jsonConfigPath string
	var dataDir, runtimeDir string
	var lockTimeout, syncInterval time.Duration

	fs := flag.NewFlagSet("gopass-agent", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&dataDir, "data-dir", "", "Data directory")
	fs.StringVar(&runtimeDir, "runtime-dir", "", "Runtime directory for socket and pid file")
	fs.DurationVar(&lockTimeout, "lock-timeout", 0, "Inactivity lock timeout (e.g., 15m, 1h)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 30m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Agent: Agent{
			LockTimeout:  lockTimeout,
			SyncInterval: syncInterval,
			RuntimeDir:   runtimeDir,
		},
		Storage: Storage{
			DataDir: dataDir,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
