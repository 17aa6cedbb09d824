// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	appName = "gopass"

	DefaultBaseURL        = "https://api.bitwarden.com"
	DefaultIdentityURL    = "https://identity.bitwarden.com"
	DefaultLockTimeout    = time.Hour
	DefaultSyncInterval   = time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultAgentBinary    = "gopass-agent"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Provider: Provider{
			BaseURL:        DefaultBaseURL,
			IdentityURL:    DefaultIdentityURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Agent: Agent{
			LockTimeout:  DefaultLockTimeout,
			SyncInterval: DefaultSyncInterval,
			RuntimeDir:   defaultRuntimeDir(),
			Binary:       DefaultAgentBinary,
		},
		Storage: Storage{DataDir: defaultDataDir()},
	}
}

// DefaultConfigPath is $XDG_CONFIG_HOME/gopass/config.json.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appName, "config.json")
}

// FilePath is the JSON config file in effect: $GOPASS_CONFIG when set,
// DefaultConfigPath otherwise.
func FilePath() string {
	if path := os.Getenv("GOPASS_CONFIG"); path != "" {
		return path
	}
	return DefaultConfigPath()
}

func defaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), fmt.Sprintf("%s-data-%d", appName, os.Getuid()))
	}
	return filepath.Join(home, ".local", "share", appName)
}

func defaultRuntimeDir() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, appName)
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("%s-%d", appName, os.Getuid()))
}
