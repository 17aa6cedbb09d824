// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// gopass front end and the gopass-agent daemon. It is populated by merging
// command-line flags, environment variables, the JSON config file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with GOPASS_.
type StructuredConfig struct {
	// Account identifies the remote account.
	Account Account `envPrefix:"ACCOUNT_"`

	// Provider holds the sync provider endpoints and HTTP timeout.
	Provider Provider `envPrefix:"PROVIDER_"`

	// Agent holds the daemon's session and runtime settings.
	Agent Agent `envPrefix:"AGENT_"`

	// Storage holds the location of persisted state.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the path of the JSON config file. It is read when
	// present; a missing file is not an error.
	// Env: GOPASS_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Account identifies the vault owner.
type Account struct {
	// Email is the account login and the KDF salt.
	// Env: GOPASS_ACCOUNT_EMAIL
	Email string `env:"EMAIL"`
}

// Provider holds the sync provider settings.
type Provider struct {
	// BaseURL is the vault API root (sync, entry pushes).
	// Env: GOPASS_PROVIDER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// IdentityURL is the authentication API root (prelogin, token).
	// Env: GOPASS_PROVIDER_IDENTITY_URL
	IdentityURL string `env:"IDENTITY_URL"`

	// RequestTimeout bounds every provider HTTP call.
	// Env: GOPASS_PROVIDER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Agent holds the daemon settings.
type Agent struct {
	// LockTimeout is the inactivity period after which the agent discards
	// the vault key. Each secret-touching request restarts it.
	// Env: GOPASS_AGENT_LOCK_TIMEOUT
	LockTimeout time.Duration `env:"LOCK_TIMEOUT"`

	// SyncInterval is the period of the background sync job while
	// unlocked. A negative value disables it.
	// Env: GOPASS_AGENT_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// RuntimeDir holds the socket and the pid lock file.
	// Env: GOPASS_AGENT_RUNTIME_DIR
	RuntimeDir string `env:"RUNTIME_DIR"`

	// Binary is the agent executable the front end spawns.
	// Env: GOPASS_AGENT_BINARY
	Binary string `env:"BINARY"`
}

// Storage holds the persistence locations.
type Storage struct {
	// DataDir holds the vault cache, the journal and the agent log.
	// Env: GOPASS_STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`
}

// SocketPath is the agent's unix socket.
func (a Agent) SocketPath() string { return filepath.Join(a.RuntimeDir, "agent.sock") }

// PIDPath is the agent's pid lock file.
func (a Agent) PIDPath() string { return filepath.Join(a.RuntimeDir, "agent.pid") }

// VaultPath is the vault cache file.
func (s Storage) VaultPath() string { return filepath.Join(s.DataDir, "vault.json") }

// JournalPath is the journal database.
func (s Storage) JournalPath() string { return filepath.Join(s.DataDir, "journal.db") }

// LogPath is the agent log file.
func (s Storage) LogPath() string { return filepath.Join(s.DataDir, "agent.log") }

// GetAgentConfig loads the daemon configuration. Sources in priority order
// (earlier sources win for non-zero fields):
//  1. Command-line flags from args
//  2. Environment variables
//  3. JSON config file
//  4. Defaults
func GetAgentConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// GetCLIConfig loads the front-end configuration. The front end parses its
// own flags with cobra, so only environment, JSON file and defaults apply.
func GetCLIConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
