// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// validate checks that the final merged [StructuredConfig] is usable.
// Email is not required here: it is only needed by login.
func (cfg *StructuredConfig) validate() error {
	for _, raw := range []string{cfg.Provider.BaseURL, cfg.Provider.IdentityURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: url %q", ErrInvalidProviderConfigs, raw)
		}
	}
	if cfg.Provider.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidProviderConfigs)
	}

	if cfg.Agent.LockTimeout <= 0 {
		return fmt.Errorf("%w: lock timeout must be positive", ErrInvalidAgentConfigs)
	}
	if !filepath.IsAbs(cfg.Agent.RuntimeDir) {
		return fmt.Errorf("%w: runtime dir %q must be absolute", ErrInvalidAgentConfigs, cfg.Agent.RuntimeDir)
	}

	if !filepath.IsAbs(cfg.Storage.DataDir) {
		return fmt.Errorf("%w: data dir %q must be absolute", ErrInvalidStorageConfigs, cfg.Storage.DataDir)
	}

	return nil
}

// SyncEnabled reports whether the background sync job should run.
func (a Agent) SyncEnabled() bool {
	return a.SyncInterval > 0
}
