// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pass-agent/internal/logger"
	"github.com/MKhiriev/go-pass-agent/models"
	"github.com/natefinch/atomic"
)

type fileVaultStore struct {
	path   string
	logger *logger.Logger
}

// NewFileVaultStore returns a [VaultStore] backed by a single JSON file at
// path. Writes go through a temporary file in the same directory and a
// rename, so a crash mid-write never truncates the cache.
func NewFileVaultStore(path string, log *logger.Logger) VaultStore {
	return &fileVaultStore{path: path, logger: log}
}

// Load implements [VaultStore].
func (s *fileVaultStore) Load(ctx context.Context) (*models.VaultCache, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.NewVaultCache(), nil
		}
		return nil, fmt.Errorf("read vault cache: %w", err)
	}

	vault := models.NewVaultCache()
	if err = json.Unmarshal(data, vault); err != nil {
		log.Err(err).Str("func", "fileVaultStore.Load").Str("path", s.path).Msg("failed to decode vault cache")
		return nil, fmt.Errorf("%w: %v", ErrCorruptVault, err)
	}
	if vault.Version != models.VaultFormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVaultVersion, vault.Version)
	}
	if vault.Entries == nil {
		vault.Entries = []models.CipherEntry{}
	}

	return vault, nil
}

// Save implements [VaultStore].
func (s *fileVaultStore) Save(ctx context.Context, vault *models.VaultCache) error {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create vault dir: %w", err)
	}

	vault.Version = models.VaultFormatVersion
	payload, err := json.MarshalIndent(vault, "", "  ")
	if err != nil {
		return fmt.Errorf("encode vault cache: %w", err)
	}

	if err = atomic.WriteFile(s.path, bytes.NewReader(payload)); err != nil {
		log.Err(err).Str("func", "fileVaultStore.Save").Str("path", s.path).Msg("failed to replace vault cache")
		return fmt.Errorf("write vault cache: %w", err)
	}
	if err = os.Chmod(s.path, 0o600); err != nil {
		return fmt.Errorf("restrict vault cache mode: %w", err)
	}

	log.Debug().Int("entries", len(vault.Entries)).Msg("vault cache saved")
	return nil
}

// Purge implements [VaultStore].
func (s *fileVaultStore) Purge(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove vault cache: %w", err)
	}
	logger.FromContext(ctx).Debug().Str("path", s.path).Msg("vault cache purged")
	return nil
}
