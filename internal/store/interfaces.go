// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the agent's local state: the vault cache file,
// which holds only encrypted entries, and the SQLite activity journal.
package store

import (
	"context"

	"github.com/MKhiriev/go-pass-agent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultStore loads and replaces the vault cache file.
type VaultStore interface {
	// Load reads the cache. A missing file yields an empty, logged-out
	// cache and no error.
	Load(ctx context.Context) (*models.VaultCache, error)

	// Save replaces the cache file atomically. Readers observe either the
	// previous or the new content, never a partial write.
	Save(ctx context.Context, vault *models.VaultCache) error

	// Purge deletes the cache file. A missing file is not an error.
	Purge(ctx context.Context) error
}

// JournalRepository records agent activity.
type JournalRepository interface {
	// Append stores one event.
	Append(ctx context.Context, event models.JournalEvent) error

	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, limit uint64) ([]models.JournalEvent, error)

	// Clear removes every event; used by purge.
	Clear(ctx context.Context) error
}
