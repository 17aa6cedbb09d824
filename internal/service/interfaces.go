// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the vault operations the agent exposes: login
// and unlock, entry lookups and edits, password generation and sync.
//
// Services are stateless with respect to the session. The caller (the agent)
// owns the live [models.VaultCache] and the unwrapped [crypto.Keys] and passes
// them in under its own mutex. Mutating operations never modify the cache they
// are given: they build the next cache from a clone, persist it through
// [store.VaultStore] and return it, so the caller swaps its pointer only after
// the file on disk has been replaced.
package service

import (
	"context"

	"github.com/MKhiriev/go-pass-agent/internal/crypto"
	"github.com/MKhiriev/go-pass-agent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService turns a master password into an unwrapped vault key.
type AuthService interface {
	// Login authenticates email against the sync provider, records the
	// returned tokens and protected key in the next cache and unlocks with
	// the same password. Switching to another account discards the cached
	// entries of the previous one.
	Login(ctx context.Context, vault *models.VaultCache, email, password string) (*models.VaultCache, *crypto.Keys, error)

	// Unlock re-derives the master key from the cached KDF parameters and
	// unwraps the protected key. It needs no network.
	Unlock(ctx context.Context, vault *models.VaultCache, password string) (*crypto.Keys, error)
}

// VaultService reads and edits entries of an unlocked vault.
type VaultService interface {
	// List returns summaries of every live entry sorted by name, then user.
	List(ctx context.Context, keys *crypto.Keys, vault *models.VaultCache) ([]models.EntrySummary, error)

	// Get returns the single entry matching name (or id) and, when given,
	// user.
	Get(ctx context.Context, keys *crypto.Keys, vault *models.VaultCache, name, user string) (models.Entry, error)

	// Add encrypts entry under a fresh id and stores it dirty.
	Add(ctx context.Context, keys *crypto.Keys, vault *models.VaultCache, entry models.Entry) (*models.VaultCache, models.Entry, error)

	// Edit applies patch to the entry matching name and user.
	Edit(ctx context.Context, keys *crypto.Keys, vault *models.VaultCache, name, user string, patch models.EntryPatch) (*models.VaultCache, models.Entry, error)

	// Upsert edits the password and folder of the entry matching entry's
	// name and user, or adds entry when there is none.
	Upsert(ctx context.Context, keys *crypto.Keys, vault *models.VaultCache, entry models.Entry) (*models.VaultCache, models.Entry, error)

	// Remove turns the matching entry into a dirty tombstone and returns its
	// id.
	Remove(ctx context.Context, keys *crypto.Keys, vault *models.VaultCache, name, user string) (*models.VaultCache, string, error)

	// Generate draws a new password. It touches no vault state.
	Generate(ctx context.Context, policy models.PasswordPolicy, length int) (string, error)

	// Flush rewrites the cache file with vault unchanged.
	Flush(ctx context.Context, vault *models.VaultCache) error

	// Purge deletes the cache file and returns an empty cache.
	Purge(ctx context.Context) (*models.VaultCache, error)
}

// SyncService reconciles the local cache with the sync provider.
type SyncService interface {
	// Sync refreshes the access token if needed, fetches the remote vault,
	// pushes local changes that win and returns the persisted result. A
	// failure leaves the entries in the cache file untouched. When the token
	// was refreshed before the failure, the new tokens are persisted anyway
	// and the returned cache carries them next to the error; otherwise the
	// returned cache is nil.
	Sync(ctx context.Context, keys *crypto.Keys, vault *models.VaultCache) (*models.VaultCache, models.SyncStats, error)
}
