// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultFormatVersion is written into every vault cache file. Files with a
// different version are rejected instead of being misread.
const VaultFormatVersion = 1

// VaultCache is the on-disk envelope of the local vault. The header fields
// (email, KDF parameters, protected key, tokens) are plaintext. Entries only
// carry cipher strings.
type VaultCache struct {
	Version      int           `json:"version"`
	Email        string        `json:"email,omitempty"`
	KDF          KDFParams     `json:"kdf"`
	ProtectedKey string        `json:"protected_key,omitempty"`
	AccessToken  string        `json:"access_token,omitempty"`
	RefreshToken string        `json:"refresh_token,omitempty"`
	VaultID      string        `json:"vault_id,omitempty"`
	LastSync     time.Time     `json:"last_sync,omitempty"`
	Entries      []CipherEntry `json:"entries"`
}

// NewVaultCache returns an empty, logged-out cache.
func NewVaultCache() *VaultCache {
	return &VaultCache{Version: VaultFormatVersion, Entries: []CipherEntry{}}
}

// LoggedIn reports whether a successful login has been recorded.
func (v *VaultCache) LoggedIn() bool {
	return v.ProtectedKey != "" && v.AccessToken != ""
}

// Clone returns a deep copy so sync can build a new state without touching
// the live cache until it commits.
func (v *VaultCache) Clone() *VaultCache {
	c := *v
	c.Entries = make([]CipherEntry, len(v.Entries))
	copy(c.Entries, v.Entries)
	return &c
}

// Live returns entries that are not tombstones.
func (v *VaultCache) Live() []CipherEntry {
	out := make([]CipherEntry, 0, len(v.Entries))
	for _, e := range v.Entries {
		if !e.Deleted {
			out = append(out, e)
		}
	}
	return out
}

// Dirty returns the number of entries with unpushed local changes.
func (v *VaultCache) Dirty() int {
	n := 0
	for _, e := range v.Entries {
		if e.Dirty {
			n++
		}
	}
	return n
}
