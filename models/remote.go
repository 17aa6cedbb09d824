// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RemoteVault is the full vault snapshot returned by the sync provider.
// Entries are live records; deletions are expressed by absence.
type RemoteVault struct {
	VaultID string        `json:"vault_id"`
	Entries []CipherEntry `json:"entries"`
}

// PushRequest uploads new or modified entries.
type PushRequest struct {
	Entries []CipherEntry `json:"entries"`
}

// PushResponse returns the pushed entries as stored by the provider, with
// provider-assigned revision dates.
type PushResponse struct {
	Entries []CipherEntry `json:"entries"`
}

// RemoveRequest deletes entries on the provider by id.
type RemoveRequest struct {
	IDs []string `json:"ids"`
}
