// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AgentStatus is returned by the `status` request.
type AgentStatus struct {
	PID       int            `cbor:"pid"`
	Version   string         `cbor:"version"`
	Locked    bool           `cbor:"locked"`
	LoggedIn  bool           `cbor:"logged_in"`
	Email     string         `cbor:"email,omitempty"`
	KDF       string         `cbor:"kdf,omitempty"`
	Entries   int            `cbor:"entries"`
	Dirty     int            `cbor:"dirty"`
	LastSync  time.Time      `cbor:"last_sync,omitempty"`
	ExpiresAt time.Time      `cbor:"expires_at,omitempty"`
	Recent    []JournalEvent `cbor:"recent,omitempty"`
}
