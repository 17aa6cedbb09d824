// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CipherEntry is the at-rest form of a vault entry. Every secret field is a
// cipher string produced by the crypto engine; none of them is ever written
// to disk or the wire in plaintext.
//
// Dirty marks a local mutation not yet pushed to the sync provider. Deleted
// turns the entry into a tombstone that is kept until the deletion has been
// propagated.
type CipherEntry struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username,omitempty"`
	Password     string    `json:"password,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Folder       string    `json:"folder,omitempty"`
	RevisionDate time.Time `json:"revision_date"`
	Deleted      bool      `json:"deleted,omitempty"`
	Dirty        bool      `json:"dirty,omitempty"`
}

// Entry is a decrypted vault entry. It only exists in agent memory while
// the session is unlocked and in IPC responses to the front end.
type Entry struct {
	ID           string    `json:"id" cbor:"id"`
	Name         string    `json:"name" cbor:"name"`
	Username     string    `json:"username,omitempty" cbor:"username,omitempty"`
	Password     string    `json:"password,omitempty" cbor:"password,omitempty"`
	Notes        string    `json:"notes,omitempty" cbor:"notes,omitempty"`
	Folder       string    `json:"folder,omitempty" cbor:"folder,omitempty"`
	RevisionDate time.Time `json:"revision_date" cbor:"revision_date"`
}

// EntrySummary is what `list` returns: identifying fields without secrets.
type EntrySummary struct {
	ID       string `json:"id" cbor:"id"`
	Name     string `json:"name" cbor:"name"`
	Username string `json:"username,omitempty" cbor:"username,omitempty"`
	Folder   string `json:"folder,omitempty" cbor:"folder,omitempty"`
}

// Summary drops the secret fields of e.
func (e Entry) Summary() EntrySummary {
	return EntrySummary{ID: e.ID, Name: e.Name, Username: e.Username, Folder: e.Folder}
}

// EntryPatch describes an edit. Nil fields are left untouched.
type EntryPatch struct {
	Name     *string `cbor:"name,omitempty"`
	Username *string `cbor:"username,omitempty"`
	Password *string `cbor:"password,omitempty"`
	Notes    *string `cbor:"notes,omitempty"`
	Folder   *string `cbor:"folder,omitempty"`
}
