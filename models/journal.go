// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Journal results.
const (
	JournalSuccess = "success"
	JournalError   = "error"
)

// JournalEvent is one row of the agent's activity journal. It never carries
// secret material, only the operation name and the entry id it touched.
type JournalEvent struct {
	ID        string    `db:"id" json:"id" cbor:"id"`
	Operation string    `db:"operation" json:"operation" cbor:"operation"`
	EntryID   string    `db:"entry_id" json:"entry_id,omitempty" cbor:"entry_id,omitempty"`
	Result    string    `db:"result" json:"result" cbor:"result"`
	ErrorCode string    `db:"error_code" json:"error_code,omitempty" cbor:"error_code,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at" cbor:"created_at"`
}
