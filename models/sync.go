// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncPlan classifies every entry seen on either side of a sync into exactly
// one action.
type SyncPlan struct {
	// Download holds remote entries that replace (or become) the local copy.
	Download []CipherEntry
	// Upload holds dirty local entries that win over the remote copy.
	Upload []CipherEntry
	// DeleteRemote holds dirty local tombstones whose entry still exists
	// remotely.
	DeleteRemote []CipherEntry
	// DropLocal holds local ids that disappear without any remote call:
	// clean entries deleted remotely and tombstones never pushed.
	DropLocal []string
}

// Empty reports whether the plan requires any provider write.
func (p SyncPlan) Empty() bool {
	return len(p.Upload) == 0 && len(p.DeleteRemote) == 0
}

// SyncStats counts what a completed sync changed.
type SyncStats struct {
	Downloaded int `cbor:"downloaded"`
	Uploaded   int `cbor:"uploaded"`
	Deleted    int `cbor:"deleted"`
	Dropped    int `cbor:"dropped"`
}
