package service

import "github.com/MKhiriev/go-pass-agent/models"

// BuildSyncPlan classifies local and remote entries by id with a
// last-write-wins rule on RevisionDate:
//
//   - remote only: download
//   - local only, clean: the provider deleted it, drop locally
//   - local only, dirty tombstone: never reached the provider, drop locally
//   - local only, dirty: upload
//   - both, local dirty and strictly newer: upload, or delete remotely for
//     a tombstone
//   - both, otherwise: download (the remote copy wins ties)
//
// The plan preserves local order followed by remote-only entries in remote
// order.
func BuildSyncPlan(local, remote []models.CipherEntry) models.SyncPlan {
	var plan models.SyncPlan

	remoteByID := make(map[string]models.CipherEntry, len(remote))
	for _, r := range remote {
		remoteByID[r.ID] = r
	}

	seen := make(map[string]struct{}, len(local))
	for _, l := range local {
		seen[l.ID] = struct{}{}

		r, onRemote := remoteByID[l.ID]
		switch {
		case !onRemote && l.Dirty && !l.Deleted:
			plan.Upload = append(plan.Upload, l)
		case !onRemote:
			plan.DropLocal = append(plan.DropLocal, l.ID)
		case l.Dirty && l.RevisionDate.After(r.RevisionDate):
			if l.Deleted {
				plan.DeleteRemote = append(plan.DeleteRemote, l)
			} else {
				plan.Upload = append(plan.Upload, l)
			}
		default:
			plan.Download = append(plan.Download, r)
		}
	}

	for _, r := range remote {
		if _, ok := seen[r.ID]; !ok {
			plan.Download = append(plan.Download, r)
		}
	}

	return plan
}
