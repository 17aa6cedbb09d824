package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-agent/internal/adapter"
	"github.com/MKhiriev/go-pass-agent/internal/crypto"
	"github.com/MKhiriev/go-pass-agent/internal/logger"
	"github.com/MKhiriev/go-pass-agent/internal/store"
	"github.com/MKhiriev/go-pass-agent/internal/utils"
	"github.com/MKhiriev/go-pass-agent/models"
)

// tokenLeeway refreshes access tokens that are about to expire mid-sync.
const tokenLeeway = time.Minute

type syncService struct {
	vaultStore store.VaultStore
	provider   adapter.SyncProvider
	keyChain   crypto.KeyChainService
	now        clock

	logger *logger.Logger
}

func NewSyncService(vaultStore store.VaultStore, provider adapter.SyncProvider, keyChain crypto.KeyChainService, logger *logger.Logger) SyncService {
	return &syncService{
		vaultStore: vaultStore,
		provider:   provider,
		keyChain:   keyChain,
		logger:     logger,
	}
}

func (s *syncService) Sync(ctx context.Context, keys *crypto.Keys, vault *models.VaultCache) (*models.VaultCache, models.SyncStats, error) {
	if !vault.LoggedIn() {
		return nil, models.SyncStats{}, ErrNotLoggedIn
	}
	if keys == nil {
		return nil, models.SyncStats{}, ErrLocked
	}

	next := vault.Clone()
	now := s.now.now()

	// refreshed holds the old entries under rotated tokens; it is what a
	// failure past S1 hands back.
	var refreshed *models.VaultCache
	fail := func(err error) (*models.VaultCache, models.SyncStats, error) {
		return refreshed, models.SyncStats{}, err
	}

	// S1: fresh access token
	if utils.TokenExpired(next.AccessToken, now, tokenLeeway) {
		auth, err := s.provider.Refresh(ctx, next.RefreshToken)
		if err != nil {
			return nil, models.SyncStats{}, fmt.Errorf("refresh token: %w", mapAdapterError(err, false))
		}
		next.AccessToken = auth.AccessToken
		next.RefreshToken = auth.RefreshToken

		if err = s.vaultStore.Save(ctx, next); err != nil {
			return nil, models.SyncStats{}, fmt.Errorf("save refreshed tokens: %w", err)
		}
		refreshed = next.Clone()
	}

	// S2: remote snapshot
	remote, err := s.provider.FetchVault(ctx, next.AccessToken)
	if err != nil {
		return fail(fmt.Errorf("fetch vault: %w", mapAdapterError(err, false)))
	}

	// S3: every remote entry must open with our key
	for _, r := range remote.Entries {
		if _, err = s.keyChain.Decrypt(keys, r.Name, crypto.FieldData(r.ID, fieldName)); err != nil {
			return fail(fmt.Errorf("remote entry %s: %w", r.ID, err))
		}
	}

	// S4: plan
	plan := BuildSyncPlan(next.Entries, remote.Entries)

	// S5: provider writes
	pushed, err := s.executePlan(ctx, next.AccessToken, plan)
	if err != nil {
		return fail(err)
	}

	// S6: compose and persist
	stats := models.SyncStats{
		Downloaded: countChanged(next.Entries, plan.Download),
		Uploaded:   len(pushed),
		Deleted:    len(plan.DeleteRemote),
		Dropped:    len(plan.DropLocal),
	}

	entries := make([]models.CipherEntry, 0, len(plan.Download)+len(pushed))
	for _, e := range plan.Download {
		e.Dirty = false
		e.Deleted = false
		entries = append(entries, e)
	}
	for _, e := range pushed {
		e.Dirty = false
		entries = append(entries, e)
	}

	next.Entries = entries
	next.VaultID = remote.VaultID
	next.LastSync = now

	if err = s.vaultStore.Save(ctx, next); err != nil {
		return fail(fmt.Errorf("save vault after sync: %w", err))
	}

	s.logger.Info().
		Int("downloaded", stats.Downloaded).
		Int("uploaded", stats.Uploaded).
		Int("deleted", stats.Deleted).
		Int("dropped", stats.Dropped).
		Msg("sync complete")
	return next, stats, nil
}

// executePlan runs the provider writes of plan and returns the entries as
// stored by the provider.
func (s *syncService) executePlan(ctx context.Context, accessToken string, plan models.SyncPlan) ([]models.CipherEntry, error) {
	var pushed []models.CipherEntry

	if len(plan.Upload) > 0 {
		batch := make([]models.CipherEntry, len(plan.Upload))
		for i, e := range plan.Upload {
			e.Dirty = false
			batch[i] = e
		}
		resp, err := s.provider.PushEntries(ctx, accessToken, models.PushRequest{Entries: batch})
		if err != nil {
			return nil, fmt.Errorf("push entries: %w", mapAdapterError(err, false))
		}
		pushed = resp.Entries
	}

	if len(plan.DeleteRemote) > 0 {
		ids := make([]string, len(plan.DeleteRemote))
		for i, e := range plan.DeleteRemote {
			ids[i] = e.ID
		}
		if err := s.provider.DeleteEntries(ctx, accessToken, models.RemoveRequest{IDs: ids}); err != nil {
			return nil, fmt.Errorf("delete entries: %w", mapAdapterError(err, false))
		}
	}

	return pushed, nil
}

// countChanged counts downloads that differ from what the cache held.
func countChanged(local, download []models.CipherEntry) int {
	byID := make(map[string]models.CipherEntry, len(local))
	for _, l := range local {
		byID[l.ID] = l
	}

	n := 0
	for _, r := range download {
		l, ok := byID[r.ID]
		if !ok || l.Dirty || !l.RevisionDate.Equal(r.RevisionDate) {
			n++
		}
	}
	return n
}
