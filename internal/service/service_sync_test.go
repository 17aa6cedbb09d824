// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-agent/internal/adapter"
	"github.com/MKhiriev/go-pass-agent/internal/crypto"
	"github.com/MKhiriev/go-pass-agent/internal/logger"
	"github.com/MKhiriev/go-pass-agent/internal/mock"
	"github.com/MKhiriev/go-pass-agent/internal/store"
	"github.com/MKhiriev/go-pass-agent/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSyncSvc(t *testing.T, ctrl *gomock.Controller, vaultStore store.VaultStore) (*syncService, *mock.MockSyncProvider, crypto.KeyChainService) {
	t.Helper()
	kc := crypto.NewKeyChainService()
	mockProvider := mock.NewMockSyncProvider(ctrl)

	svc := NewSyncService(vaultStore, mockProvider, kc, logger.Nop()).(*syncService)
	svc.now = fixedClock(testNow)
	return svc, mockProvider, kc
}

// ── Preconditions ────────────────────────────────────────────────────────────

func TestSyncService_NotLoggedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestSyncSvc(t, ctrl, mock.NewMockVaultStore(ctrl))

	_, _, err := svc.Sync(context.Background(), newTestKeys(t), models.NewVaultCache())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestSyncService_Locked(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestSyncSvc(t, ctrl, mock.NewMockVaultStore(ctrl))

	_, _, err := svc.Sync(context.Background(), nil, loggedInVault(t))
	assert.ErrorIs(t, err, ErrLocked)
}

// ── Success ──────────────────────────────────────────────────────────────────

func TestSyncService_Reconciles(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mock.NewMockVaultStore(ctrl)
	svc, mockProvider, kc := newTestSyncSvc(t, ctrl, mockStore)
	ctx := context.Background()
	keys := newTestKeys(t)

	old := testNow.Add(-24 * time.Hour)
	vault := loggedInVault(t)

	added := sealEntry(t, kc, keys, models.Entry{ID: "added", Name: "new", RevisionDate: testNow})
	added.Dirty = true
	stale := sealEntry(t, kc, keys, models.Entry{ID: "stale", Name: "gone remotely", RevisionDate: old})
	tomb := sealEntry(t, kc, keys, models.Entry{ID: "tomb", Name: "removed", RevisionDate: testNow})
	tomb.Dirty, tomb.Deleted = true, true
	same := sealEntry(t, kc, keys, models.Entry{ID: "same", Name: "unchanged", RevisionDate: old})
	vault.Entries = []models.CipherEntry{added, stale, tomb, same}

	remoteTomb := tomb
	remoteTomb.Dirty, remoteTomb.Deleted, remoteTomb.RevisionDate = false, false, old
	fresh := sealEntry(t, kc, keys, models.Entry{ID: "fresh", Name: "from another device", RevisionDate: old})
	remote := models.RemoteVault{VaultID: "v1", Entries: []models.CipherEntry{same, remoteTomb, fresh}}

	stored := added
	stored.Dirty = false
	stored.RevisionDate = testNow.Add(time.Second)

	gomock.InOrder(
		mockProvider.EXPECT().FetchVault(ctx, vault.AccessToken).Return(remote, nil),
		mockProvider.EXPECT().PushEntries(ctx, vault.AccessToken, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, req models.PushRequest) (models.PushResponse, error) {
				require.Len(t, req.Entries, 1)
				assert.Equal(t, "added", req.Entries[0].ID)
				assert.False(t, req.Entries[0].Dirty)
				return models.PushResponse{Entries: []models.CipherEntry{stored}}, nil
			}),
		mockProvider.EXPECT().DeleteEntries(ctx, vault.AccessToken, models.RemoveRequest{IDs: []string{"tomb"}}).Return(nil),
		mockStore.EXPECT().Save(ctx, gomock.Any()).Return(nil),
	)

	next, stats, err := svc.Sync(ctx, keys, vault)
	require.NoError(t, err)

	assert.Equal(t, models.SyncStats{Downloaded: 1, Uploaded: 1, Deleted: 1, Dropped: 1}, stats)
	assert.ElementsMatch(t, []string{"same", "fresh", "added"}, ids(next.Entries))
	assert.Zero(t, next.Dirty())
	assert.Equal(t, "v1", next.VaultID)
	assert.Equal(t, testNow, next.LastSync)
	assert.Len(t, vault.Entries, 4, "input cache must not be modified")
}

func TestSyncService_RefreshesExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mock.NewMockVaultStore(ctrl)
	svc, mockProvider, _ := newTestSyncSvc(t, ctrl, mockStore)
	ctx := context.Background()

	vault := loggedInVault(t)
	vault.AccessToken = "opaque-expired"

	gomock.InOrder(
		mockProvider.EXPECT().Refresh(ctx, "refresh").Return(models.AuthContext{AccessToken: "new-at", RefreshToken: "new-rt"}, nil),
		mockStore.EXPECT().Save(ctx, gomock.Any()).Return(nil),
		mockProvider.EXPECT().FetchVault(ctx, "new-at").Return(models.RemoteVault{}, nil),
		mockStore.EXPECT().Save(ctx, gomock.Any()).Return(nil),
	)

	next, _, err := svc.Sync(ctx, newTestKeys(t), vault)
	require.NoError(t, err)
	assert.Equal(t, "new-at", next.AccessToken)
	assert.Equal(t, "new-rt", next.RefreshToken)
}

// TestSyncService_KeepsRefreshedTokensOnFailure checks that a rotated
// refresh token is not lost when a later step fails.
func TestSyncService_KeepsRefreshedTokensOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	path := filepath.Join(t.TempDir(), "vault.json")
	fileStore := store.NewFileVaultStore(path, logger.Nop())
	svc, mockProvider, kc := newTestSyncSvc(t, ctrl, fileStore)
	ctx := context.Background()
	keys := newTestKeys(t)

	vault := loggedInVault(t)
	vault.AccessToken = "opaque-expired"
	dirty := sealEntry(t, kc, keys, models.Entry{ID: "e1", Name: "mail", Password: "p", RevisionDate: testNow})
	dirty.Dirty = true
	vault.Entries = []models.CipherEntry{dirty}
	require.NoError(t, fileStore.Save(ctx, vault))

	gomock.InOrder(
		mockProvider.EXPECT().Refresh(ctx, "refresh").Return(models.AuthContext{AccessToken: "new-at", RefreshToken: "new-rt"}, nil),
		mockProvider.EXPECT().FetchVault(ctx, "new-at").Return(models.RemoteVault{}, adapter.ErrUnavailable),
	)

	next, _, err := svc.Sync(ctx, keys, vault)
	assert.ErrorIs(t, err, ErrSyncFailed)
	require.NotNil(t, next)
	assert.Equal(t, "new-at", next.AccessToken)
	assert.Equal(t, "new-rt", next.RefreshToken)
	assert.Equal(t, vault.Entries, next.Entries)
	assert.Equal(t, "refresh", vault.RefreshToken, "input cache must not be modified")

	onDisk, err := fileStore.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-rt", onDisk.RefreshToken)
	require.Len(t, onDisk.Entries, 1)
	assert.True(t, onDisk.Entries[0].Dirty)
}

// ── Failures ─────────────────────────────────────────────────────────────────

// TestSyncService_FailureLeavesFileUntouched runs against the real cache file
// and compares it byte for byte.
func TestSyncService_FailureLeavesFileUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	path := filepath.Join(t.TempDir(), "vault.json")
	fileStore := store.NewFileVaultStore(path, logger.Nop())
	svc, mockProvider, kc := newTestSyncSvc(t, ctrl, fileStore)
	ctx := context.Background()
	keys := newTestKeys(t)

	vault := loggedInVault(t)
	dirty := sealEntry(t, kc, keys, models.Entry{ID: "e1", Name: "mail", Password: "p", RevisionDate: testNow})
	dirty.Dirty = true
	vault.Entries = []models.CipherEntry{dirty}
	require.NoError(t, fileStore.Save(ctx, vault))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	tests := []struct {
		name  string
		setup func()
	}{
		{"fetch unreachable", func() {
			mockProvider.EXPECT().FetchVault(ctx, gomock.Any()).Return(models.RemoteVault{}, adapter.ErrUnavailable)
		}},
		{"fetch unauthorized", func() {
			mockProvider.EXPECT().FetchVault(ctx, gomock.Any()).Return(models.RemoteVault{}, adapter.ErrUnauthorized)
		}},
		{"push rejected", func() {
			mockProvider.EXPECT().FetchVault(ctx, gomock.Any()).Return(models.RemoteVault{}, nil)
			mockProvider.EXPECT().PushEntries(ctx, gomock.Any(), gomock.Any()).Return(models.PushResponse{}, adapter.ErrInternalServerError)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			next, _, err := svc.Sync(ctx, keys, vault)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyncFailed)
			assert.Nil(t, next)

			after, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestSyncService_ForeignRemoteEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockProvider, kc := newTestSyncSvc(t, ctrl, mock.NewMockVaultStore(ctrl))
	ctx := context.Background()
	keys := newTestKeys(t)

	foreign := sealEntry(t, kc, newTestKeys(t), models.Entry{ID: "x", Name: "not ours"})
	mockProvider.EXPECT().FetchVault(ctx, gomock.Any()).Return(models.RemoteVault{Entries: []models.CipherEntry{foreign}}, nil)

	_, _, err := svc.Sync(ctx, keys, loggedInVault(t))
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}
