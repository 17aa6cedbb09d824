// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-agent/internal/logger"
	"github.com/MKhiriev/go-pass-agent/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVaultStore(t *testing.T) (VaultStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "vault.json")
	return NewFileVaultStore(path, logger.Nop()), path
}

func TestFileVaultStore_LoadMissingIsEmpty(t *testing.T) {
	s, _ := newTestVaultStore(t)

	vault, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, vault.LoggedIn())
	assert.Empty(t, vault.Entries)
	assert.Equal(t, models.VaultFormatVersion, vault.Version)
}

func TestFileVaultStore_SaveThenLoad(t *testing.T) {
	s, path := newTestVaultStore(t)
	ctx := context.Background()

	rev := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	in := models.NewVaultCache()
	in.Email = "user@example.com"
	in.KDF = models.KDFParams{Type: models.KDFPBKDF2, Iterations: 600000}
	in.ProtectedKey = "2.cHJvdGVjdGVk"
	in.AccessToken = "access"
	in.Entries = []models.CipherEntry{{ID: "e1", Name: "2.bmFtZQ==", RevisionDate: rev, Dirty: true}}

	require.NoError(t, s.Save(ctx, in))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	out, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFileVaultStore_SaveLeavesNoTempFiles(t *testing.T) {
	s, path := newTestVaultStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Save(ctx, models.NewVaultCache()))
	}

	files, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "vault.json", files[0].Name())
}

func TestFileVaultStore_LoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"corrupt", "{not json", ErrCorruptVault},
		{"future version", `{"version": 99, "entries": []}`, ErrUnsupportedVaultVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, path := newTestVaultStore(t)
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := s.Load(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(data), "a bad file is never rewritten by Load")
		})
	}
}

func TestFileVaultStore_Purge(t *testing.T) {
	s, path := newTestVaultStore(t)
	ctx := context.Background()

	require.NoError(t, s.Purge(ctx), "purging a missing file is fine")

	require.NoError(t, s.Save(ctx, models.NewVaultCache()))
	require.NoError(t, s.Purge(ctx))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
