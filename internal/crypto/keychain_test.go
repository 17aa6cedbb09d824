// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pass-agent/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPBKDF2 = models.KDFParams{Type: models.KDFPBKDF2, Iterations: minPBKDF2Iterations}
	testArgon  = models.KDFParams{Type: models.KDFArgon2id, Iterations: 2, Memory: 16, Parallelism: 1}
)

func newTestKeys(t *testing.T, kc KeyChainService) *Keys {
	t.Helper()
	raw, err := kc.NewVaultKey()
	require.NoError(t, err)
	keys, err := NewKeys(raw)
	require.NoError(t, err)
	t.Cleanup(func() { _ = keys.Close() })
	return keys
}

// ── MasterKey ────────────────────────────────────────────────────────────────

func TestMasterKey_Deterministic(t *testing.T) {
	kc := NewKeyChainService()

	for _, params := range []models.KDFParams{testPBKDF2, testArgon} {
		t.Run(params.Type.String(), func(t *testing.T) {
			a, err := kc.MasterKey("hunter2", "user@example.com", params)
			require.NoError(t, err)
			b, err := kc.MasterKey("hunter2", "user@example.com", params)
			require.NoError(t, err)

			assert.Len(t, a, KeySize)
			assert.Equal(t, a, b)
		})
	}
}

func TestMasterKey_EmailIsNormalized(t *testing.T) {
	kc := NewKeyChainService()

	a, err := kc.MasterKey("hunter2", "User@Example.com ", testPBKDF2)
	require.NoError(t, err)
	b, err := kc.MasterKey("hunter2", "user@example.com", testPBKDF2)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestMasterKey_InputsChangeOutput(t *testing.T) {
	kc := NewKeyChainService()

	base, err := kc.MasterKey("hunter2", "user@example.com", testPBKDF2)
	require.NoError(t, err)

	otherPassword, err := kc.MasterKey("hunter3", "user@example.com", testPBKDF2)
	require.NoError(t, err)
	otherSalt, err := kc.MasterKey("hunter2", "other@example.com", testPBKDF2)
	require.NoError(t, err)
	otherIter, err := kc.MasterKey("hunter2", "user@example.com",
		models.KDFParams{Type: models.KDFPBKDF2, Iterations: minPBKDF2Iterations + 1})
	require.NoError(t, err)
	otherKDF, err := kc.MasterKey("hunter2", "user@example.com", testArgon)
	require.NoError(t, err)

	assert.NotEqual(t, base, otherPassword)
	assert.NotEqual(t, base, otherSalt)
	assert.NotEqual(t, base, otherIter)
	assert.NotEqual(t, base, otherKDF)
}

func TestMasterKey_Rejects(t *testing.T) {
	kc := NewKeyChainService()

	tests := []struct {
		name     string
		password string
		params   models.KDFParams
		wantErr  error
	}{
		{"empty password", "", testPBKDF2, ErrInvalidPassword},
		{"weak pbkdf2", "pw", models.KDFParams{Type: models.KDFPBKDF2, Iterations: 1}, ErrInvalidKDFParams},
		{"argon no memory", "pw", models.KDFParams{Type: models.KDFArgon2id, Iterations: 3, Parallelism: 1}, ErrInvalidKDFParams},
		{"argon no threads", "pw", models.KDFParams{Type: models.KDFArgon2id, Iterations: 3, Memory: 64}, ErrInvalidKDFParams},
		{"unknown type", "pw", models.KDFParams{Type: 7, Iterations: 100000}, ErrInvalidKDFParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := kc.MasterKey(tt.password, "user@example.com", tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthHash_DiffersFromMasterKey(t *testing.T) {
	kc := NewKeyChainService()
	mk, err := kc.MasterKey("hunter2", "user@example.com", testPBKDF2)
	require.NoError(t, err)

	hash := kc.AuthHash(mk, "hunter2")
	raw, err := base64.StdEncoding.DecodeString(hash)
	require.NoError(t, err)

	assert.Len(t, raw, KeySize)
	assert.NotEqual(t, mk, raw)
	assert.Equal(t, hash, kc.AuthHash(mk, "hunter2"))
}

// ── Wrap / Unwrap ────────────────────────────────────────────────────────────

func TestUnwrapVaultKey_CorrectPassword(t *testing.T) {
	kc := NewKeyChainService()
	mk, err := kc.MasterKey("hunter2", "user@example.com", testPBKDF2)
	require.NoError(t, err)

	vaultKey, err := kc.NewVaultKey()
	require.NoError(t, err)
	expected := append([]byte(nil), vaultKey...)

	protected, err := kc.WrapVaultKey(mk, vaultKey)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(protected, cipherStringPrefix))

	keys, err := kc.UnwrapVaultKey(mk, protected)
	require.NoError(t, err)
	defer keys.Close()

	assert.Equal(t, expected, keys.Bytes())
}

func TestUnwrapVaultKey_WrongPassword(t *testing.T) {
	kc := NewKeyChainService()
	mk, err := kc.MasterKey("hunter2", "user@example.com", testPBKDF2)
	require.NoError(t, err)
	vaultKey, err := kc.NewVaultKey()
	require.NoError(t, err)
	protected, err := kc.WrapVaultKey(mk, vaultKey)
	require.NoError(t, err)

	wrong, err := kc.MasterKey("hunter3", "user@example.com", testPBKDF2)
	require.NoError(t, err)

	keys, err := kc.UnwrapVaultKey(wrong, protected)
	assert.Nil(t, keys)
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

// ── Encrypt / Decrypt ────────────────────────────────────────────────────────

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	kc := NewKeyChainService()
	keys := newTestKeys(t, kc)
	ad := FieldData("entry-1", "password")

	enc, err := kc.Encrypt(keys, "correct horse battery staple", ad)
	require.NoError(t, err)
	assert.NotContains(t, enc, "horse")

	again, err := kc.Encrypt(keys, "correct horse battery staple", ad)
	require.NoError(t, err)
	assert.NotEqual(t, enc, again, "nonce must be fresh per encryption")

	dec, err := kc.Decrypt(keys, enc, ad)
	require.NoError(t, err)
	assert.Equal(t, "correct horse battery staple", dec)
}

func TestEncryptDecrypt_EmptyFieldIsSealed(t *testing.T) {
	kc := NewKeyChainService()
	keys := newTestKeys(t, kc)
	ad := FieldData("entry-1", "notes")

	enc, err := kc.Encrypt(keys, "", ad)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(enc, cipherStringPrefix))

	dec, err := kc.Decrypt(keys, enc, ad)
	require.NoError(t, err)
	assert.Empty(t, dec)

	_, err = kc.Decrypt(keys, "", ad)
	assert.ErrorIs(t, err, ErrDecryptionFailed, "a blanked field must not open")
}

func TestDecrypt_IntegrityFailures(t *testing.T) {
	kc := NewKeyChainService()
	keys := newTestKeys(t, kc)
	other := newTestKeys(t, kc)
	ad := FieldData("entry-1", "password")

	enc, err := kc.Encrypt(keys, "secret", ad)
	require.NoError(t, err)

	blob, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(enc, cipherStringPrefix))
	require.NoError(t, err)
	blob[len(blob)-1] ^= 0xff
	tampered := cipherStringPrefix + base64.StdEncoding.EncodeToString(blob)

	tests := []struct {
		name  string
		keys  *Keys
		input string
		ad    []byte
	}{
		{"tampered tag", keys, tampered, ad},
		{"wrong key", other, enc, ad},
		{"other field", keys, enc, FieldData("entry-1", "notes")},
		{"other entry", keys, enc, FieldData("entry-2", "password")},
		{"missing", keys, "", ad},
		{"unknown type", keys, "0." + strings.TrimPrefix(enc, cipherStringPrefix), ad},
		{"bad base64", keys, cipherStringPrefix + "!!!", ad},
		{"too short", keys, cipherStringPrefix + base64.StdEncoding.EncodeToString([]byte("abc")), ad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := kc.Decrypt(tt.keys, tt.input, tt.ad)
			assert.ErrorIs(t, err, ErrDecryptionFailed)
			assert.Empty(t, out)
		})
	}
}

// ── Keys ─────────────────────────────────────────────────────────────────────

func TestKeys_WipesSourceAndCloses(t *testing.T) {
	source := []byte("0123456789abcdef0123456789abcdef")
	keys, err := NewKeys(source)
	require.NoError(t, err)

	assert.Equal(t, make([]byte, len(source)), source, "source must be wiped")
	assert.Equal(t, "0123456789abcdef0123456789abcdef", string(keys.Bytes()))

	require.NoError(t, keys.Close())
	assert.True(t, keys.Closed())
	assert.NoError(t, keys.Close(), "close is idempotent")
	assert.Panics(t, func() { keys.Bytes() })
}

func TestNewKeys_Empty(t *testing.T) {
	_, err := NewKeys(nil)
	assert.Error(t, err)
}
