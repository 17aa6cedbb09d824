package service

import (
	"crypto/rand"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-agent/internal/crypto"
	"github.com/MKhiriev/go-pass-agent/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// testKDF is the cheapest parameter set the keychain accepts.
var testKDF = models.KDFParams{Type: models.KDFPBKDF2, Iterations: 5000}

func newTestKeys(t *testing.T) *crypto.Keys {
	t.Helper()
	raw := make([]byte, crypto.KeySize)
	_, err := rand.Read(raw)
	require.NoError(t, err)

	keys, err := crypto.NewKeys(raw)
	require.NoError(t, err)
	t.Cleanup(func() { _ = keys.Close() })
	return keys
}

// freshToken returns an access token that will not be refreshed.
func freshToken(t *testing.T) string {
	t.Helper()
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("provider"))
	require.NoError(t, err)
	return s
}

func fixedClock(t time.Time) clock {
	return func() time.Time { return t }
}

// sealEntry encrypts a plaintext entry the way the vault service does.
func sealEntry(t *testing.T, kc crypto.KeyChainService, keys *crypto.Keys, e models.Entry) models.CipherEntry {
	t.Helper()
	seal := func(field, s string) string {
		cs, err := kc.Encrypt(keys, s, crypto.FieldData(e.ID, field))
		require.NoError(t, err)
		return cs
	}
	return models.CipherEntry{
		ID:           e.ID,
		Name:         seal(fieldName, e.Name),
		Username:     seal(fieldUsername, e.Username),
		Password:     seal(fieldPassword, e.Password),
		Notes:        seal(fieldNotes, e.Notes),
		Folder:       seal(fieldFolder, e.Folder),
		RevisionDate: e.RevisionDate,
	}
}

func loggedInVault(t *testing.T) *models.VaultCache {
	t.Helper()
	v := models.NewVaultCache()
	v.Email = "alice@example.com"
	v.KDF = testKDF
	v.ProtectedKey = "2.protected"
	v.AccessToken = freshToken(t)
	v.RefreshToken = "refresh"
	return v
}
