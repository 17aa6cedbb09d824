// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-pass-agent/models"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the size of every symmetric key in the hierarchy (AES-256).
	KeySize = 32

	cipherStringPrefix = "2."
	stretchInfo        = "enc"

	minPBKDF2Iterations = 5000
	minArgon2Iterations = 2
	minArgon2MemoryMiB  = 16
)

type keyChainService struct {
	rand io.Reader
}

// NewKeyChainService returns the default [KeyChainService] backed by
// crypto/rand.
func NewKeyChainService() KeyChainService {
	return &keyChainService{rand: rand.Reader}
}

// NormalizeEmail lower-cases and trims an account email. The result is the
// KDF salt, so every component must normalize the same way.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MasterKey implements [KeyChainService].
func (k *keyChainService) MasterKey(password, email string, params models.KDFParams) ([]byte, error) {
	if password == "" {
		return nil, ErrInvalidPassword
	}
	salt := []byte(NormalizeEmail(email))

	switch params.Type {
	case models.KDFPBKDF2:
		if params.Iterations < minPBKDF2Iterations {
			return nil, fmt.Errorf("%w: pbkdf2 iterations %d", ErrInvalidKDFParams, params.Iterations)
		}
		return pbkdf2.Key([]byte(password), salt, int(params.Iterations), KeySize, sha256.New), nil

	case models.KDFArgon2id:
		if params.Iterations < minArgon2Iterations || params.Memory < minArgon2MemoryMiB || params.Parallelism == 0 {
			return nil, fmt.Errorf("%w: argon2id t=%d m=%d p=%d",
				ErrInvalidKDFParams, params.Iterations, params.Memory, params.Parallelism)
		}
		// the provider salts argon2 with the digest of the email
		saltHash := sha256.Sum256(salt)
		return argon2.IDKey([]byte(password), saltHash[:], params.Iterations, params.Memory*1024, params.Parallelism, KeySize), nil

	default:
		return nil, fmt.Errorf("%w: type %d", ErrInvalidKDFParams, params.Type)
	}
}

// AuthHash implements [KeyChainService].
func (k *keyChainService) AuthHash(masterKey []byte, password string) string {
	hash := pbkdf2.Key(masterKey, []byte(password), 1, KeySize, sha256.New)
	return base64.StdEncoding.EncodeToString(hash)
}

// NewVaultKey implements [KeyChainService].
func (k *keyChainService) NewVaultKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(k.rand, key); err != nil {
		return nil, fmt.Errorf("generate vault key: %w", err)
	}
	return key, nil
}

// WrapVaultKey implements [KeyChainService].
func (k *keyChainService) WrapVaultKey(masterKey, vaultKey []byte) (string, error) {
	kek, err := stretch(masterKey)
	if err != nil {
		return "", err
	}
	defer Wipe(kek)

	return k.seal(kek, vaultKey, nil)
}

// UnwrapVaultKey implements [KeyChainService].
func (k *keyChainService) UnwrapVaultKey(masterKey []byte, protectedKey string) (*Keys, error) {
	kek, err := stretch(masterKey)
	if err != nil {
		return nil, err
	}
	defer Wipe(kek)

	vaultKey, err := open(kek, protectedKey, nil)
	if err != nil {
		return nil, ErrInvalidPassword
	}
	if len(vaultKey) != KeySize {
		Wipe(vaultKey)
		return nil, fmt.Errorf("%w: vault key has %d bytes", ErrDecryptionFailed, len(vaultKey))
	}

	return NewKeys(vaultKey)
}

// FieldData is the additional data that binds a field cipher string to
// its entry and field name.
func FieldData(entryID, field string) []byte {
	return []byte(entryID + "|" + field)
}

// Encrypt implements [KeyChainService].
func (k *keyChainService) Encrypt(keys *Keys, plaintext string, additionalData []byte) (string, error) {
	return k.seal(keys.Bytes(), []byte(plaintext), additionalData)
}

// Decrypt implements [KeyChainService].
func (k *keyChainService) Decrypt(keys *Keys, cipherString string, additionalData []byte) (string, error) {
	if cipherString == "" {
		return "", fmt.Errorf("%w: missing cipher string", ErrDecryptionFailed)
	}
	plaintext, err := open(keys.Bytes(), cipherString, additionalData)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

func (k *keyChainService) seal(key, plaintext, additionalData []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(k.rand, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, plaintext, additionalData)
	return cipherStringPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

func open(key []byte, cipherString string, additionalData []byte) ([]byte, error) {
	encoded, ok := strings.CutPrefix(cipherString, cipherStringPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: unknown cipher string type", ErrDecryptionFailed)
	}
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(blob) < gcm.NonceSize()+gcm.Overhead() {
		return nil, fmt.Errorf("%w: cipher string too short", ErrDecryptionFailed)
	}

	nonce, ciphertext := blob[:gcm.NonceSize()], blob[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, additionalData)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create aes cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// stretch expands the master key into the key-encryption key.
func stretch(masterKey []byte) ([]byte, error) {
	kek := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.Expand(sha256.New, masterKey, []byte(stretchInfo)), kek); err != nil {
		return nil, fmt.Errorf("stretch master key: %w", err)
	}
	return kek, nil
}
