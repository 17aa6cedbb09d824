// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds every primitive the agent uses on secret material:
// master key derivation, vault key wrapping, field encryption, the password
// generator and the locked memory that keeps the unwrapped key.
//
// Key hierarchy:
//
//	masterKey = KDF(password, normalized email, params)
//	authHash  = PBKDF2-SHA256(masterKey, password, 1)         sent to provider
//	kek       = HKDF-Expand-SHA256(masterKey, "enc")
//	vaultKey  = AES-256-GCM-Open(kek, protectedKey)           lives in Keys
//	field     = AES-256-GCM-Seal(vaultKey, plaintext, id|field) "2.<base64>"
package crypto

import "github.com/MKhiriev/go-pass-agent/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService performs the key hierarchy operations. It knows nothing
// about the network, the cache file or the session state.
type KeyChainService interface {
	// MasterKey derives the master key from password and email using params.
	// The same inputs always produce the same key.
	MasterKey(password, email string, params models.KDFParams) ([]byte, error)

	// AuthHash derives the login credential sent to the sync provider.
	AuthHash(masterKey []byte, password string) string

	// NewVaultKey generates a fresh random vault key.
	NewVaultKey() ([]byte, error)

	// WrapVaultKey encrypts vaultKey under the key stretched from masterKey
	// and returns the protected key cipher string.
	WrapVaultKey(masterKey, vaultKey []byte) (string, error)

	// UnwrapVaultKey opens protectedKey and moves the vault key into locked
	// memory. A failure to authenticate returns [ErrInvalidPassword].
	UnwrapVaultKey(masterKey []byte, protectedKey string) (*Keys, error)

	// Encrypt seals plaintext with the vault key, authenticating
	// additionalData along with it. Empty plaintexts are sealed too.
	Encrypt(keys *Keys, plaintext string, additionalData []byte) (string, error)

	// Decrypt opens a cipher string produced by Encrypt with the same
	// additionalData. A missing cipher string or any integrity failure
	// returns [ErrDecryptionFailed].
	Decrypt(keys *Keys, cipherString string, additionalData []byte) (string, error)
}
