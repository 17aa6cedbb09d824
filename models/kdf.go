// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// KDFType identifies the key-derivation function the remote account was
// created with. Numeric values follow the sync provider's prelogin response.
type KDFType int

const (
	// KDFPBKDF2 is PBKDF2-HMAC-SHA256 parameterised by Iterations only.
	KDFPBKDF2 KDFType = 0
	// KDFArgon2id is Argon2id parameterised by Iterations, Memory (MiB) and
	// Parallelism.
	KDFArgon2id KDFType = 1
)

// String returns the human-readable KDF name used in logs and `status`.
func (t KDFType) String() string {
	switch t {
	case KDFPBKDF2:
		return "pbkdf2-sha256"
	case KDFArgon2id:
		return "argon2id"
	default:
		return "unknown"
	}
}

// KDFParams is the persisted parameter set for master key derivation.
// It is not secret and lives in the plaintext header of the vault cache.
type KDFParams struct {
	Type        KDFType `json:"kdf" cbor:"kdf"`
	Iterations  uint32  `json:"kdf_iterations" cbor:"kdf_iterations"`
	Memory      uint32  `json:"kdf_memory,omitempty" cbor:"kdf_memory,omitempty"`
	Parallelism uint8   `json:"kdf_parallelism,omitempty" cbor:"kdf_parallelism,omitempty"`
}

// IsZero reports whether no parameters have been received yet.
func (p KDFParams) IsZero() bool {
	return p.Iterations == 0
}
