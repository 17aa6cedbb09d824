// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned when a cipher string is malformed or
	// its authentication tag does not verify. Callers never receive partial
	// or garbage plaintext alongside it.
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrInvalidPassword is returned when the protected vault key cannot be
	// unwrapped with the key derived from the supplied password.
	ErrInvalidPassword = errors.New("invalid master password")
	// ErrInvalidKDFParams is returned for an unknown KDF type or parameters
	// that would produce a weak or undefined derivation.
	ErrInvalidKDFParams = errors.New("invalid kdf parameters")
	// ErrInvalidLength is returned by the generator for a length outside
	// 1..MaxLength, or 1..MaxDicewareWords for diceware.
	ErrInvalidLength = errors.New("password length out of range")
	// ErrInvalidPolicy is returned by the generator for an unknown policy.
	ErrInvalidPolicy = errors.New("unknown password policy")
)
