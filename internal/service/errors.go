package service

import (
	"errors"

	"github.com/MKhiriev/go-pass-agent/internal/crypto"
)

// Vault operation errors. Each one has a stable wire code in package ipc.
var (
	// ErrLocked is returned by every secret-touching operation while the
	// session holds no key.
	ErrLocked = errors.New("agent is locked")
	// ErrNotLoggedIn is returned by unlock and sync before a successful
	// login has stored the protected key.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrInvalidPassword is returned when the master password does not
	// unwrap the protected key or is rejected by the sync provider.
	ErrInvalidPassword = crypto.ErrInvalidPassword
	// ErrDecryptionFailed is returned for any cipher string that fails to
	// authenticate.
	ErrDecryptionFailed = crypto.ErrDecryptionFailed
	// ErrSyncFailed wraps every sync provider failure.
	ErrSyncFailed = errors.New("sync failed")
	// ErrNotFound is returned when no entry matches the lookup.
	ErrNotFound = errors.New("entry not found")
	// ErrAmbiguousEntry is returned when more than one entry matches a name
	// and no user was given to disambiguate.
	ErrAmbiguousEntry = errors.New("multiple entries match, specify a user")
	// ErrInvalidRequest is returned for input that fails validation.
	ErrInvalidRequest = errors.New("invalid request")
)
