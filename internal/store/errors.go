package store

import "errors"

// Sentinel errors returned by the storage layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCorruptVault is returned when the vault cache file exists but cannot
	// be decoded. The file is left untouched so it can be inspected.
	ErrCorruptVault = errors.New("vault cache file is corrupt")

	// ErrUnsupportedVaultVersion is returned for a cache file written by an
	// incompatible format version.
	ErrUnsupportedVaultVersion = errors.New("unsupported vault cache version")
)

// Low-level database operation errors for the journal.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// journal fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning journal rows fails.
	ErrScanningRows = errors.New("failed to scan journal rows")
)
