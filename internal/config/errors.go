package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	// ErrInvalidProviderConfigs indicates bad sync provider settings
	// (for example, a relative base URL or a zero request timeout).
	ErrInvalidProviderConfigs = errors.New("invalid provider configuration")
	// ErrInvalidStorageConfigs indicates a bad data directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAgentConfigs indicates bad agent settings (for example, a
	// non-positive lock timeout).
	ErrInvalidAgentConfigs = errors.New("invalid agent configuration")
)

// Errors returned by `config set` / `config unset`.
var (
	// ErrUnknownKey is returned for a key that is not a config setting.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned for a value that fails validation.
	ErrInvalidValue = errors.New("invalid config value")
)
