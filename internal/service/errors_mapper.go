package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-agent/internal/adapter"
	"github.com/MKhiriev/go-pass-agent/internal/crypto"
	"github.com/MKhiriev/go-pass-agent/internal/validators"
)

// mapAdapterError folds provider failures into the service taxonomy. A
// rejected credential during login means a wrong master password; every
// other provider error, including an expired session, is a sync failure.
func mapAdapterError(err error, login bool) error {
	if err == nil {
		return nil
	}
	if login && errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", ErrInvalidPassword, err)
	}
	return fmt.Errorf("%w: %w", ErrSyncFailed, err)
}

// mapValidationError tags validator and generator input errors as
// ErrInvalidRequest.
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, validators.ErrEmptyName),
		errors.Is(err, validators.ErrFieldTooLong),
		errors.Is(err, validators.ErrInvalidControl),
		errors.Is(err, validators.ErrNoFieldsToUpdate),
		errors.Is(err, crypto.ErrInvalidLength),
		errors.Is(err, crypto.ErrInvalidPolicy):
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	default:
		return err
	}
}
