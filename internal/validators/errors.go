package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrFieldTooLong     = errors.New("field exceeds maximum size")
	ErrInvalidControl   = errors.New("field contains control characters")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
