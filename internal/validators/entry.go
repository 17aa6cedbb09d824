package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-pass-agent/models"
)

// MaxFieldSize bounds every entry field, in bytes of plaintext.
const MaxFieldSize = 10 << 10

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName     = "name"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldNotes    = "notes"
	FieldFolder   = "folder"
)

var allEntryFields = []string{FieldName, FieldUsername, FieldPassword, FieldNotes, FieldFolder}

// EntryValidator implements [Validator] for decrypted vault entries
// ([models.Entry]) and edits ([models.EntryPatch]).
type EntryValidator struct{}

// NewEntryValidator returns an [EntryValidator] as a [Validator].
func NewEntryValidator() Validator {
	return &EntryValidator{}
}

// Validate dispatches on the concrete type of obj. Both value and pointer
// forms are accepted.
func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Entry:
		return v.validateEntry(ctx, value, fields...)
	case *models.Entry:
		return v.validateEntry(ctx, *value, fields...)

	case models.EntryPatch:
		return v.validatePatch(ctx, value, fields...)
	case *models.EntryPatch:
		return v.validatePatch(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateEntry(_ context.Context, entry models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = allEntryFields
	}

	for _, f := range fields {
		value, ok := entryField(entry, f)
		if !ok {
			return ErrUnknownField
		}
		if err := checkField(f, value); err != nil {
			return err
		}
	}

	return nil
}

func (v *EntryValidator) validatePatch(_ context.Context, patch models.EntryPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = allEntryFields
	}

	set := 0
	for _, f := range fields {
		value, ok := patchField(patch, f)
		if !ok {
			return ErrUnknownField
		}
		if value == nil {
			continue
		}
		set++
		if err := checkField(f, *value); err != nil {
			return err
		}
	}

	if set == 0 {
		return ErrNoFieldsToUpdate
	}
	return nil
}

func checkField(field, value string) error {
	if field == FieldName && strings.TrimSpace(value) == "" {
		return ErrEmptyName
	}
	if len(value) > MaxFieldSize {
		return fmt.Errorf("%w: %s is %d bytes, limit %d", ErrFieldTooLong, field, len(value), MaxFieldSize)
	}
	// notes and passwords may be multi-line; identifying fields may not
	if field == FieldName || field == FieldUsername || field == FieldFolder {
		if strings.IndexFunc(value, unicode.IsControl) >= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidControl, field)
		}
	}
	return nil
}

func entryField(e models.Entry, field string) (string, bool) {
	switch field {
	case FieldName:
		return e.Name, true
	case FieldUsername:
		return e.Username, true
	case FieldPassword:
		return e.Password, true
	case FieldNotes:
		return e.Notes, true
	case FieldFolder:
		return e.Folder, true
	default:
		return "", false
	}
}

func patchField(p models.EntryPatch, field string) (*string, bool) {
	switch field {
	case FieldName:
		return p.Name, true
	case FieldUsername:
		return p.Username, true
	case FieldPassword:
		return p.Password, true
	case FieldNotes:
		return p.Notes, true
	case FieldFolder:
		return p.Folder, true
	default:
		return nil, false
	}
}
