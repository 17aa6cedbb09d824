package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-agent/internal/crypto"
	"github.com/MKhiriev/go-pass-agent/internal/validators"
	"github.com/MKhiriev/go-pass-agent/models"
)

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behavior such as
// validation.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService
}

// VaultValidationService checks request input before it reaches the wrapped
// VaultService, so nothing invalid is ever encrypted into the cache.
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewEntryValidator(),
	}
}

func (v *VaultValidationService) Wrap(inner VaultService) VaultService {
	v.inner = inner
	return v
}

func (v *VaultValidationService) List(ctx context.Context, keys *crypto.Keys, vault *models.VaultCache) ([]models.EntrySummary, error) {
	return v.inner.List(ctx, keys, vault)
}

func (v *VaultValidationService) Get(ctx context.Context, keys *crypto.Keys, vault *models.VaultCache, name, user string) (models.Entry, error) {
	if err := validateLookup(name); err != nil {
		return models.Entry{}, err
	}
	return v.inner.Get(ctx, keys, vault, name, user)
}

func (v *VaultValidationService) Add(ctx context.Context, keys *crypto.Keys, vault *models.VaultCache, entry models.Entry) (*models.VaultCache, models.Entry, error) {
	if err := v.validator.Validate(ctx, entry); err != nil {
		return nil, models.Entry{}, fmt.Errorf("error during entry validation before saving: %w", mapValidationError(err))
	}
	return v.inner.Add(ctx, keys, vault, entry)
}

func (v *VaultValidationService) Edit(ctx context.Context, keys *crypto.Keys, vault *models.VaultCache, name, user string, patch models.EntryPatch) (*models.VaultCache, models.Entry, error) {
	if err := validateLookup(name); err != nil {
		return nil, models.Entry{}, err
	}
	if err := v.validator.Validate(ctx, patch); err != nil {
		return nil, models.Entry{}, fmt.Errorf("error during entry patch validation: %w", mapValidationError(err))
	}
	return v.inner.Edit(ctx, keys, vault, name, user, patch)
}

func (v *VaultValidationService) Upsert(ctx context.Context, keys *crypto.Keys, vault *models.VaultCache, entry models.Entry) (*models.VaultCache, models.Entry, error) {
	if err := v.validator.Validate(ctx, entry); err != nil {
		return nil, models.Entry{}, fmt.Errorf("error during entry validation before saving: %w", mapValidationError(err))
	}
	return v.inner.Upsert(ctx, keys, vault, entry)
}

func (v *VaultValidationService) Remove(ctx context.Context, keys *crypto.Keys, vault *models.VaultCache, name, user string) (*models.VaultCache, string, error) {
	if err := validateLookup(name); err != nil {
		return nil, "", err
	}
	return v.inner.Remove(ctx, keys, vault, name, user)
}

func (v *VaultValidationService) Generate(ctx context.Context, policy models.PasswordPolicy, length int) (string, error) {
	if !policy.Valid() {
		return "", fmt.Errorf("%w: unknown policy %q", ErrInvalidRequest, policy)
	}
	if err := crypto.CheckLength(policy, length); err != nil {
		return "", mapValidationError(err)
	}
	return v.inner.Generate(ctx, policy, length)
}

func (v *VaultValidationService) Flush(ctx context.Context, vault *models.VaultCache) error {
	return v.inner.Flush(ctx, vault)
}

func (v *VaultValidationService) Purge(ctx context.Context) (*models.VaultCache, error) {
	return v.inner.Purge(ctx)
}

func validateLookup(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, validators.ErrEmptyName)
	}
	return nil
}
