package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-pass-agent/internal/crypto"
	"github.com/MKhiriev/go-pass-agent/internal/logger"
	"github.com/MKhiriev/go-pass-agent/internal/store"
	"github.com/MKhiriev/go-pass-agent/internal/utils"
	"github.com/MKhiriev/go-pass-agent/models"
)

type vaultService struct {
	vaultStore store.VaultStore
	keyChain   crypto.KeyChainService
	now        clock

	logger *logger.Logger
}

func NewVaultService(vaultStore store.VaultStore, keyChain crypto.KeyChainService, logger *logger.Logger) VaultService {
	return &vaultService{
		vaultStore: vaultStore,
		keyChain:   keyChain,
		logger:     logger,
	}
}

// located is a live entry found by lookup, with its slice index in the cache.
type located struct {
	index int
	entry models.Entry
}

func (v *vaultService) List(_ context.Context, keys *crypto.Keys, vault *models.VaultCache) ([]models.EntrySummary, error) {
	if keys == nil {
		return nil, ErrLocked
	}

	out := make([]models.EntrySummary, 0, len(vault.Entries))
	for _, ce := range vault.Entries {
		if ce.Deleted {
			continue
		}
		e, err := v.decryptIdentity(keys, ce)
		if err != nil {
			return nil, err
		}
		out = append(out, e.Summary())
	}

	slices.SortFunc(out, func(a, b models.EntrySummary) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Username, b.Username), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

func (v *vaultService) Get(_ context.Context, keys *crypto.Keys, vault *models.VaultCache, name, user string) (models.Entry, error) {
	if keys == nil {
		return models.Entry{}, ErrLocked
	}

	found, err := v.find(keys, vault, name, user)
	if err != nil {
		return models.Entry{}, err
	}
	return v.decrypt(keys, vault.Entries[found.index])
}

func (v *vaultService) Add(ctx context.Context, keys *crypto.Keys, vault *models.VaultCache, entry models.Entry) (*models.VaultCache, models.Entry, error) {
	if keys == nil {
		return nil, models.Entry{}, ErrLocked
	}

	if err := v.checkUnique(keys, vault, entry, -1); err != nil {
		return nil, models.Entry{}, err
	}

	entry.ID = utils.NewID()
	entry.RevisionDate = v.now.now()

	ce, err := v.encrypt(keys, entry)
	if err != nil {
		return nil, models.Entry{}, err
	}
	ce.Dirty = true

	next := vault.Clone()
	next.Entries = append(next.Entries, ce)
	if err = v.commit(ctx, next); err != nil {
		return nil, models.Entry{}, err
	}

	return next, entry, nil
}

func (v *vaultService) Edit(ctx context.Context, keys *crypto.Keys, vault *models.VaultCache, name, user string, patch models.EntryPatch) (*models.VaultCache, models.Entry, error) {
	if keys == nil {
		return nil, models.Entry{}, ErrLocked
	}

	found, err := v.find(keys, vault, name, user)
	if err != nil {
		return nil, models.Entry{}, err
	}
	entry, err := v.decrypt(keys, vault.Entries[found.index])
	if err != nil {
		return nil, models.Entry{}, err
	}

	renamed := (patch.Name != nil && *patch.Name != entry.Name) ||
		(patch.Username != nil && *patch.Username != entry.Username)
	applyPatch(&entry, patch)
	if renamed {
		if err = v.checkUnique(keys, vault, entry, found.index); err != nil {
			return nil, models.Entry{}, err
		}
	}
	entry.RevisionDate = v.now.now()

	return v.replace(ctx, keys, vault, found.index, entry)
}

func (v *vaultService) Upsert(ctx context.Context, keys *crypto.Keys, vault *models.VaultCache, entry models.Entry) (*models.VaultCache, models.Entry, error) {
	if keys == nil {
		return nil, models.Entry{}, ErrLocked
	}

	found, err := v.find(keys, vault, entry.Name, entry.Username)
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		return v.Add(ctx, keys, vault, entry)
	default:
		return nil, models.Entry{}, err
	}

	current, err := v.decrypt(keys, vault.Entries[found.index])
	if err != nil {
		return nil, models.Entry{}, err
	}
	current.Password = entry.Password
	if entry.Folder != "" {
		current.Folder = entry.Folder
	}
	current.RevisionDate = v.now.now()

	return v.replace(ctx, keys, vault, found.index, current)
}

func (v *vaultService) Remove(ctx context.Context, keys *crypto.Keys, vault *models.VaultCache, name, user string) (*models.VaultCache, string, error) {
	if keys == nil {
		return nil, "", ErrLocked
	}

	found, err := v.find(keys, vault, name, user)
	if err != nil {
		return nil, "", err
	}

	next := vault.Clone()
	tomb := next.Entries[found.index]
	tomb.Deleted = true
	tomb.Dirty = true
	tomb.RevisionDate = v.now.now()
	next.Entries[found.index] = tomb

	if err = v.commit(ctx, next); err != nil {
		return nil, "", err
	}
	return next, tomb.ID, nil
}

func (v *vaultService) Generate(_ context.Context, policy models.PasswordPolicy, length int) (string, error) {
	password, err := crypto.Generate(policy, length)
	if err != nil {
		return "", mapValidationError(err)
	}
	return password, nil
}

func (v *vaultService) Flush(ctx context.Context, vault *models.VaultCache) error {
	return v.commit(ctx, vault)
}

func (v *vaultService) Purge(ctx context.Context) (*models.VaultCache, error) {
	if err := v.vaultStore.Purge(ctx); err != nil {
		return nil, fmt.Errorf("purge vault: %w", err)
	}
	v.logger.Info().Msg("vault cache purged")
	return models.NewVaultCache(), nil
}

func (v *vaultService) replace(ctx context.Context, keys *crypto.Keys, vault *models.VaultCache, index int, entry models.Entry) (*models.VaultCache, models.Entry, error) {
	ce, err := v.encrypt(keys, entry)
	if err != nil {
		return nil, models.Entry{}, err
	}
	ce.Dirty = true

	next := vault.Clone()
	next.Entries[index] = ce
	if err = v.commit(ctx, next); err != nil {
		return nil, models.Entry{}, err
	}
	return next, entry, nil
}

func (v *vaultService) commit(ctx context.Context, next *models.VaultCache) error {
	if err := v.vaultStore.Save(ctx, next); err != nil {
		return fmt.Errorf("save vault: %w", err)
	}
	return nil
}

// checkUnique rejects entry when a live entry other than the one at skip
// already carries its name and username.
func (v *vaultService) checkUnique(keys *crypto.Keys, vault *models.VaultCache, entry models.Entry, skip int) error {
	matches, err := v.match(keys, vault, entry.Name, entry.Username)
	if err != nil {
		return err
	}
	for _, m := range matches {
		if m.index != skip && m.entry.Name == entry.Name && m.entry.Username == entry.Username {
			return fmt.Errorf("%w: entry %s already exists", ErrInvalidRequest, describe(entry.Name, entry.Username))
		}
	}
	return nil
}

// find resolves name and user to exactly one live entry.
func (v *vaultService) find(keys *crypto.Keys, vault *models.VaultCache, name, user string) (located, error) {
	matches, err := v.match(keys, vault, name, user)
	if err != nil {
		return located{}, err
	}

	switch len(matches) {
	case 0:
		return located{}, fmt.Errorf("%w: %s", ErrNotFound, describe(name, user))
	case 1:
		return matches[0], nil
	default:
		return located{}, fmt.Errorf("%w: %d entries named %q", ErrAmbiguousEntry, len(matches), name)
	}
}

// match returns every live entry whose id or decrypted name equals name and,
// if user is set, whose username equals user. An id match wins outright.
func (v *vaultService) match(keys *crypto.Keys, vault *models.VaultCache, name, user string) ([]located, error) {
	var matches []located
	for i, ce := range vault.Entries {
		if ce.Deleted {
			continue
		}
		e, err := v.decryptIdentity(keys, ce)
		if err != nil {
			return nil, err
		}
		if ce.ID == name {
			return []located{{index: i, entry: e}}, nil
		}
		if e.Name != name {
			continue
		}
		if user != "" && e.Username != user {
			continue
		}
		matches = append(matches, located{index: i, entry: e})
	}
	return matches, nil
}

// Field names bound into each cipher string's additional data, so a cipher
// string only opens under the entry and field it was sealed for.
const (
	fieldName     = "name"
	fieldUsername = "username"
	fieldPassword = "password"
	fieldNotes    = "notes"
	fieldFolder   = "folder"
)

func (v *vaultService) openField(keys *crypto.Keys, ce models.CipherEntry, field, cipherString string) (string, error) {
	s, err := v.keyChain.Decrypt(keys, cipherString, crypto.FieldData(ce.ID, field))
	if err != nil {
		return "", fmt.Errorf("entry %s %s: %w", ce.ID, field, err)
	}
	return s, nil
}

// decryptIdentity opens only the fields used for lookups and listings.
func (v *vaultService) decryptIdentity(keys *crypto.Keys, ce models.CipherEntry) (models.Entry, error) {
	e := models.Entry{ID: ce.ID, RevisionDate: ce.RevisionDate}
	var err error
	if e.Name, err = v.openField(keys, ce, fieldName, ce.Name); err != nil {
		return models.Entry{}, err
	}
	if e.Username, err = v.openField(keys, ce, fieldUsername, ce.Username); err != nil {
		return models.Entry{}, err
	}
	if e.Folder, err = v.openField(keys, ce, fieldFolder, ce.Folder); err != nil {
		return models.Entry{}, err
	}
	return e, nil
}

func (v *vaultService) decrypt(keys *crypto.Keys, ce models.CipherEntry) (models.Entry, error) {
	e, err := v.decryptIdentity(keys, ce)
	if err != nil {
		return models.Entry{}, err
	}
	if e.Password, err = v.openField(keys, ce, fieldPassword, ce.Password); err != nil {
		return models.Entry{}, err
	}
	if e.Notes, err = v.openField(keys, ce, fieldNotes, ce.Notes); err != nil {
		return models.Entry{}, err
	}
	return e, nil
}

func (v *vaultService) encrypt(keys *crypto.Keys, e models.Entry) (models.CipherEntry, error) {
	ce := models.CipherEntry{ID: e.ID, RevisionDate: e.RevisionDate}
	fields := []struct {
		dst   *string
		name  string
		value string
	}{
		{&ce.Name, fieldName, e.Name},
		{&ce.Username, fieldUsername, e.Username},
		{&ce.Password, fieldPassword, e.Password},
		{&ce.Notes, fieldNotes, e.Notes},
		{&ce.Folder, fieldFolder, e.Folder},
	}
	for _, f := range fields {
		s, err := v.keyChain.Encrypt(keys, f.value, crypto.FieldData(e.ID, f.name))
		if err != nil {
			return models.CipherEntry{}, fmt.Errorf("encrypt entry %s: %w", e.ID, err)
		}
		*f.dst = s
	}
	return ce, nil
}

func applyPatch(e *models.Entry, p models.EntryPatch) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Username != nil {
		e.Username = *p.Username
	}
	if p.Password != nil {
		e.Password = *p.Password
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	if p.Folder != nil {
		e.Folder = *p.Folder
	}
}

func describe(name, user string) string {
	if user == "" {
		return fmt.Sprintf("%q", name)
	}
	return fmt.Sprintf("%q (user %q)", name, user)
}
