package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-agent/internal/adapter"
	"github.com/MKhiriev/go-pass-agent/internal/crypto"
	"github.com/MKhiriev/go-pass-agent/internal/logger"
	"github.com/MKhiriev/go-pass-agent/internal/store"
	"github.com/MKhiriev/go-pass-agent/models"
)

type authService struct {
	vaultStore store.VaultStore
	provider   adapter.SyncProvider
	keyChain   crypto.KeyChainService

	logger *logger.Logger
}

func NewAuthService(vaultStore store.VaultStore, provider adapter.SyncProvider, keyChain crypto.KeyChainService, logger *logger.Logger) AuthService {
	return &authService{
		vaultStore: vaultStore,
		provider:   provider,
		keyChain:   keyChain,
		logger:     logger,
	}
}

func (a *authService) Login(ctx context.Context, vault *models.VaultCache, email, password string) (*models.VaultCache, *crypto.Keys, error) {
	email = crypto.NormalizeEmail(email)
	if email == "" {
		return nil, nil, fmt.Errorf("%w: email is not configured, run `gopass config set email <address>`", ErrInvalidRequest)
	}
	if password == "" {
		return nil, nil, fmt.Errorf("%w: empty password", ErrInvalidRequest)
	}

	// L1: KDF parameters the account was created with
	params, err := a.provider.PreLogin(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("prelogin: %w", mapAdapterError(err, true))
	}

	// L2: master key and the credential derived from it
	masterKey, err := a.keyChain.MasterKey(password, email, params)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: derive master key: %w", ErrSyncFailed, err)
	}
	defer crypto.Wipe(masterKey)

	authHash := a.keyChain.AuthHash(masterKey, password)

	// L3: tokens and the protected vault key
	auth, err := a.provider.Authenticate(ctx, models.Credentials{Email: email, AuthHash: authHash})
	if err != nil {
		return nil, nil, fmt.Errorf("authenticate: %w", mapAdapterError(err, true))
	}

	// L4: the provider accepted the hash, so the key must open
	keys, err := a.keyChain.UnwrapVaultKey(masterKey, auth.ProtectedKey)
	if err != nil {
		return nil, nil, fmt.Errorf("unwrap vault key: %w", err)
	}

	next := vault.Clone()
	if next.Email != "" && next.Email != email {
		a.logger.Info().Msg("account changed, discarding cached entries")
		next = models.NewVaultCache()
	}
	next.Version = models.VaultFormatVersion
	next.Email = email
	next.KDF = params
	if !auth.KDF.IsZero() {
		next.KDF = auth.KDF
	}
	next.ProtectedKey = auth.ProtectedKey
	next.AccessToken = auth.AccessToken
	next.RefreshToken = auth.RefreshToken

	if err = a.vaultStore.Save(ctx, next); err != nil {
		_ = keys.Close()
		return nil, nil, fmt.Errorf("save vault after login: %w", err)
	}

	a.logger.Info().
		Str("kdf", next.KDF.Type.String()).
		Msg("logged in")
	return next, keys, nil
}

func (a *authService) Unlock(_ context.Context, vault *models.VaultCache, password string) (*crypto.Keys, error) {
	if !vault.LoggedIn() {
		return nil, ErrNotLoggedIn
	}

	masterKey, err := a.keyChain.MasterKey(password, vault.Email, vault.KDF)
	if err != nil {
		return nil, fmt.Errorf("derive master key: %w", err)
	}
	defer crypto.Wipe(masterKey)

	keys, err := a.keyChain.UnwrapVaultKey(masterKey, vault.ProtectedKey)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidPassword) {
			return nil, ErrInvalidPassword
		}
		return nil, fmt.Errorf("unwrap vault key: %w", err)
	}

	return keys, nil
}
