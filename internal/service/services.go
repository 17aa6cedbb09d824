package service

import (
	"time"

	"github.com/MKhiriev/go-pass-agent/internal/adapter"
	"github.com/MKhiriev/go-pass-agent/internal/crypto"
	"github.com/MKhiriev/go-pass-agent/internal/logger"
	"github.com/MKhiriev/go-pass-agent/internal/store"
)

type Services struct {
	AuthService  AuthService
	VaultService VaultService
	SyncService  SyncService
}

func NewServices(vaultStore store.VaultStore, provider adapter.SyncProvider, keyChain crypto.KeyChainService, logger *logger.Logger) *Services {
	vault := NewVaultService(vaultStore, keyChain, logger)

	return &Services{
		AuthService:  NewAuthService(vaultStore, provider, keyChain, logger),
		VaultService: NewVaultValidationService().Wrap(vault),
		SyncService:  NewSyncService(vaultStore, provider, keyChain, logger),
	}
}

// clock is overridden in tests.
type clock func() time.Time

func (c clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}
