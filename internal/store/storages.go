package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-agent/internal/config"
	"github.com/MKhiriev/go-pass-agent/internal/logger"
)

// Storages bundles the agent's persistence backends.
type Storages struct {
	Vault   VaultStore
	Journal JournalRepository

	db *DB
}

// NewStorages opens the vault cache and the journal database under the
// configured data directory and migrates the journal schema.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.JournalPath(), log)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}

	return &Storages{
		Vault:   NewFileVaultStore(cfg.VaultPath(), log),
		Journal: NewJournalRepository(db, log),
		db:      db,
	}, nil
}

// Close releases the journal connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
