package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-pass-agent/internal/logger"
	"github.com/MKhiriev/go-pass-agent/migrations"
)

// DB wraps the journal database connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded journal schema.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		db.logger.Err(err).Str("func", "DB.Migrate").Msg("error migrating journal")
		return err
	}
	if applied > 0 {
		db.logger.Info().Int("applied", applied).Msg("journal schema migrated")
	}
	return nil
}
