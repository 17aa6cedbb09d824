// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-pass-agent/internal/logger"
	"github.com/MKhiriev/go-pass-agent/models"
)

const journalTable = "journal"

var journalColumns = []string{"id", "operation", "entry_id", "result", "error_code", "created_at"}

type journalRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewJournalRepository returns a [JournalRepository] over db.
func NewJournalRepository(db *DB, log *logger.Logger) JournalRepository {
	return newJournalRepository(db.DB, log)
}

func newJournalRepository(db *sql.DB, log *logger.Logger) *journalRepository {
	return &journalRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log,
	}
}

// Append implements [JournalRepository].
func (r *journalRepository) Append(ctx context.Context, event models.JournalEvent) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(journalTable).
		Columns(journalColumns...).
		Values(event.ID, event.Operation, event.EntryID, event.Result, event.ErrorCode, event.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "journalRepository.Append").
			Str("operation", event.Operation).
			Msg("failed to insert journal event")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

// Recent implements [JournalRepository].
func (r *journalRepository) Recent(ctx context.Context, limit uint64) ([]models.JournalEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(journalColumns...).
		From(journalTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "journalRepository.Recent").Msg("failed to query journal")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.JournalEvent, 0, limit)
	for rows.Next() {
		var e models.JournalEvent
		if err = rows.Scan(&e.ID, &e.Operation, &e.EntryID, &e.Result, &e.ErrorCode, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return events, nil
}

// Clear implements [JournalRepository].
func (r *journalRepository) Clear(ctx context.Context) error {
	query, args, err := r.builder.Delete(journalTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}
