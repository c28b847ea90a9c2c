package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/intern-match/internal/logger"
)

// documentRepository is the SQLite-backed [KeyValueStore]. Documents live
// in the "documents" table, one row per key.
type documentRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewDocumentRepository constructs a [KeyValueStore] over an open, migrated
// database.
func NewDocumentRepository(db *DB, log *logger.Logger) KeyValueStore {
	return &documentRepository{
		DB:     db,
		logger: log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *documentRepository) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	query, args, err := buildGetDocumentQuery(key)
	if err != nil {
		r.logger.Err(err).Str("func", "documentRepository.Get").Str("key", key).Msg("failed to create query")
		return "", err
	}

	var value string
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrDocumentNotFound
		}
		r.logger.Err(err).Str("func", "documentRepository.Get").Str("key", key).Msg("failed to read document")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (r *documentRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := buildUpsertDocumentQuery(key, value, r.now())
	if err != nil {
		r.logger.Err(err).Str("func", "documentRepository.Set").Str("key", key).Msg("failed to create query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "documentRepository.Set").Str("key", key).Msg("failed to upsert document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *documentRepository) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := buildDeleteDocumentQuery(key)
	if err != nil {
		r.logger.Err(err).Str("func", "documentRepository.Remove").Str("key", key).Msg("failed to create query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "documentRepository.Remove").Str("key", key).Msg("failed to delete document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
