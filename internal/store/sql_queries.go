package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const documentsTable = "documents"

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetDocumentQuery(key string) (string, []any, error) {
	query, args, err := sqlite.
		Select("value").
		From(documentsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertDocumentQuery(key, value string, updatedAt time.Time) (string, []any, error) {
	query, args, err := sqlite.
		Insert(documentsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, updatedAt).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteDocumentQuery(key string) (string, []any, error) {
	query, args, err := sqlite.
		Delete(documentsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
