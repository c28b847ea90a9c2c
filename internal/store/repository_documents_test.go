// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/intern-match/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestRepo(t *testing.T) (*documentRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewDocumentRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop()).(*documentRepository)
	repo.now = func() time.Time { return fixedNow }
	return repo, mock
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestDocumentRepository_Get_Found(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM documents WHERE key = ?")).
		WithArgs("draft:apply").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"coverLetter":"hi"}`))

	value, err := repo.Get(context.Background(), "draft:apply")

	require.NoError(t, err)
	assert.Equal(t, `{"coverLetter":"hi"}`, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM documents WHERE key = ?")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrDocumentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_Get_QueryError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT value FROM documents").
		WillReturnError(errors.New("database is locked"))

	_, err := repo.Get(context.Background(), "k")

	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NotErrorIs(t, err, ErrDocumentNotFound)
}

func TestDocumentRepository_EmptyKey(t *testing.T) {
	repo, mock := newTestRepo(t)

	_, err := repo.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyKey)
	assert.ErrorIs(t, repo.Set(context.Background(), "", "v"), ErrEmptyKey)
	assert.ErrorIs(t, repo.Remove(context.Background(), ""), ErrEmptyKey)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Set ──────────────────────────────────────────────────────────────────────

func TestDocumentRepository_Set_Upserts(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO documents (key,value,updated_at) VALUES (?,?,?) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at",
	)).
		WithArgs("state:student-1", `{"theme":"dark"}`, fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Set(context.Background(), "state:student-1", `{"theme":"dark"}`)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_Set_ExecError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec("INSERT INTO documents").
		WillReturnError(errors.New("disk full"))

	err := repo.Set(context.Background(), "k", "v")

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Remove ───────────────────────────────────────────────────────────────────

func TestDocumentRepository_Remove(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM documents WHERE key = ?")).
		WithArgs("draft:apply").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Remove(context.Background(), "draft:apply"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_Remove_ExecError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec("DELETE FROM documents").
		WillReturnError(errors.New("database is locked"))

	assert.ErrorIs(t, repo.Remove(context.Background(), "k"), ErrExecutingStatement)
}
