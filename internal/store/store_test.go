// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/intern-match/internal/config"
	"github.com/MKhiriev/intern-match/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, kv KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, "a")
	require.ErrorIs(t, err, ErrDocumentNotFound)

	require.NoError(t, kv.Set(ctx, "a", `{"x":1}`))
	got, err := kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, `{"x":1}`, got)

	require.NoError(t, kv.Set(ctx, "a", `{"x":2}`))
	got, err = kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, `{"x":2}`, got)

	require.NoError(t, kv.Remove(ctx, "a"))
	_, err = kv.Get(ctx, "a")
	require.ErrorIs(t, err, ErrDocumentNotFound)

	// removing again is fine
	require.NoError(t, kv.Remove(ctx, "a"))

	_, err = kv.Get(ctx, "")
	require.ErrorIs(t, err, ErrEmptyKey)
}

// ── memory ───────────────────────────────────────────────────────────────────

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

// ── file ─────────────────────────────────────────────────────────────────────

func TestFileStore(t *testing.T) {
	kv, err := NewFileStore(filepath.Join(t.TempDir(), "docs.json"), logger.Nop())
	require.NoError(t, err)
	exerciseStore(t, kv)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "docs.json")
	ctx := context.Background()

	kv, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "draft:apply", `{"coverLetter":"Dear team"}`))
	require.NoError(t, kv.Set(ctx, "state:s1", `{"tab":"saved"}`))
	require.NoError(t, kv.Remove(ctx, "state:s1"))

	reopened, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)

	got, err := reopened.Get(ctx, "draft:apply")
	require.NoError(t, err)
	assert.Equal(t, `{"coverLetter":"Dear team"}`, got)

	_, err = reopened.Get(ctx, "state:s1")
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := NewFileStore(path, logger.Nop())
	assert.Error(t, err)
}

func TestFileStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	kv, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)
	exerciseStore(t, kv)
}

// ── namespace ────────────────────────────────────────────────────────────────

func TestNamespace_PrefixesKeys(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	drafts := Namespace(inner, "draft")
	state := Namespace(inner, "state")

	require.NoError(t, drafts.Set(ctx, "apply", "d"))
	require.NoError(t, state.Set(ctx, "apply", "s"))

	raw, err := inner.Get(ctx, "draft:apply")
	require.NoError(t, err)
	assert.Equal(t, "d", raw)

	raw, err = inner.Get(ctx, "state:apply")
	require.NoError(t, err)
	assert.Equal(t, "s", raw)

	require.NoError(t, drafts.Remove(ctx, "apply"))
	_, err = inner.Get(ctx, "draft:apply")
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	got, err := state.Get(ctx, "apply")
	require.NoError(t, err)
	assert.Equal(t, "s", got)

	assert.ErrorIs(t, drafts.Set(ctx, "", "x"), ErrEmptyKey)
}

// ── NewClientStorages ────────────────────────────────────────────────────────

func TestNewClientStorages_Backends(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		dsn  string
	}{
		{name: "memory", dsn: MemoryDSN},
		{name: "json file", dsn: filepath.Join(dir, "client.json")},
		{name: "sqlite", dsn: filepath.Join(dir, "client.db")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storages, err := NewClientStorages(context.Background(), config.ClientStorage{DSN: tt.dsn}, logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = storages.Close() })

			exerciseStore(t, storages.Drafts)
			exerciseStore(t, storages.State)
		})
	}
}

func TestNewClientStorages_SQLitePersists(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "client.db")
	ctx := context.Background()

	first, err := NewClientStorages(ctx, config.ClientStorage{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.State.Set(ctx, "student-1", `{"k":"v"}`))
	require.NoError(t, first.Close())

	second, err := NewClientStorages(ctx, config.ClientStorage{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	got, err := second.State.Get(ctx, "student-1")
	require.NoError(t, err)
	assert.Equal(t, `{"k":"v"}`, got)

	_, err = second.Drafts.Get(ctx, "student-1")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}
