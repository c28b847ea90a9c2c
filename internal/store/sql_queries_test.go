// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_buildGetDocumentQuery(t *testing.T) {
	query, args, err := buildGetDocumentQuery("draft:x")
	require.NoError(t, err)

	require.Equal(t, "SELECT value FROM documents WHERE key = ?", query)
	require.Equal(t, []any{"draft:x"}, args)
}

func Test_buildUpsertDocumentQuery(t *testing.T) {
	now := time.Now()

	query, args, err := buildUpsertDocumentQuery("k", "v", now)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.True(t, strings.HasPrefix(q, "insert into documents"))
	require.Contains(t, q, "on conflict(key) do update")
	// sqlite placeholders, never postgres ones
	require.NotContains(t, query, "$1")
	require.Equal(t, []any{"k", "v", now}, args)
}

func Test_buildDeleteDocumentQuery(t *testing.T) {
	query, args, err := buildDeleteDocumentQuery("k")
	require.NoError(t, err)

	require.Equal(t, "DELETE FROM documents WHERE key = ?", query)
	require.Equal(t, []any{"k"}, args)
}
