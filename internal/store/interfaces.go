// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides durable local storage for the dashboard client.
//
// Every backend implements [KeyValueStore]: a flat map of string keys to
// opaque string documents (JSON in practice). Callers partition the key
// space with [Namespace] so drafts and per-owner state never collide.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is the local document store.
type KeyValueStore interface {
	// Get returns the document stored under key, or [ErrDocumentNotFound].
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous document.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the document under key. Removing a missing key is not
	// an error.
	Remove(ctx context.Context, key string) error
}
