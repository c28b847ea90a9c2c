// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestOwnerCtxKey(t *testing.T) {
	if OwnerCtxKey.String() != "owner" {
		t.Errorf("expected 'owner', got '%s'", OwnerCtxKey.String())
	}
}

func TestGetOwnerFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), OwnerCtxKey, "student-42")

	owner, ok := GetOwnerFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if owner != "student-42" {
		t.Errorf("expected owner=student-42, got %s", owner)
	}
}

func TestGetOwnerFromContext_Missing(t *testing.T) {
	owner, ok := GetOwnerFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if owner != "" {
		t.Errorf("expected empty owner, got %s", owner)
	}
}

func TestGetOwnerFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), OwnerCtxKey, int64(42))

	if _, ok := GetOwnerFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetOwnerFromContext_EmptyValue(t *testing.T) {
	ctx := context.WithValue(context.Background(), OwnerCtxKey, "")

	if _, ok := GetOwnerFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty owner, got true")
	}
}

func TestGetOwnerFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), "student-42")

	if _, ok := GetOwnerFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}

func TestGetRequestIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDCtxKey, "req-1")

	id, ok := GetRequestIDFromContext(ctx)
	if !ok || id != "req-1" {
		t.Errorf("expected req-1, got %q (ok=%v)", id, ok)
	}

	if _, ok = GetRequestIDFromContext(context.Background()); ok {
		t.Error("expected ok=false on empty context")
	}
}
