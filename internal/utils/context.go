// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and parsing, and request identifiers.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// OwnerCtxKey is the key used to store the authenticated owner (the "sub"
// claim of the bearer token) in the request context.
//
//	ctx := context.WithValue(ctx, utils.OwnerCtxKey, "student-42")
var OwnerCtxKey = contextKey("owner")

// RequestIDCtxKey is the key used to store the request identifier.
var RequestIDCtxKey = contextKey("requestID")

// GetOwnerFromContext retrieves the owner identifier from the context.
// ok is false when the value is missing, empty or has an unexpected type.
func GetOwnerFromContext(ctx context.Context) (string, bool) {
	owner, ok := ctx.Value(OwnerCtxKey).(string)
	return owner, ok && owner != ""
}

// GetRequestIDFromContext retrieves the request identifier from the context.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
