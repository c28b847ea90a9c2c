// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors whose text is sent as the "message" of error responses.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidToken covers bad signatures, wrong issuers and expired tokens.
	ErrInvalidToken = errors.New("token is expired or invalid")

	ErrTooManyRequests    = errors.New("too many requests, slow down")
	ErrInjectedFailure    = errors.New("service temporarily unavailable")
	ErrInvalidLimit       = errors.New("limit must be a non-negative integer")
	ErrInvalidRequestBody = errors.New("request body is not a valid notification")
	ErrNoOwner            = errors.New("request is not authenticated")
)
