// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound values against business rules before
// they reach the dev server's backend.
//
// A Validator accepts optional field names to restrict validation to a
// subset of fields. With no field names every field is checked.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations return the first rule violation found.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
