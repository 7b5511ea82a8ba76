// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the domain
// services.
//
// Validators report failures as the sentinel errors in errors.go so the
// transport layer can map them to client errors with errors.Is, without
// knowing which rule fired.
package validators

import "context"

// Validator validates a request value. The optional field names restrict
// validation to those struct fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
