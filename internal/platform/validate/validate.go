// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// Configuration loading uses it for settings checks and handlers for path
// identifier shape. Entity payloads are persisted as sent; no attribute rules
// are enforced.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/taibuivan/scriptwriter/internal/platform/apperr"
)

// MaxIdentifierLength bounds path identifiers. Store-assigned keys are far shorter.
const MaxIdentifierLength = 64

var (
	// identifierRegex matches store-assigned keys: UUIDs, SurrealDB record keys, ObjectIds.
	identifierRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// Identifier fails if the value is not a well-formed document identifier.
//
// # Format
//
// Identifiers consist of ASCII letters, digits, underscores and hyphens,
// 1 to [MaxIdentifierLength] characters long.
func (v *Validator) Identifier(field, value string) *Validator {
	if value == "" {
		v.add(field, "This field is required")
		return v
	}
	if !IsIdentifier(value) {
		v.add(field, "Must be a valid identifier")
	}
	return v
}

// IsIdentifier reports whether value has the shape of a document identifier.
func IsIdentifier(value string) bool {
	return len(value) <= MaxIdentifierLength && identifierRegex.MatchString(value)
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("database_url", cfg.DatabaseURL == "", "Required for the postgres driver")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method; call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
