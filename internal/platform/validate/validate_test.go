// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scriptwriter/internal/platform/apperr"
	"github.com/taibuivan/scriptwriter/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "title", "Saga", false},
		{"empty_string", "title", "", true},
		{"whitespace_only", "title", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Identifier checks the path identifier rule against the id shapes
each store produces.
*/
func TestValidator_Identifier(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		isValid bool
	}{
		{"uuid_v7", "01928c4e-7a3b-7cde-8f01-23456789abcd", true},
		{"object_id", "64b7f3c2e4b0a1d2c3e4f5a6", true},
		{"surreal_key", "r3k9x2m1q8w7e6t5y4u3", true},
		{"underscore", "issue_1", true},
		{"empty", "", false},
		{"slash", "a/b", false},
		{"colon", "comic:abc", false},
		{"space", "a b", false},
		{"too_long", strings.Repeat("a", validate.MaxIdentifierLength+1), false},
		{"max_length", strings.Repeat("a", validate.MaxIdentifierLength), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Identifier("id", tt.id)
			assert.Equal(t, !tt.isValid, v.HasErrors())
			assert.Equal(t, tt.isValid, validate.IsIdentifier(tt.id))
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("driver", "memory").
		Identifier("collection", "comic").
		OneOf("driver", "memory", "memory", "postgres").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("driver", "").                     // Fails
		OneOf("driver", "mongo", "memory", "nats"). // Fails
		Custom("redis_url", true, "Required").      // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
