// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package abac

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPredicates(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		predicate func(error) bool
	}{
		{"invalid argument", NewInvalidArgument("bad: %d", 1), IsInvalidArgument},
		{"exists", NewExists("p1"), IsExists},
		{"not found", NewNotFound("p1"), IsNotFound},
		{"type error", NewTypeError("unknown discriminator %q", "x"), IsTypeError},
		{"storage error", NewStorageError(errors.New("boom")), IsStorageError},
		{"policy evaluation error", NewPolicyEvaluationError(errors.New("bad regex")), IsPolicyEvaluationError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.predicate(tc.err))
		})
	}
}

func TestErrorPredicates_CrossCodesFalse(t *testing.T) {
	err := NewExists("p1")
	assert.False(t, IsNotFound(err))
	assert.False(t, IsInvalidArgument(err))
}

func TestErrorPredicates_NilIsFalse(t *testing.T) {
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsInvalidArgument(nil))
}
