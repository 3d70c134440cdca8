// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTrueIsFalse(t *testing.T) {
	assert.True(t, NewIsTrue().Satisfied(true, nil))
	assert.False(t, NewIsTrue().Satisfied(false, nil))
	assert.False(t, NewIsTrue().Satisfied("true", nil))

	assert.True(t, NewIsFalse().Satisfied(false, nil))
	assert.False(t, NewIsFalse().Satisfied(true, nil))
}

func TestAnyNeither(t *testing.T) {
	assert.True(t, NewAny().Satisfied(nil, nil))
	assert.True(t, NewAny().Satisfied("anything", nil))
	assert.False(t, NewNeither().Satisfied(nil, nil))
}

func TestNot(t *testing.T) {
	r := NewNot(NewIsTrue())
	assert.True(t, r.Satisfied(false, nil))
	assert.False(t, r.Satisfied(true, nil))
}

func TestAndEmptyIsVacuouslyTrue(t *testing.T) {
	r := NewAnd()
	assert.True(t, r.Satisfied(nil, nil))
}

func TestAndShortCircuits(t *testing.T) {
	r := NewAnd(NewIsTrue(), NewIsFalse())
	assert.False(t, r.Satisfied(true, nil))

	// A Not with a nil child panics if evaluated, so this only passes when
	// And stops at the first false child.
	trap := NewAnd(NewIsFalse(), NewNot(nil))
	assert.False(t, trap.Satisfied(true, nil))
}

func TestOrEmptyIsVacuouslyFalse(t *testing.T) {
	r := NewOr()
	assert.False(t, r.Satisfied(nil, nil))
}

func TestOrShortCircuits(t *testing.T) {
	r := NewOr(NewIsFalse(), NewIsTrue())
	assert.True(t, r.Satisfied(true, nil))

	// A Not with a nil child panics if evaluated, so this only passes when
	// Or stops at the first true child.
	trap := NewOr(NewIsTrue(), NewNot(nil))
	assert.True(t, trap.Satisfied(true, nil))
}

func TestLogicJSONRoundTrip(t *testing.T) {
	nested := NewAnd(NewOr(NewIsTrue(), NewIsFalse()), NewNot(NewAny()))
	data, err := nested.MarshalJSON()
	assert.NoError(t, err)

	decoded, err := Unmarshal(data)
	assert.NoError(t, err)
	assert.Equal(t, nested, decoded)
}
