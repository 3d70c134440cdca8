// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEq(t *testing.T) {
	r := NewEq(float64(5))
	assert.True(t, r.Satisfied(float64(5), nil))
	assert.True(t, r.Satisfied(5, nil))
	assert.False(t, r.Satisfied(6, nil))
}

func TestNotEq(t *testing.T) {
	r := NewNotEq("a")
	assert.False(t, r.Satisfied("a", nil))
	assert.True(t, r.Satisfied("b", nil))
}

func TestOrderingRulesNumeric(t *testing.T) {
	assert.True(t, NewGreater(float64(1)).Satisfied(float64(2), nil))
	assert.False(t, NewGreater(float64(2)).Satisfied(float64(1), nil))
	assert.True(t, NewLess(float64(2)).Satisfied(float64(1), nil))
	assert.True(t, NewGreaterOrEqual(float64(2)).Satisfied(float64(2), nil))
	assert.True(t, NewLessOrEqual(float64(2)).Satisfied(float64(2), nil))
}

func TestOrderingRulesIncompatibleOperandsAreFalse(t *testing.T) {
	assert.False(t, NewGreater("a").Satisfied(float64(1), nil))
	assert.False(t, NewGreater(float64(1)).Satisfied("a", nil))
	assert.False(t, NewGreater(float64(1)).Satisfied(nil, nil))
}

func TestComparisonJSONRoundTrip(t *testing.T) {
	for _, r := range []Rule{
		NewEq("x"),
		NewNotEq(float64(3)),
		NewGreater(float64(1)),
		NewLess(float64(1)),
		NewGreaterOrEqual(float64(1)),
		NewLessOrEqual(float64(1)),
	} {
		data, err := r.MarshalJSON()
		assert.NoError(t, err)
		decoded, err := Unmarshal(data)
		assert.NoError(t, err)
		assert.Equal(t, r, decoded)
	}
}
