// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package rule

import (
	"testing"

	"github.com/latticeauth/abac"
	"github.com/stretchr/testify/assert"
)

func TestUnmarshalUnknownDiscriminator(t *testing.T) {
	_, err := Unmarshal([]byte(`{"type":"nope.nope"}`))
	assert.Error(t, err)
	assert.True(t, abac.IsTypeError(err))
}

func TestUnmarshalMissingDiscriminator(t *testing.T) {
	_, err := Unmarshal([]byte(`{"value":1}`))
	assert.Error(t, err)
	assert.True(t, abac.IsTypeError(err))
}

func TestUnmarshalMalformedJSON(t *testing.T) {
	_, err := Unmarshal([]byte(`not json`))
	assert.Error(t, err)
	assert.True(t, abac.IsTypeError(err))
}

func TestRegisterDuplicateDiscriminatorPanics(t *testing.T) {
	assert.Panics(t, func() {
		register("comparison.eq", func([]byte) (Rule, error) { return nil, nil })
	})
}
