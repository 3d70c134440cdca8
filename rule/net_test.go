// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCIDR(t *testing.T) {
	r, err := NewCIDR("10.0.0.0/8,192.168.1.0/24")
	require.NoError(t, err)

	assert.True(t, r.Satisfied("10.1.2.3", nil))
	assert.True(t, r.Satisfied("192.168.1.42", nil))
	assert.False(t, r.Satisfied("172.16.0.1", nil))
}

func TestCIDRInvalidValueIsFalse(t *testing.T) {
	r, err := NewCIDR("10.0.0.0/8")
	require.NoError(t, err)

	assert.False(t, r.Satisfied("not-an-ip", nil))
	assert.False(t, r.Satisfied(123, nil))
}

func TestCIDRMalformedBlockIsConstructionError(t *testing.T) {
	_, err := NewCIDR("not-a-cidr")
	require.Error(t, err)
}

func TestCIDRJSONRoundTrip(t *testing.T) {
	r, err := NewCIDR("10.0.0.0/8")
	require.NoError(t, err)

	data, err := r.MarshalJSON()
	require.NoError(t, err)

	decoded, err := Unmarshal(data)
	require.NoError(t, err)

	assert.Equal(t, r.(CIDR).Blocks, decoded.(CIDR).Blocks)
	assert.True(t, decoded.Satisfied("10.1.1.1", nil))
}
