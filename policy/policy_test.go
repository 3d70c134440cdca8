// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package policy

import (
	"testing"

	"github.com/latticeauth/abac"
	"github.com/latticeauth/abac/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDetectsStringDialect(t *testing.T) {
	p, err := New("p1", abac.Allow,
		[]FieldMatcher{NewLiteralMatcher("<.+>")},
		[]FieldMatcher{NewLiteralMatcher("<.+>")},
		[]FieldMatcher{NewLiteralMatcher("<.+>")},
		nil, "")
	require.NoError(t, err)
	assert.Equal(t, DialectString, p.Dialect())
}

func TestNewDetectsRulesDialect(t *testing.T) {
	p, err := New("p1", abac.Allow,
		[]FieldMatcher{NewRuleMatcher(rule.NewAny())},
		[]FieldMatcher{NewRuleMatcher(rule.NewEq("fork"))},
		[]FieldMatcher{NewRuleMatcher(rule.NewStartsWith("repos/", false))},
		nil, "")
	require.NoError(t, err)
	assert.Equal(t, DialectRules, p.Dialect())
}

func TestNewRejectsMixedDialect(t *testing.T) {
	_, err := New("p1", abac.Allow,
		[]FieldMatcher{NewLiteralMatcher("alice"), NewRuleMatcher(rule.NewAny())},
		[]FieldMatcher{NewLiteralMatcher("read")},
		[]FieldMatcher{NewLiteralMatcher("doc1")},
		nil, "")
	require.Error(t, err)
	assert.True(t, abac.IsInvalidArgument(err))
}

func TestNewRejectsEmptyUID(t *testing.T) {
	_, err := New("", abac.Allow, nil, nil, nil, nil, "")
	require.Error(t, err)
	assert.True(t, abac.IsInvalidArgument(err))
}

func TestNewRejectsInvalidEffect(t *testing.T) {
	_, err := New("p1", abac.Effect(99), nil, nil, nil, nil, "")
	require.Error(t, err)
	assert.True(t, abac.IsInvalidArgument(err))
}

func TestPolicyJSONRoundTrip(t *testing.T) {
	p, err := New("p1", abac.Deny,
		[]FieldMatcher{NewLiteralMatcher("<.+>")},
		[]FieldMatcher{NewLiteralMatcher("<read|write>")},
		[]FieldMatcher{NewLiteralMatcher("doc:<.+>")},
		map[string]rule.Rule{"ip": mustCIDR(t, "10.0.0.0/8")},
		"a test policy")
	require.NoError(t, err)

	data, err := p.MarshalJSON()
	require.NoError(t, err)

	var decoded Policy
	require.NoError(t, decoded.UnmarshalJSON(data))

	assert.Equal(t, p.UID, decoded.UID)
	assert.Equal(t, p.Effect, decoded.Effect)
	assert.Equal(t, p.Dialect(), decoded.Dialect())
	assert.Equal(t, p.Description, decoded.Description)
}

func mustCIDR(t *testing.T, blocks string) rule.Rule {
	t.Helper()
	r, err := rule.NewCIDR(blocks)
	require.NoError(t, err)
	return r
}
