// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package policy

import (
	"testing"

	"github.com/latticeauth/abac"
	"github.com/latticeauth/abac/checker"
	"github.com/latticeauth/abac/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1: string-typed allow via RegexChecker.
func TestFitsStringTypedAllow(t *testing.T) {
	p, err := New("p1", abac.Allow,
		[]FieldMatcher{NewLiteralMatcher("<[A-Z][a-z]+>")},
		[]FieldMatcher{NewLiteralMatcher("<read|get>")},
		[]FieldMatcher{NewLiteralMatcher("book:<.+>")},
		nil, "")
	require.NoError(t, err)

	rc, err := checker.NewRegexChecker()
	require.NoError(t, err)

	inq := abac.New("Alice", "read", "book:moby", nil)
	fits, err := p.Fits(inq, rc)
	require.NoError(t, err)
	assert.True(t, fits)
}

// S3: rules-typed numeric matching with a mapping matcher.
func TestFitsRulesTypedNumeric(t *testing.T) {
	p, err := New("p1", abac.Allow,
		[]FieldMatcher{NewMappingMatcher(map[string]rule.Rule{
			"name":  rule.NewAny(),
			"stars": rule.NewAnd(rule.NewGreater(float64(50)), rule.NewLess(float64(999))),
		})},
		[]FieldMatcher{NewRuleMatcher(rule.NewEq("fork"))},
		[]FieldMatcher{NewRuleMatcher(rule.NewStartsWith("repos/Google", true))},
		nil, "")
	require.NoError(t, err)

	rc := checker.NewRulesChecker()

	inq := abac.New(map[string]any{"name": "Brin", "stars": float64(80)}, "fork", "repos/google/tensorflow", nil)
	fits, err := p.Fits(inq, rc)
	require.NoError(t, err)
	assert.True(t, fits)

	inq2 := abac.New(map[string]any{"name": "Brin", "stars": float64(1000)}, "fork", "repos/google/tensorflow", nil)
	fits, err = p.Fits(inq2, rc)
	require.NoError(t, err)
	assert.False(t, fits)
}

// S4: context CIDR rule.
func TestFitsContextCIDR(t *testing.T) {
	cidr, err := rule.NewCIDR("192.168.2.0/24")
	require.NoError(t, err)

	p, err := New("p1", abac.Allow,
		[]FieldMatcher{NewRuleMatcher(rule.NewAny())},
		[]FieldMatcher{NewRuleMatcher(rule.NewAny())},
		[]FieldMatcher{NewRuleMatcher(rule.NewAny())},
		map[string]rule.Rule{"ip": cidr}, "")
	require.NoError(t, err)

	rc := checker.NewRulesChecker()

	inq := abac.New("s", "a", "r", map[string]any{"ip": "192.168.2.42"})
	fits, err := p.Fits(inq, rc)
	require.NoError(t, err)
	assert.True(t, fits)

	inq2 := abac.New("s", "a", "r", map[string]any{"ip": "10.0.0.1"})
	fits, err = p.Fits(inq2, rc)
	require.NoError(t, err)
	assert.False(t, fits)
}

// S5: missing context key fails the policy.
func TestFitsMissingContextKey(t *testing.T) {
	p, err := New("p1", abac.Allow,
		[]FieldMatcher{NewRuleMatcher(rule.NewAny())},
		[]FieldMatcher{NewRuleMatcher(rule.NewAny())},
		[]FieldMatcher{NewRuleMatcher(rule.NewAny())},
		map[string]rule.Rule{"secret": rule.NewEqual("x", false)}, "")
	require.NoError(t, err)

	rc := checker.NewRulesChecker()
	inq := abac.New("s", "a", "r", nil)
	fits, err := p.Fits(inq, rc)
	require.NoError(t, err)
	assert.False(t, fits)
}

func TestFitsEmptyFieldListNeverMatches(t *testing.T) {
	p, err := New("p1", abac.Allow, nil, nil, nil, nil, "")
	require.NoError(t, err)

	rc := checker.NewRulesChecker()
	inq := abac.New("s", "a", "r", nil)
	fits, err := p.Fits(inq, rc)
	require.NoError(t, err)
	assert.False(t, fits)
}

func TestFitsStringTypedRejectsNonStringInquiry(t *testing.T) {
	p, err := New("p1", abac.Allow,
		[]FieldMatcher{NewLiteralMatcher("<.+>")},
		[]FieldMatcher{NewLiteralMatcher("<.+>")},
		[]FieldMatcher{NewLiteralMatcher("<.+>")},
		nil, "")
	require.NoError(t, err)

	rc, err := checker.NewRegexChecker()
	require.NoError(t, err)

	inq := abac.New(map[string]any{"name": "Alice"}, "read", "doc1", nil)
	fits, err := p.Fits(inq, rc)
	require.NoError(t, err)
	assert.False(t, fits)
}

// Checker monotonicity (property 5): for a literal-string pattern,
// StringExact fits => StringFuzzy fits => RegexChecker fits.
func TestCheckerMonotonicity(t *testing.T) {
	pattern, value := "hello", "hello"

	exact := checker.NewStringExactChecker()
	fuzzy := checker.NewStringFuzzyChecker()
	rc, err := checker.NewRegexChecker()
	require.NoError(t, err)

	exactFits, err := exact.Fits(pattern, value)
	require.NoError(t, err)
	if exactFits {
		fuzzyFits, err := fuzzy.Fits(pattern, value)
		require.NoError(t, err)
		assert.True(t, fuzzyFits)

		regexFits, err := rc.Fits(pattern, value)
		require.NoError(t, err)
		assert.True(t, regexFits)
	}
}
