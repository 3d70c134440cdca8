// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package rule

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/latticeauth/abac"
)

func init() {
	register("string.equal", decodeEqual)
	register("string.pairs_equal", decodePairsEqual)
	register("string.regex_match", decodeRegexMatch)
	register("string.starts_with", decodeStartsWith)
	register("string.ends_with", decodeEndsWith)
	register("string.contains", decodeContains)
}

type stringArgs struct {
	Value           string `json:"value"`
	CaseInsensitive bool   `json:"case_insensitive,omitempty"`
}

// Equal reports whether the attribute value equals Value, optionally
// case-folded.
type Equal struct {
	Value           string
	CaseInsensitive bool
}

// NewEqual builds a string-equality rule. ci enables case-insensitive
// comparison.
func NewEqual(v string, ci bool) Rule { return Equal{Value: v, CaseInsensitive: ci} }

// Satisfied implements Rule.
func (r Equal) Satisfied(value any, _ *abac.Inquiry) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	if r.CaseInsensitive {
		return strings.EqualFold(s, r.Value)
	}
	return s == r.Value
}

// MarshalJSON implements Rule.
func (r Equal) MarshalJSON() ([]byte, error) {
	return marshalWithType("string.equal", stringArgs{Value: r.Value, CaseInsensitive: r.CaseInsensitive})
}

func decodeEqual(data []byte) (Rule, error) {
	var a stringArgs
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return Equal{Value: a.Value, CaseInsensitive: a.CaseInsensitive}, nil
}

// PairsEqual expects the attribute value to be a list of 2-element lists
// and is satisfied when every pair's two elements are equal to each
// other. Any other shape (not a list, or a pair that isn't length 2)
// yields false rather than an error.
type PairsEqual struct{}

// NewPairsEqual builds the PairsEqual rule.
func NewPairsEqual() Rule { return PairsEqual{} }

// Satisfied implements Rule.
func (PairsEqual) Satisfied(value any, _ *abac.Inquiry) bool {
	pairs, ok := toSlice(value)
	if !ok {
		return false
	}
	for _, p := range pairs {
		pair, ok := toSlice(p)
		if !ok || len(pair) != 2 {
			return false
		}
		if !valuesEqual(pair[0], pair[1]) {
			return false
		}
	}
	return true
}

// MarshalJSON implements Rule.
func (PairsEqual) MarshalJSON() ([]byte, error) {
	return marshalWithType("string.pairs_equal", emptyArgs{})
}

func decodePairsEqual([]byte) (Rule, error) { return PairsEqual{}, nil }

// RegexMatch is satisfied when the attribute value (a string) matches the
// pattern in full (regexp.MatchString semantics anchored with ^...$).
type RegexMatch struct {
	Pattern string
	re      *regexp.Regexp
}

// NewRegexMatch compiles pattern and builds the RegexMatch rule. A
// malformed pattern is a construction-time error.
func NewRegexMatch(pattern string) (Rule, error) {
	re, err := regexp.Compile(anchor(pattern))
	if err != nil {
		return nil, abac.NewInvalidArgument("invalid regex pattern %q: %v", pattern, err)
	}
	return RegexMatch{Pattern: pattern, re: re}, nil
}

// anchor wraps pattern so Go's partial-match MatchString behaves like a
// full-string match.
func anchor(pattern string) string {
	return "^(?:" + pattern + ")$"
}

// Satisfied implements Rule.
func (r RegexMatch) Satisfied(value any, _ *abac.Inquiry) bool {
	s, ok := value.(string)
	if !ok || r.re == nil {
		return false
	}
	return r.re.MatchString(s)
}

// MarshalJSON implements Rule.
func (r RegexMatch) MarshalJSON() ([]byte, error) {
	return marshalWithType("string.regex_match", struct {
		Pattern string `json:"pattern"`
	}{Pattern: r.Pattern})
}

func decodeRegexMatch(data []byte) (Rule, error) {
	var body struct {
		Pattern string `json:"pattern"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}
	r, err := NewRegexMatch(body.Pattern)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// StartsWith is satisfied when the attribute value has Value as a prefix.
type StartsWith struct {
	Value           string
	CaseInsensitive bool
}

// NewStartsWith builds the StartsWith rule.
func NewStartsWith(v string, ci bool) Rule { return StartsWith{Value: v, CaseInsensitive: ci} }

// Satisfied implements Rule.
func (r StartsWith) Satisfied(value any, _ *abac.Inquiry) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	if r.CaseInsensitive {
		return strings.HasPrefix(strings.ToLower(s), strings.ToLower(r.Value))
	}
	return strings.HasPrefix(s, r.Value)
}

// MarshalJSON implements Rule.
func (r StartsWith) MarshalJSON() ([]byte, error) {
	return marshalWithType("string.starts_with", stringArgs{Value: r.Value, CaseInsensitive: r.CaseInsensitive})
}

func decodeStartsWith(data []byte) (Rule, error) {
	var a stringArgs
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return StartsWith{Value: a.Value, CaseInsensitive: a.CaseInsensitive}, nil
}

// EndsWith is satisfied when the attribute value has Value as a suffix.
type EndsWith struct {
	Value           string
	CaseInsensitive bool
}

// NewEndsWith builds the EndsWith rule.
func NewEndsWith(v string, ci bool) Rule { return EndsWith{Value: v, CaseInsensitive: ci} }

// Satisfied implements Rule.
func (r EndsWith) Satisfied(value any, _ *abac.Inquiry) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	if r.CaseInsensitive {
		return strings.HasSuffix(strings.ToLower(s), strings.ToLower(r.Value))
	}
	return strings.HasSuffix(s, r.Value)
}

// MarshalJSON implements Rule.
func (r EndsWith) MarshalJSON() ([]byte, error) {
	return marshalWithType("string.ends_with", stringArgs{Value: r.Value, CaseInsensitive: r.CaseInsensitive})
}

func decodeEndsWith(data []byte) (Rule, error) {
	var a stringArgs
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return EndsWith{Value: a.Value, CaseInsensitive: a.CaseInsensitive}, nil
}

// Contains is satisfied when the attribute value contains Value as a
// substring.
type Contains struct {
	Value           string
	CaseInsensitive bool
}

// NewContains builds the Contains rule.
func NewContains(v string, ci bool) Rule { return Contains{Value: v, CaseInsensitive: ci} }

// Satisfied implements Rule.
func (r Contains) Satisfied(value any, _ *abac.Inquiry) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	if r.CaseInsensitive {
		return strings.Contains(strings.ToLower(s), strings.ToLower(r.Value))
	}
	return strings.Contains(s, r.Value)
}

// MarshalJSON implements Rule.
func (r Contains) MarshalJSON() ([]byte, error) {
	return marshalWithType("string.contains", stringArgs{Value: r.Value, CaseInsensitive: r.CaseInsensitive})
}

func decodeContains(data []byte) (Rule, error) {
	var a stringArgs
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return Contains{Value: a.Value, CaseInsensitive: a.CaseInsensitive}, nil
}
