// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

// Package policy implements the policy aggregate: a declarative record
// of field-matchers, an effect, and context rules that together decide
// whether an inquiry is granted.
package policy

import (
	"encoding/json"

	"github.com/latticeauth/abac"
	"github.com/latticeauth/abac/rule"
)

// Dialect distinguishes how a policy's field-matchers are expressed.
type Dialect int

const (
	// DialectString marks a policy whose subjects/actions/resources are
	// all plain strings, matched via a Checker.
	DialectString Dialect = iota
	// DialectRules marks a policy whose subjects/actions/resources
	// contain at least one Rule or mapping matcher.
	DialectRules
)

func (d Dialect) String() string {
	if d == DialectString {
		return "string"
	}
	return "rules"
}

// matcherKind tags which of Literal/Rule/Mapping a FieldMatcher holds.
type matcherKind int

const (
	matcherLiteral matcherKind = iota
	matcherRule
	matcherMapping
)

// FieldMatcher is a sum type over the three ways a policy can describe a
// subject/action/resource entry: a plain string, a Rule applied to the
// whole attribute, or a mapping of attribute name to Rule.
type FieldMatcher struct {
	kind    matcherKind
	literal string
	rule    rule.Rule
	mapping map[string]rule.Rule
}

// NewLiteralMatcher builds a string-dialect field-matcher.
func NewLiteralMatcher(s string) FieldMatcher {
	return FieldMatcher{kind: matcherLiteral, literal: s}
}

// NewRuleMatcher builds a rules-dialect field-matcher applying r to the
// whole inquiry attribute.
func NewRuleMatcher(r rule.Rule) FieldMatcher {
	return FieldMatcher{kind: matcherRule, rule: r}
}

// NewMappingMatcher builds a rules-dialect field-matcher requiring every
// key in m to be present in the inquiry attribute mapping and satisfied.
func NewMappingMatcher(m map[string]rule.Rule) FieldMatcher {
	return FieldMatcher{kind: matcherMapping, mapping: m}
}

// IsLiteral reports whether m is a plain string matcher.
func (m FieldMatcher) IsLiteral() bool { return m.kind == matcherLiteral }

// Literal returns the string pattern; valid only when IsLiteral is true.
func (m FieldMatcher) Literal() string { return m.literal }

// fits evaluates m against an inquiry attribute value under the rules
// dialect. value may be a scalar or a map[string]any.
func (m FieldMatcher) fits(value any, inq *abac.Inquiry) bool {
	switch m.kind {
	case matcherRule:
		return m.rule.Satisfied(value, inq)
	case matcherMapping:
		attrs, ok := value.(map[string]any)
		if !ok {
			return false
		}
		for key, r := range m.mapping {
			v, present := attrs[key]
			if !present || !r.Satisfied(v, inq) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (m FieldMatcher) MarshalJSON() ([]byte, error) {
	switch m.kind {
	case matcherLiteral:
		return json.Marshal(m.literal)
	case matcherRule:
		return m.rule.MarshalJSON()
	case matcherMapping:
		fields := make(map[string]json.RawMessage, len(m.mapping))
		for k, r := range m.mapping {
			data, err := r.MarshalJSON()
			if err != nil {
				return nil, err
			}
			fields[k] = data
		}
		return json.Marshal(fields)
	default:
		return nil, abac.NewInvalidArgument("policy: field-matcher has no kind set")
	}
}

func (m *FieldMatcher) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = NewLiteralMatcher(s)
		return nil
	}

	var envelope struct {
		Type *string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return abac.NewTypeError("decoding field matcher: %v", err)
	}
	if envelope.Type != nil {
		r, err := rule.Unmarshal(data)
		if err != nil {
			return err
		}
		*m = NewRuleMatcher(r)
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return abac.NewTypeError("decoding field matcher: %v", err)
	}
	mapping := make(map[string]rule.Rule, len(raw))
	for k, v := range raw {
		r, err := rule.Unmarshal(v)
		if err != nil {
			return err
		}
		mapping[k] = r
	}
	*m = NewMappingMatcher(mapping)
	return nil
}
