// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package rule

import (
	"encoding/json"

	"github.com/latticeauth/abac"
)

func init() {
	register("logic.is_true", decodeIsTrue)
	register("logic.is_false", decodeIsFalse)
	register("logic.not", decodeNot)
	register("logic.and", decodeAnd)
	register("logic.or", decodeOr)
	register("logic.any", decodeAny)
	register("logic.neither", decodeNeither)
}

// emptyArgs is the JSON shape for rules with no constructor arguments.
type emptyArgs struct{}

// IsTrue is satisfied when the attribute value is the boolean true.
type IsTrue struct{}

// NewIsTrue builds the IsTrue rule.
func NewIsTrue() Rule { return IsTrue{} }

// Satisfied implements Rule.
func (IsTrue) Satisfied(value any, _ *abac.Inquiry) bool {
	b, ok := value.(bool)
	return ok && b
}

// MarshalJSON implements Rule.
func (IsTrue) MarshalJSON() ([]byte, error) { return marshalWithType("logic.is_true", emptyArgs{}) }

func decodeIsTrue([]byte) (Rule, error) { return IsTrue{}, nil }

// IsFalse is satisfied when the attribute value is the boolean false.
type IsFalse struct{}

// NewIsFalse builds the IsFalse rule.
func NewIsFalse() Rule { return IsFalse{} }

// Satisfied implements Rule.
func (IsFalse) Satisfied(value any, _ *abac.Inquiry) bool {
	b, ok := value.(bool)
	return ok && !b
}

// MarshalJSON implements Rule.
func (IsFalse) MarshalJSON() ([]byte, error) { return marshalWithType("logic.is_false", emptyArgs{}) }

func decodeIsFalse([]byte) (Rule, error) { return IsFalse{}, nil }

// Any always matches. It is typically used as a placeholder field-matcher
// in a rules-typed policy that doesn't care about that field's value.
type Any struct{}

// NewAny builds the Any rule.
func NewAny() Rule { return Any{} }

// Satisfied implements Rule.
func (Any) Satisfied(any, *abac.Inquiry) bool { return true }

// MarshalJSON implements Rule.
func (Any) MarshalJSON() ([]byte, error) { return marshalWithType("logic.any", emptyArgs{}) }

func decodeAny([]byte) (Rule, error) { return Any{}, nil }

// Neither never matches.
type Neither struct{}

// NewNeither builds the Neither rule.
func NewNeither() Rule { return Neither{} }

// Satisfied implements Rule.
func (Neither) Satisfied(any, *abac.Inquiry) bool { return false }

// MarshalJSON implements Rule.
func (Neither) MarshalJSON() ([]byte, error) { return marshalWithType("logic.neither", emptyArgs{}) }

func decodeNeither([]byte) (Rule, error) { return Neither{}, nil }

// Not inverts its child rule's verdict.
type Not struct{ Rule Rule }

// NewNot builds a rule that negates r.
func NewNot(r Rule) Rule { return Not{Rule: r} }

// Satisfied implements Rule.
func (r Not) Satisfied(value any, inq *abac.Inquiry) bool {
	return !r.Rule.Satisfied(value, inq)
}

// MarshalJSON implements Rule.
func (r Not) MarshalJSON() ([]byte, error) {
	inner, err := r.Rule.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return marshalWithType("logic.not", struct {
		Rule json.RawMessage `json:"rule"`
	}{Rule: inner})
}

func decodeNot(data []byte) (Rule, error) {
	var body struct {
		Rule json.RawMessage `json:"rule"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}
	inner, err := Unmarshal(body.Rule)
	if err != nil {
		return nil, err
	}
	return Not{Rule: inner}, nil
}

// And is satisfied when every child rule is; an empty And is vacuously
// true and evaluation short-circuits on the first false child.
type And struct{ Rules []Rule }

// NewAnd builds a conjunction of rules.
func NewAnd(rules ...Rule) Rule { return And{Rules: rules} }

// Satisfied implements Rule.
func (r And) Satisfied(value any, inq *abac.Inquiry) bool {
	for _, child := range r.Rules {
		if !child.Satisfied(value, inq) {
			return false
		}
	}
	return true
}

// MarshalJSON implements Rule.
func (r And) MarshalJSON() ([]byte, error) {
	raw, err := marshalRuleList(r.Rules)
	if err != nil {
		return nil, err
	}
	return marshalWithType("logic.and", struct {
		Rules []json.RawMessage `json:"rules"`
	}{Rules: raw})
}

func decodeAnd(data []byte) (Rule, error) {
	var body struct {
		Rules []json.RawMessage `json:"rules"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}
	rules, err := unmarshalRuleList(body.Rules)
	if err != nil {
		return nil, err
	}
	return And{Rules: rules}, nil
}

// Or is satisfied when any child rule is; an empty Or is vacuously false
// and evaluation short-circuits on the first true child.
type Or struct{ Rules []Rule }

// NewOr builds a disjunction of rules.
func NewOr(rules ...Rule) Rule { return Or{Rules: rules} }

// Satisfied implements Rule.
func (r Or) Satisfied(value any, inq *abac.Inquiry) bool {
	for _, child := range r.Rules {
		if child.Satisfied(value, inq) {
			return true
		}
	}
	return false
}

// MarshalJSON implements Rule.
func (r Or) MarshalJSON() ([]byte, error) {
	raw, err := marshalRuleList(r.Rules)
	if err != nil {
		return nil, err
	}
	return marshalWithType("logic.or", struct {
		Rules []json.RawMessage `json:"rules"`
	}{Rules: raw})
}

func decodeOr(data []byte) (Rule, error) {
	var body struct {
		Rules []json.RawMessage `json:"rules"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}
	rules, err := unmarshalRuleList(body.Rules)
	if err != nil {
		return nil, err
	}
	return Or{Rules: rules}, nil
}
