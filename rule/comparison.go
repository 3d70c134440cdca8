// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package rule

import (
	"encoding/json"

	"github.com/latticeauth/abac"
)

func init() {
	register("comparison.eq", decodeEq)
	register("comparison.not_eq", decodeNotEq)
	register("comparison.greater", decodeGreater)
	register("comparison.less", decodeLess)
	register("comparison.greater_or_equal", decodeGreaterOrEqual)
	register("comparison.less_or_equal", decodeLessOrEqual)
}

// eqArgs is the shared JSON shape for every comparison rule: a single
// constructor-time operand compared against the attribute value.
type eqArgs struct {
	Value any `json:"value"`
}

// Eq reports whether the attribute value equals v.
type Eq struct{ Value any }

// NewEq builds a rule satisfied when the attribute value equals v.
func NewEq(v any) Rule { return Eq{Value: v} }

// Satisfied implements Rule.
func (r Eq) Satisfied(value any, _ *abac.Inquiry) bool { return valuesEqual(value, r.Value) }

// MarshalJSON implements Rule.
func (r Eq) MarshalJSON() ([]byte, error) {
	return marshalWithType("comparison.eq", eqArgs{Value: r.Value})
}

func decodeEq(data []byte) (Rule, error) {
	var a eqArgs
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return Eq{Value: a.Value}, nil
}

// NotEq reports whether the attribute value does not equal v.
type NotEq struct{ Value any }

// NewNotEq builds a rule satisfied when the attribute value differs from v.
func NewNotEq(v any) Rule { return NotEq{Value: v} }

// Satisfied implements Rule.
func (r NotEq) Satisfied(value any, _ *abac.Inquiry) bool { return !valuesEqual(value, r.Value) }

// MarshalJSON implements Rule.
func (r NotEq) MarshalJSON() ([]byte, error) {
	return marshalWithType("comparison.not_eq", eqArgs{Value: r.Value})
}

func decodeNotEq(data []byte) (Rule, error) {
	var a eqArgs
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return NotEq{Value: a.Value}, nil
}

// Greater reports whether the attribute value orders strictly above v.
// Operands must be mutually orderable (both numeric or both strings); an
// incompatible pair yields false, never an error.
type Greater struct{ Value any }

// NewGreater builds the Greater rule.
func NewGreater(v any) Rule { return Greater{Value: v} }

// Satisfied implements Rule.
func (r Greater) Satisfied(value any, _ *abac.Inquiry) bool {
	cmp, ok := compareOrdered(value, r.Value)
	return ok && cmp > 0
}

// MarshalJSON implements Rule.
func (r Greater) MarshalJSON() ([]byte, error) {
	return marshalWithType("comparison.greater", eqArgs{Value: r.Value})
}

func decodeGreater(data []byte) (Rule, error) {
	var a eqArgs
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return Greater{Value: a.Value}, nil
}

// Less reports whether the attribute value orders strictly below v.
type Less struct{ Value any }

// NewLess builds the Less rule.
func NewLess(v any) Rule { return Less{Value: v} }

// Satisfied implements Rule.
func (r Less) Satisfied(value any, _ *abac.Inquiry) bool {
	cmp, ok := compareOrdered(value, r.Value)
	return ok && cmp < 0
}

// MarshalJSON implements Rule.
func (r Less) MarshalJSON() ([]byte, error) {
	return marshalWithType("comparison.less", eqArgs{Value: r.Value})
}

func decodeLess(data []byte) (Rule, error) {
	var a eqArgs
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return Less{Value: a.Value}, nil
}

// GreaterOrEqual reports whether the attribute value orders at or above v.
type GreaterOrEqual struct{ Value any }

// NewGreaterOrEqual builds the GreaterOrEqual rule.
func NewGreaterOrEqual(v any) Rule { return GreaterOrEqual{Value: v} }

// Satisfied implements Rule.
func (r GreaterOrEqual) Satisfied(value any, _ *abac.Inquiry) bool {
	cmp, ok := compareOrdered(value, r.Value)
	return ok && cmp >= 0
}

// MarshalJSON implements Rule.
func (r GreaterOrEqual) MarshalJSON() ([]byte, error) {
	return marshalWithType("comparison.greater_or_equal", eqArgs{Value: r.Value})
}

func decodeGreaterOrEqual(data []byte) (Rule, error) {
	var a eqArgs
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return GreaterOrEqual{Value: a.Value}, nil
}

// LessOrEqual reports whether the attribute value orders at or below v.
type LessOrEqual struct{ Value any }

// NewLessOrEqual builds the LessOrEqual rule.
func NewLessOrEqual(v any) Rule { return LessOrEqual{Value: v} }

// Satisfied implements Rule.
func (r LessOrEqual) Satisfied(value any, _ *abac.Inquiry) bool {
	cmp, ok := compareOrdered(value, r.Value)
	return ok && cmp <= 0
}

// MarshalJSON implements Rule.
func (r LessOrEqual) MarshalJSON() ([]byte, error) {
	return marshalWithType("comparison.less_or_equal", eqArgs{Value: r.Value})
}

func decodeLessOrEqual(data []byte) (Rule, error) {
	var a eqArgs
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return LessOrEqual{Value: a.Value}, nil
}
