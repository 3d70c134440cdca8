// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package rule

import (
	"encoding/json"

	"github.com/latticeauth/abac"
)

func init() {
	register("list.in", decodeIn)
	register("list.not_in", decodeNotIn)
	register("list.all_in", decodeAllIn)
	register("list.all_not_in", decodeAllNotIn)
	register("list.any_in", decodeAnyIn)
	register("list.any_not_in", decodeAnyNotIn)
}

type listArgs struct {
	List []any `json:"list"`
}

// In is satisfied when the (scalar) attribute value appears in List.
type In struct{ List []any }

// NewIn builds the In rule.
func NewIn(list []any) Rule { return In{List: list} }

// Satisfied implements Rule.
func (r In) Satisfied(value any, _ *abac.Inquiry) bool { return containsValue(r.List, value) }

// MarshalJSON implements Rule.
func (r In) MarshalJSON() ([]byte, error) { return marshalWithType("list.in", listArgs{List: r.List}) }

func decodeIn(data []byte) (Rule, error) {
	var a listArgs
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return In{List: a.List}, nil
}

// NotIn is satisfied when the (scalar) attribute value does not appear
// in List.
type NotIn struct{ List []any }

// NewNotIn builds the NotIn rule.
func NewNotIn(list []any) Rule { return NotIn{List: list} }

// Satisfied implements Rule.
func (r NotIn) Satisfied(value any, _ *abac.Inquiry) bool { return !containsValue(r.List, value) }

// MarshalJSON implements Rule.
func (r NotIn) MarshalJSON() ([]byte, error) {
	return marshalWithType("list.not_in", listArgs{List: r.List})
}

func decodeNotIn(data []byte) (Rule, error) {
	var a listArgs
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return NotIn{List: a.List}, nil
}

// AllIn is satisfied when the attribute value is itself list-shaped and
// every one of its elements appears in List. A non-list attribute value
// yields false rather than an error.
type AllIn struct{ List []any }

// NewAllIn builds the AllIn rule.
func NewAllIn(list []any) Rule { return AllIn{List: list} }

// Satisfied implements Rule.
func (r AllIn) Satisfied(value any, _ *abac.Inquiry) bool {
	elems, ok := toSlice(value)
	if !ok {
		return false
	}
	for _, e := range elems {
		if !containsValue(r.List, e) {
			return false
		}
	}
	return true
}

// MarshalJSON implements Rule.
func (r AllIn) MarshalJSON() ([]byte, error) {
	return marshalWithType("list.all_in", listArgs{List: r.List})
}

func decodeAllIn(data []byte) (Rule, error) {
	var a listArgs
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return AllIn{List: a.List}, nil
}

// AllNotIn is satisfied when the attribute value is list-shaped and none
// of its elements appear in List.
type AllNotIn struct{ List []any }

// NewAllNotIn builds the AllNotIn rule.
func NewAllNotIn(list []any) Rule { return AllNotIn{List: list} }

// Satisfied implements Rule.
func (r AllNotIn) Satisfied(value any, _ *abac.Inquiry) bool {
	elems, ok := toSlice(value)
	if !ok {
		return false
	}
	for _, e := range elems {
		if containsValue(r.List, e) {
			return false
		}
	}
	return true
}

// MarshalJSON implements Rule.
func (r AllNotIn) MarshalJSON() ([]byte, error) {
	return marshalWithType("list.all_not_in", listArgs{List: r.List})
}

func decodeAllNotIn(data []byte) (Rule, error) {
	var a listArgs
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return AllNotIn{List: a.List}, nil
}

// AnyIn is satisfied when the attribute value is list-shaped and at
// least one of its elements appears in List.
type AnyIn struct{ List []any }

// NewAnyIn builds the AnyIn rule.
func NewAnyIn(list []any) Rule { return AnyIn{List: list} }

// Satisfied implements Rule.
func (r AnyIn) Satisfied(value any, _ *abac.Inquiry) bool {
	elems, ok := toSlice(value)
	if !ok {
		return false
	}
	for _, e := range elems {
		if containsValue(r.List, e) {
			return true
		}
	}
	return false
}

// MarshalJSON implements Rule.
func (r AnyIn) MarshalJSON() ([]byte, error) {
	return marshalWithType("list.any_in", listArgs{List: r.List})
}

func decodeAnyIn(data []byte) (Rule, error) {
	var a listArgs
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return AnyIn{List: a.List}, nil
}

// AnyNotIn is satisfied when the attribute value is list-shaped and at
// least one of its elements does not appear in List.
type AnyNotIn struct{ List []any }

// NewAnyNotIn builds the AnyNotIn rule.
func NewAnyNotIn(list []any) Rule { return AnyNotIn{List: list} }

// Satisfied implements Rule.
func (r AnyNotIn) Satisfied(value any, _ *abac.Inquiry) bool {
	elems, ok := toSlice(value)
	if !ok {
		return false
	}
	for _, e := range elems {
		if !containsValue(r.List, e) {
			return true
		}
	}
	return false
}

// MarshalJSON implements Rule.
func (r AnyNotIn) MarshalJSON() ([]byte, error) {
	return marshalWithType("list.any_not_in", listArgs{List: r.List})
}

func decodeAnyNotIn(data []byte) (Rule, error) {
	var a listArgs
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return AnyNotIn{List: a.List}, nil
}
