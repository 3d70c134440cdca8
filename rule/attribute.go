// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package rule

import (
	"encoding/json"
	"strings"

	"github.com/latticeauth/abac"
)

func init() {
	register("inquiry.subject_equal", decodeSubjectEqual)
	register("inquiry.action_equal", decodeActionEqual)
	register("inquiry.resource_in", decodeResourceIn)
}

// SubjectEqual ignores the attribute value it is handed and instead
// compares the inquiry's Subject against Value. It is meant to be placed
// on a resource or context field, letting a policy cross-reference the
// subject making the request from anywhere in the matcher tree.
type SubjectEqual struct{ Value any }

// NewSubjectEqual builds the SubjectEqual rule.
func NewSubjectEqual(v any) Rule { return SubjectEqual{Value: v} }

// Satisfied implements Rule.
func (r SubjectEqual) Satisfied(_ any, inq *abac.Inquiry) bool {
	if inq == nil {
		return false
	}
	return valuesEqual(inq.Subject, r.Value)
}

// MarshalJSON implements Rule.
func (r SubjectEqual) MarshalJSON() ([]byte, error) {
	return marshalWithType("inquiry.subject_equal", eqArgs{Value: r.Value})
}

func decodeSubjectEqual(data []byte) (Rule, error) {
	var a eqArgs
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return SubjectEqual{Value: a.Value}, nil
}

// ActionEqual compares the inquiry's Action against Value, ignoring the
// attribute value it is handed.
type ActionEqual struct{ Value any }

// NewActionEqual builds the ActionEqual rule.
func NewActionEqual(v any) Rule { return ActionEqual{Value: v} }

// Satisfied implements Rule.
func (r ActionEqual) Satisfied(_ any, inq *abac.Inquiry) bool {
	if inq == nil {
		return false
	}
	return valuesEqual(inq.Action, r.Value)
}

// MarshalJSON implements Rule.
func (r ActionEqual) MarshalJSON() ([]byte, error) {
	return marshalWithType("inquiry.action_equal", eqArgs{Value: r.Value})
}

func decodeActionEqual(data []byte) (Rule, error) {
	var a eqArgs
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return ActionEqual{Value: a.Value}, nil
}

// ResourceIn is satisfied when Value equals the inquiry's Resource, or,
// if the Resource is a string, when Value is a substring of it. It
// ignores the attribute value it is handed.
type ResourceIn struct{ Value any }

// NewResourceIn builds the ResourceIn rule.
func NewResourceIn(v any) Rule { return ResourceIn{Value: v} }

// Satisfied implements Rule.
func (r ResourceIn) Satisfied(_ any, inq *abac.Inquiry) bool {
	if inq == nil {
		return false
	}
	if valuesEqual(r.Value, inq.Resource) {
		return true
	}
	needle, ok := r.Value.(string)
	if !ok {
		return false
	}
	haystack, ok := inq.Resource.(string)
	if !ok {
		return false
	}
	return strings.Contains(haystack, needle)
}

// MarshalJSON implements Rule.
func (r ResourceIn) MarshalJSON() ([]byte, error) {
	return marshalWithType("inquiry.resource_in", eqArgs{Value: r.Value})
}

func decodeResourceIn(data []byte) (Rule, error) {
	var a eqArgs
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return ResourceIn{Value: a.Value}, nil
}
