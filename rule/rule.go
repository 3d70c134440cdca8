// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

// Package rule implements the polymorphic predicate algebra used by
// policies to match attribute values. Every rule is a pure, side-effect
// free value: Satisfied never panics, never performs I/O, and returns
// false rather than erroring on an incompatible operand.
package rule

import (
	"encoding/json"

	"github.com/latticeauth/abac"
)

// Rule is a predicate over an attribute value. inq gives inquiry-scoped
// rules (SubjectEqual, ActionEqual, ResourceIn) access to the full
// inquiry; every other rule ignores it. Container rules forward inq to
// their children unchanged.
type Rule interface {
	Satisfied(value any, inq *abac.Inquiry) bool
	MarshalJSON() ([]byte, error)
}

// discriminatorEnvelope is used only to read the "type" key during decode;
// the remaining fields are re-parsed by the matched decoder.
type discriminatorEnvelope struct {
	Type string `json:"type"`
}

type decodeFunc func(data []byte) (Rule, error)

var registry = map[string]decodeFunc{}

// register adds a discriminator -> decoder mapping. Called from init()
// in each file that defines rule variants; a duplicate discriminator is a
// programming error and panics at package-init time rather than silently
// shadowing.
func register(discriminator string, fn decodeFunc) {
	if _, exists := registry[discriminator]; exists {
		panic("rule: duplicate discriminator registered: " + discriminator)
	}
	registry[discriminator] = fn
}

// Marshal encodes a rule to its JSON wire form. It exists mainly for
// symmetry with Unmarshal; callers can also call json.Marshal(r) directly
// since every Rule implements json.Marshaler.
func Marshal(r Rule) ([]byte, error) {
	return r.MarshalJSON()
}

// Unmarshal decodes a JSON rule object by resolving its "type" discriminator
// through the registry populated by this package's rule variants. An
// unknown discriminator or malformed shape is reported as abac.TypeError.
func Unmarshal(data []byte) (Rule, error) {
	var env discriminatorEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, abac.NewTypeError("decoding rule envelope: %v", err)
	}
	if env.Type == "" {
		return nil, abac.NewTypeError("rule JSON is missing the \"type\" discriminator")
	}
	decode, ok := registry[env.Type]
	if !ok {
		return nil, abac.NewTypeError("unknown rule discriminator %q", env.Type)
	}
	r, err := decode(data)
	if err != nil {
		return nil, abac.NewTypeError("decoding rule %q: %v", env.Type, err)
	}
	return r, nil
}

// marshalWithType renders body's fields merged with the "type" discriminator.
func marshalWithType(typ string, body any) ([]byte, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	typJSON, err := json.Marshal(typ)
	if err != nil {
		return nil, err
	}
	fields["type"] = typJSON
	return json.Marshal(fields)
}

// unmarshalRuleList decodes a JSON array of rule objects.
func unmarshalRuleList(raw []json.RawMessage) ([]Rule, error) {
	rules := make([]Rule, len(raw))
	for i, r := range raw {
		decoded, err := Unmarshal(r)
		if err != nil {
			return nil, err
		}
		rules[i] = decoded
	}
	return rules, nil
}

// marshalRuleList encodes a slice of rules to their JSON array form.
func marshalRuleList(rules []Rule) ([]json.RawMessage, error) {
	raw := make([]json.RawMessage, len(rules))
	for i, r := range rules {
		data, err := r.MarshalJSON()
		if err != nil {
			return nil, err
		}
		raw[i] = data
	}
	return raw, nil
}
