// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package policy

import (
	"encoding/json"

	"github.com/latticeauth/abac"
	"github.com/latticeauth/abac/rule"
)

// Policy is a declarative record that, when every one of its field
// matchers and context rules is satisfied by an inquiry, contributes
// its Effect to a decision.
type Policy struct {
	UID         string
	Effect      abac.Effect
	Subjects    []FieldMatcher
	Actions     []FieldMatcher
	Resources   []FieldMatcher
	Context     map[string]rule.Rule
	Description string

	dialect Dialect
}

// New builds a Policy, detecting and validating its dialect. Mixing
// plain-string matchers with rule/mapping matchers across subjects,
// actions and resources fails with abac.IsInvalidArgument.
func New(uid string, effect abac.Effect, subjects, actions, resources []FieldMatcher, context map[string]rule.Rule, description string) (*Policy, error) {
	if uid == "" {
		return nil, abac.NewInvalidArgument("policy: uid must not be empty")
	}
	if !effect.Valid() {
		return nil, abac.NewInvalidArgument("policy: effect must be allow or deny")
	}

	dialect, err := detectDialect(subjects, actions, resources)
	if err != nil {
		return nil, err
	}

	if context == nil {
		context = map[string]rule.Rule{}
	}

	return &Policy{
		UID:         uid,
		Effect:      effect,
		Subjects:    subjects,
		Actions:     actions,
		Resources:   resources,
		Context:     context,
		Description: description,
		dialect:     dialect,
	}, nil
}

// Dialect reports whether the policy is string-typed or rules-typed.
func (p *Policy) Dialect() Dialect { return p.dialect }

// detectDialect scans all three field lists: if every entry across them
// is a plain string the policy is string-typed; if any entry is a rule
// or mapping it is rules-typed, and no plain strings may remain.
func detectDialect(lists ...[]FieldMatcher) (Dialect, error) {
	sawLiteral := false
	sawOther := false
	for _, list := range lists {
		for _, m := range list {
			if m.IsLiteral() {
				sawLiteral = true
			} else {
				sawOther = true
			}
		}
	}

	switch {
	case sawOther && sawLiteral:
		return DialectString, abac.NewInvalidArgument("policy: cannot mix plain-string matchers with rule/mapping matchers")
	case sawOther:
		return DialectRules, nil
	default:
		return DialectString, nil
	}
}

// policyJSON is the wire shape of a Policy.
type policyJSON struct {
	UID         string                     `json:"uid"`
	Effect      abac.Effect                `json:"effect"`
	Subjects    []FieldMatcher             `json:"subjects"`
	Actions     []FieldMatcher             `json:"actions"`
	Resources   []FieldMatcher             `json:"resources"`
	Context     map[string]json.RawMessage `json:"context"`
	Description string                     `json:"description,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (p *Policy) MarshalJSON() ([]byte, error) {
	ctx := make(map[string]json.RawMessage, len(p.Context))
	for k, r := range p.Context {
		data, err := r.MarshalJSON()
		if err != nil {
			return nil, err
		}
		ctx[k] = data
	}
	return json.Marshal(policyJSON{
		UID:         p.UID,
		Effect:      p.Effect,
		Subjects:    p.Subjects,
		Actions:     p.Actions,
		Resources:   p.Resources,
		Context:     ctx,
		Description: p.Description,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The resulting Policy is
// validated exactly as if it had gone through New.
func (p *Policy) UnmarshalJSON(data []byte) error {
	var body policyJSON
	if err := json.Unmarshal(data, &body); err != nil {
		return abac.NewTypeError("decoding policy: %v", err)
	}

	context := make(map[string]rule.Rule, len(body.Context))
	for k, raw := range body.Context {
		r, err := rule.Unmarshal(raw)
		if err != nil {
			return err
		}
		context[k] = r
	}

	built, err := New(body.UID, body.Effect, body.Subjects, body.Actions, body.Resources, context, body.Description)
	if err != nil {
		return err
	}
	*p = *built
	return nil
}
