// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

// Package abac defines the core value types shared by every layer of the
// attribute-based access control decision engine: the policy effect
// enumeration and the access inquiry.
package abac

import "encoding/json"

// Effect is the outcome a policy declares when it matches an inquiry.
type Effect int

// The two effects a policy may carry. The zero value is intentionally
// invalid so a policy can never be silently constructed without one.
const (
	effectUnspecified Effect = iota
	Allow
	Deny
)

var effectNames = map[Effect]string{
	Allow: "allow",
	Deny:  "deny",
}

var namesToEffect = map[string]Effect{
	"allow": Allow,
	"deny":  Deny,
}

// String renders the effect using the JSON wire names from spec §6.
func (e Effect) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return "unspecified"
}

// Valid reports whether e is one of the two defined effects.
func (e Effect) Valid() bool {
	_, ok := effectNames[e]
	return ok
}

// ParseEffect maps the wire strings "allow"/"deny" to an Effect.
func ParseEffect(s string) (Effect, error) {
	e, ok := namesToEffect[s]
	if !ok {
		return effectUnspecified, NewInvalidArgument("unknown effect %q: must be \"allow\" or \"deny\"", s)
	}
	return e, nil
}

// MarshalJSON renders the effect as its wire string.
func (e Effect) MarshalJSON() ([]byte, error) {
	if !e.Valid() {
		return nil, NewInvalidArgument("cannot marshal unspecified effect")
	}
	return json.Marshal(e.String())
}

// UnmarshalJSON parses the wire string into an Effect.
func (e *Effect) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseEffect(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
