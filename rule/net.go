// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package rule

import (
	"encoding/json"
	"net"
	"strings"

	"github.com/latticeauth/abac"
)

func init() {
	register("net.cidr", decodeCIDR)
}

// CIDR is satisfied when the attribute value parses as an IP address
// contained in one of its configured blocks.
type CIDR struct {
	Blocks string
	nets   []*net.IPNet
}

// NewCIDR parses blocks, a comma-separated list of CIDR notations, and
// builds the CIDR rule. A malformed block is a construction-time error.
func NewCIDR(blocks string) (Rule, error) {
	parts := strings.Split(blocks, ",")
	nets := make([]*net.IPNet, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		_, ipNet, err := net.ParseCIDR(p)
		if err != nil {
			return nil, abac.NewInvalidArgument("invalid CIDR block %q: %v", p, err)
		}
		nets = append(nets, ipNet)
	}
	if len(nets) == 0 {
		return nil, abac.NewInvalidArgument("CIDR rule requires at least one block")
	}
	return CIDR{Blocks: blocks, nets: nets}, nil
}

// Satisfied implements Rule.
func (r CIDR) Satisfied(value any, _ *abac.Inquiry) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return false
	}
	for _, n := range r.nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// MarshalJSON implements Rule.
func (r CIDR) MarshalJSON() ([]byte, error) {
	return marshalWithType("net.cidr", struct {
		Blocks string `json:"blocks"`
	}{Blocks: r.Blocks})
}

func decodeCIDR(data []byte) (Rule, error) {
	var body struct {
		Blocks string `json:"blocks"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}
	r, err := NewCIDR(body.Blocks)
	if err != nil {
		return nil, err
	}
	return r, nil
}
