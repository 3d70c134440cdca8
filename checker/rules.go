// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package checker

// RulesChecker marks a Guard as evaluating rules-typed policies. It
// carries no string-matching behavior of its own: rules-typed field
// matching is delegated directly to the rule algebra (spec §4.4), so
// RulesChecker does not implement StringChecker.
type RulesChecker struct{}

// NewRulesChecker builds a RulesChecker.
func NewRulesChecker() *RulesChecker { return &RulesChecker{} }

// Kind implements Checker.
func (*RulesChecker) Kind() Kind { return KindRules }
