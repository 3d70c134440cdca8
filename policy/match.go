// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package policy

import (
	"github.com/latticeauth/abac"
	"github.com/latticeauth/abac/checker"
)

// Fits reports whether p matches inq under c, evaluating dialect
// compatibility, all three field lists, and every context rule (spec
// §4.6 step 2). A string-checker error surfaces to the caller so a Guard
// can log it and treat the policy as not fitting; rules report no
// errors, since Satisfied returns only a bool.
func (p *Policy) Fits(inq *abac.Inquiry, c checker.Checker) (bool, error) {
	switch p.dialect {
	case DialectString:
		sc, ok := c.(checker.StringChecker)
		if !ok {
			return false, nil
		}
		ok, err := p.fitsStringDialect(inq, sc)
		if err != nil || !ok {
			return false, err
		}
	default:
		if !p.fitsRulesDialect(inq) {
			return false, nil
		}
	}

	return p.fitsContext(inq), nil
}

func (p *Policy) fitsStringDialect(inq *abac.Inquiry, sc checker.StringChecker) (bool, error) {
	subject, ok := inq.SubjectString()
	if !ok {
		return false, nil
	}
	action, ok := inq.ActionString()
	if !ok {
		return false, nil
	}
	resource, ok := inq.ResourceString()
	if !ok {
		return false, nil
	}

	for _, fields := range []struct {
		matchers []FieldMatcher
		value    string
	}{
		{p.Subjects, subject},
		{p.Actions, action},
		{p.Resources, resource},
	} {
		matched, err := anyLiteralFits(fields.matchers, fields.value, sc)
		if err != nil {
			return false, err
		}
		if !matched {
			return false, nil
		}
	}
	return true, nil
}

func anyLiteralFits(matchers []FieldMatcher, value string, sc checker.StringChecker) (bool, error) {
	for _, m := range matchers {
		fits, err := sc.Fits(m.Literal(), value)
		if err != nil {
			return false, err
		}
		if fits {
			return true, nil
		}
	}
	return false, nil
}

func (p *Policy) fitsRulesDialect(inq *abac.Inquiry) bool {
	return anyMatcherFits(p.Subjects, inq.Subject, inq) &&
		anyMatcherFits(p.Actions, inq.Action, inq) &&
		anyMatcherFits(p.Resources, inq.Resource, inq)
}

func anyMatcherFits(matchers []FieldMatcher, value any, inq *abac.Inquiry) bool {
	for _, m := range matchers {
		if m.fits(value, inq) {
			return true
		}
	}
	return false
}

func (p *Policy) fitsContext(inq *abac.Inquiry) bool {
	for key, r := range p.Context {
		v, present := inq.Context[key]
		if !present || !r.Satisfied(v, inq) {
			return false
		}
	}
	return true
}
