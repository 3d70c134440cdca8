// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

// Package guard implements the decision algorithm combining storage
// lookup, checker-based field matching, and context-rule evaluation
// into a final allow/deny decision.
package guard

import (
	"context"
	"log/slog"
	"time"

	"github.com/latticeauth/abac"
	"github.com/latticeauth/abac/checker"
	"github.com/latticeauth/abac/storage"
)

// Option configures a Guard.
type Option func(*guardConfig)

type guardConfig struct {
	logger *slog.Logger
}

// WithLogger overrides the *slog.Logger used for inquiry/error events.
// The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *guardConfig) { c.logger = logger }
}

// Guard is the stateless decision procedure combining a Storage and a
// Checker. It is safe for concurrent use provided its Storage and
// Checker are.
type Guard struct {
	storage storage.Storage
	checker checker.Checker
	logger  *slog.Logger
}

// New builds a Guard over s using c as the matching strategy.
func New(s storage.Storage, c checker.Checker, opts ...Option) *Guard {
	cfg := guardConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Guard{storage: s, checker: c, logger: cfg.logger}
}

// IsAllowed runs the decision algorithm (spec §4.6): it fetches
// candidates from storage, evaluates each candidate's fit against inq,
// and applies deny-overrides precedence. A fit error for a single
// policy (such as a malformed regex in a string pattern) is logged and
// treated as "did not fit"; it never propagates. A storage error
// propagates directly.
func (g *Guard) IsAllowed(ctx context.Context, inq *abac.Inquiry) (bool, error) {
	start := time.Now()

	candidates, err := g.storage.FindForInquiry(ctx, inq, g.checker)
	if err != nil {
		return false, err
	}

	sawDeny := false
	sawAllow := false

	for _, p := range candidates {
		fits, fitErr := p.Fits(inq, g.checker)
		if fitErr != nil {
			policyFitErrorsTotal.Inc()
			g.logger.ErrorContext(ctx, "policy evaluation failed, treating as not fitting",
				slog.String("policy_uid", p.UID),
				slog.String("error", fitErr.Error()))
			continue
		}
		if !fits {
			continue
		}
		switch p.Effect {
		case abac.Deny:
			sawDeny = true
		case abac.Allow:
			sawAllow = true
		}
	}

	allowed := !sawDeny && sawAllow
	decisionDuration.Observe(time.Since(start).Seconds())
	recordDecision(allowed)

	g.logger.InfoContext(ctx, "inquiry evaluated",
		slog.Any("subject", inq.Subject),
		slog.Any("action", inq.Action),
		slog.Any("resource", inq.Resource),
		slog.Bool("allowed", allowed),
		slog.Duration("duration", time.Since(start)))

	return allowed, nil
}
