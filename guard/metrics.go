// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package guard

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decisionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "abac_guard_decision_duration_seconds",
		Help:    "Histogram of Guard.IsAllowed latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	decisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "abac_guard_decisions_total",
		Help: "Total number of IsAllowed decisions by outcome",
	}, []string{"allowed"})

	policyFitErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "abac_guard_policy_fit_errors_total",
		Help: "Total number of policy fit evaluations that errored and were treated as non-fitting",
	})
)

func recordDecision(allowed bool) {
	label := "false"
	if allowed {
		label = "true"
	}
	decisionsTotal.WithLabelValues(label).Inc()
}
