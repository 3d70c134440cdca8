// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

// Package storage defines the policy persistence contract and its
// in-memory reference implementation.
package storage

import (
	"context"

	"github.com/latticeauth/abac"
	"github.com/latticeauth/abac/checker"
	"github.com/latticeauth/abac/policy"
)

// Storage persists policies and serves candidate lookups for a Guard.
type Storage interface {
	// Add persists p, failing with abac.IsExists if p.UID is already
	// present.
	Add(ctx context.Context, p *policy.Policy) error
	// Get returns the policy for uid, or an abac.IsNotFound error.
	Get(ctx context.Context, uid string) (*policy.Policy, error)
	// GetAll returns a page of policies. limit and offset must both be
	// >= 0; a negative value fails with abac.IsInvalidArgument. Order is
	// stable per storage but unspecified across storages.
	GetAll(ctx context.Context, limit, offset int) ([]*policy.Policy, error)
	// Update replaces the policy sharing p.UID.
	Update(ctx context.Context, p *policy.Policy) error
	// Delete removes the policy for uid; a missing uid is a no-op.
	Delete(ctx context.Context, uid string) error
	// FindForInquiry returns a candidate set that is a superset of the
	// policies that truly fit inq. c is a hint the storage may use to
	// narrow the set; it may be ignored.
	FindForInquiry(ctx context.Context, inq *abac.Inquiry, c checker.Checker) ([]*policy.Policy, error)
}
