// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

// Package migration implements ordered up/down schema evolution for
// externally persisted storages. It is deliberately storage-agnostic:
// unlike a SQL-specific runner, it drives any VersionTracker, including
// the in-memory reference storage.
package migration

import (
	"context"
	"sort"

	"github.com/latticeauth/abac"
)

// Migration is one ordered, idempotent-safe schema step.
type Migration interface {
	// Order is the migration's position, starting at 1.
	Order() int
	Up(ctx context.Context) error
	Down(ctx context.Context) error
}

// VersionTracker persists and reads back the last-applied migration
// order for a storage.
type VersionTracker interface {
	LastApplied(ctx context.Context) (int, error)
	SetLastApplied(ctx context.Context, order int) error
}

// Migrator drives an ordered set of migrations against a VersionTracker.
//
// Migrator is NOT safe for concurrent use by multiple goroutines driving
// the same storage; serialize calls to Up/Down externally if needed.
type Migrator struct {
	migrations []Migration
	tracker    VersionTracker
}

// NewMigrator validates migrations (each Order() >= 1, no duplicates),
// sorts them ascending, and builds a Migrator bound to tracker.
func NewMigrator(tracker VersionTracker, migrations ...Migration) (*Migrator, error) {
	seen := make(map[int]struct{}, len(migrations))
	for _, m := range migrations {
		if m.Order() < 1 {
			return nil, abac.NewInvalidArgument("migration: order must be >= 1, got %d", m.Order())
		}
		if _, dup := seen[m.Order()]; dup {
			return nil, abac.NewInvalidArgument("migration: duplicate order %d", m.Order())
		}
		seen[m.Order()] = struct{}{}
	}

	sorted := append([]Migration(nil), migrations...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Order() < sorted[j].Order() })

	return &Migrator{migrations: sorted, tracker: tracker}, nil
}

// Up applies every not-yet-applied migration in ascending order, or, if
// number is given, only the single migration whose Order equals it.
// Passing more than one number is a programming error.
func (m *Migrator) Up(ctx context.Context, number ...int) error {
	if len(number) > 1 {
		return abac.NewInvalidArgument("migration: Up accepts at most one target order")
	}

	current, err := m.tracker.LastApplied(ctx)
	if err != nil {
		return err
	}

	for _, mig := range m.migrations {
		if mig.Order() <= current {
			continue
		}
		if len(number) == 1 && mig.Order() != number[0] {
			continue
		}
		if err := mig.Up(ctx); err != nil {
			return err
		}
		if err := m.tracker.SetLastApplied(ctx, mig.Order()); err != nil {
			return err
		}
		current = mig.Order()
	}
	return nil
}

// Down reverses applied migrations in descending order, stopping before
// order 0, or, if number is given, reverses only the single migration
// whose Order equals it.
func (m *Migrator) Down(ctx context.Context, number ...int) error {
	if len(number) > 1 {
		return abac.NewInvalidArgument("migration: Down accepts at most one target order")
	}

	current, err := m.tracker.LastApplied(ctx)
	if err != nil {
		return err
	}

	for i := len(m.migrations) - 1; i >= 0; i-- {
		mig := m.migrations[i]
		if mig.Order() > current {
			continue
		}
		if len(number) == 1 && mig.Order() != number[0] {
			continue
		}
		if err := mig.Down(ctx); err != nil {
			return err
		}
		prior := 0
		if i > 0 {
			prior = m.migrations[i-1].Order()
		}
		if err := m.tracker.SetLastApplied(ctx, prior); err != nil {
			return err
		}
		current = prior
	}
	return nil
}
