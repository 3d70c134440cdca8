// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package storage

import (
	"context"
	"sync"

	"github.com/latticeauth/abac"
	"github.com/latticeauth/abac/checker"
	"github.com/latticeauth/abac/migration"
	"github.com/latticeauth/abac/policy"
)

// MemoryStorage is the reference in-memory Storage implementation. It
// serializes mutating operations against readers with a single
// read-write lock and returns every policy as a conservative candidate
// set, per spec §4.5.
type MemoryStorage struct {
	mu     sync.RWMutex
	byUID  map[string]*policy.Policy
	order  []string
	lastAt int
}

var _ migration.VersionTracker = (*MemoryStorage)(nil)

// NewMemoryStorage builds an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{byUID: make(map[string]*policy.Policy)}
}

// Add implements Storage.
func (s *MemoryStorage) Add(_ context.Context, p *policy.Policy) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUID[p.UID]; exists {
		return abac.NewExists(p.UID)
	}
	s.byUID[p.UID] = p
	s.order = append(s.order, p.UID)
	return nil
}

// Get implements Storage.
func (s *MemoryStorage) Get(_ context.Context, uid string) (*policy.Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byUID[uid]
	if !ok {
		return nil, abac.NewNotFound(uid)
	}
	return p, nil
}

// GetAll implements Storage. A limit of 0 returns an empty page, matching
// the literal reading of "return up to limit items".
func (s *MemoryStorage) GetAll(_ context.Context, limit, offset int) ([]*policy.Policy, error) {
	if limit < 0 || offset < 0 {
		return nil, abac.NewInvalidArgument("storage: limit and offset must be >= 0")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset >= len(s.order) || limit == 0 {
		return []*policy.Policy{}, nil
	}

	end := offset + limit
	if end > len(s.order) {
		end = len(s.order)
	}

	page := make([]*policy.Policy, 0, end-offset)
	for _, uid := range s.order[offset:end] {
		page = append(page, s.byUID[uid])
	}
	return page, nil
}

// Update implements Storage. A missing uid is reported as abac.IsNotFound.
func (s *MemoryStorage) Update(_ context.Context, p *policy.Policy) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUID[p.UID]; !exists {
		return abac.NewNotFound(p.UID)
	}
	s.byUID[p.UID] = p
	return nil
}

// Delete implements Storage. A missing uid is a no-op.
func (s *MemoryStorage) Delete(_ context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUID[uid]; !exists {
		return nil
	}
	delete(s.byUID, uid)
	for i, u := range s.order {
		if u == uid {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// FindForInquiry implements Storage. The in-memory reference is
// deliberately conservative: it returns every policy regardless of inq
// or c, satisfying the storage-conservatism property (spec §8 property
// 6) trivially.
func (s *MemoryStorage) FindForInquiry(_ context.Context, _ *abac.Inquiry, _ checker.Checker) ([]*policy.Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*policy.Policy, 0, len(s.order))
	for _, uid := range s.order {
		all = append(all, s.byUID[uid])
	}
	return all, nil
}

// LastApplied implements migration.VersionTracker, letting MemoryStorage
// double as the version store for migrations exercised against it in
// tests.
func (s *MemoryStorage) LastApplied(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastAt, nil
}

// SetLastApplied implements migration.VersionTracker.
func (s *MemoryStorage) SetLastApplied(_ context.Context, order int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAt = order
	return nil
}
