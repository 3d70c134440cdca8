// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package policy

import "github.com/google/uuid"

// NewUID generates an opaque identifier suitable for Policy.UID.
func NewUID() string {
	return uuid.NewString()
}
