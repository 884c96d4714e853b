// Package store holds the sentinel errors shared by the user and license
// store implementations.
//
// Error Contract: all store methods follow this pattern:
//   - Return ErrNotFound when the requested entity does not exist
//   - Return ErrDuplicate when a uniqueness constraint rejects a write
//   - Return wrapped errors with context for infrastructure failures
package store

import (
	dErrors "lawgate/pkg/domain-errors"
)

var (
	// ErrNotFound keeps storage-specific not found errors consistent across
	// user/license implementations.
	ErrNotFound = dErrors.New(dErrors.CodeNotFound, "record not found")

	// ErrDuplicate signals a uniqueness violation, e.g. an already registered
	// email. The backend's constraint is the sole serialization point for
	// concurrent registrations with the same email.
	ErrDuplicate = dErrors.New(dErrors.CodeConflict, "record already exists")
)
