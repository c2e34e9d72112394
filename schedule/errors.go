/*
errors.go - Centralized error types for the scheduling engine

PURPOSE:
  All sentinel errors in one place. The engine itself is total (given
  well-typed inputs it always produces a result), so these errors belong
  to the boundaries around it: profile validation, the session layer, and
  the table store.

USAGE:
  Callers match with errors.Is:

    if errors.Is(err, schedule.ErrProfileNotFound) { ... }
*/
package schedule

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrEmptyName is returned when a profile has no name. Name is the
	// primary key, so a blank one can never be stored.
	ErrEmptyName = errors.New("instructor name is required")

	// ErrInvalidRate is returned for a negative hourly rate. Rejected at
	// the boundary; the engine never sees it.
	ErrInvalidRate = errors.New("hourly rate must be non-negative")

	// ErrInvalidHours is returned for negative weekday hours.
	ErrInvalidHours = errors.New("weekly hours must be non-negative")

	// ErrProfileNotFound is returned when the named instructor does not
	// exist in the current snapshot.
	ErrProfileNotFound = errors.New("instructor not found")

	// ErrStoreUnavailable wraps store read failures. Callers degrade to an
	// empty table and surface a warning instead of failing the session.
	ErrStoreUnavailable = errors.New("table store unavailable")

	// ErrVersionConflict is returned when a write's base version no longer
	// matches the stored table version: another session saved first.
	ErrVersionConflict = errors.New("table modified by another session")
)

// NotFoundError carries the missing instructor name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("instructor %q not found", e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrProfileNotFound }

// VersionConflictError reports a stale full-table write.
type VersionConflictError struct {
	Table   string
	Base    int64
	Current int64
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("%s table changed since load (base %d, now %d)", e.Table, e.Base, e.Current)
}

func (e *VersionConflictError) Unwrap() error { return ErrVersionConflict }
