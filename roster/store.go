/*
store.go - Persistence interface for the two tabular collections

PURPOSE:
  Defines the boundary to the external tabular store. The store exposes
  exactly two collections - Instructors and Exclusions - read and written
  as whole-table snapshots, the access pattern of a shared spreadsheet.

WRITE SEMANTICS:
  Writes replace the entire table. Concurrent sessions against the same
  store would otherwise silently lose each other's edits (last-write-wins
  at table granularity), so every table carries a version stamp: reads
  return the current version, writes pass the version they loaded and
  fail with a VersionConflictError when the table moved underneath them.

FAILURE SEMANTICS:
  Read failures never reach the engine. The session converts them into
  empty tables plus a user-visible warning (see session.go).

IMPLEMENTATIONS:
  - store/sqlite:     production store
  - roster/store:     in-memory store for tests/dev
*/
package roster

import "context"

// TableStore persists the two collections as whole-table snapshots.
type TableStore interface {
	// ReadInstructors returns all instructor rows and the table version.
	ReadInstructors(ctx context.Context) ([]InstructorRow, int64, error)

	// WriteInstructors replaces the table. baseVersion must match the
	// stored version; the new version is returned.
	WriteInstructors(ctx context.Context, rows []InstructorRow, baseVersion int64) (int64, error)

	// ReadExclusions returns all exclusion rows and the table version.
	ReadExclusions(ctx context.Context) ([]ExclusionRow, int64, error)

	// WriteExclusions replaces the table, version-checked like
	// WriteInstructors.
	WriteExclusions(ctx context.Context, rows []ExclusionRow, baseVersion int64) (int64, error)
}
