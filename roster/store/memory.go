// Package store provides an in-memory TableStore for tests and dev.
package store

import (
	"context"
	"sync"

	"github.com/hagwonlabs/roster-engine/roster"
	"github.com/hagwonlabs/roster-engine/schedule"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu          sync.RWMutex
	instructors []roster.InstructorRow
	exclusions  []roster.ExclusionRow
	insVersion  int64
	exclVersion int64

	// readErr, when set, makes every read fail. Used to exercise the
	// degrade-to-empty path.
	readErr error
}

func NewMemory() *Memory {
	return &Memory{}
}

// FailReads makes subsequent reads return err (nil restores normal reads).
func (m *Memory) FailReads(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

func (m *Memory) ReadInstructors(_ context.Context) ([]roster.InstructorRow, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.readErr != nil {
		return nil, 0, m.readErr
	}
	return append([]roster.InstructorRow(nil), m.instructors...), m.insVersion, nil
}

func (m *Memory) WriteInstructors(_ context.Context, rows []roster.InstructorRow, baseVersion int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if baseVersion != m.insVersion {
		return 0, &schedule.VersionConflictError{Table: "instructors", Base: baseVersion, Current: m.insVersion}
	}
	m.instructors = append([]roster.InstructorRow(nil), rows...)
	m.insVersion++
	return m.insVersion, nil
}

func (m *Memory) ReadExclusions(_ context.Context) ([]roster.ExclusionRow, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.readErr != nil {
		return nil, 0, m.readErr
	}
	return append([]roster.ExclusionRow(nil), m.exclusions...), m.exclVersion, nil
}

func (m *Memory) WriteExclusions(_ context.Context, rows []roster.ExclusionRow, baseVersion int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if baseVersion != m.exclVersion {
		return 0, &schedule.VersionConflictError{Table: "exclusions", Base: baseVersion, Current: m.exclVersion}
	}
	m.exclusions = append([]roster.ExclusionRow(nil), rows...)
	m.exclVersion++
	return m.exclVersion, nil
}
