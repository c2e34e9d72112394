/*
session.go - Application state and persistence timing

PURPOSE:
  One Session owns the in-memory snapshots of the Instructors and
  Exclusions tables plus the timing of reads and writes. The engine's
  pure functions never touch this state directly; the session borrows
  immutable snapshots for each computation and persists only on explicit
  save operations (write-through on every edit action).

DEGRADATION:
  A failed store read degrades to an empty table and records a warning so
  the rest of the session stays usable. Store failures never propagate
  into the resolution engine.

CONCURRENCY:
  Requests against one session are serialized with a mutex. Concurrent
  sessions against the same store are detected through table version
  stamps: a stale full-table write fails with ErrVersionConflict instead
  of silently discarding the other writer's edit.
*/
package roster

import (
	"context"
	"fmt"
	"sync"

	"github.com/hagwonlabs/roster-engine/schedule"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Session holds the editable application state for one user session.
type Session struct {
	store    TableStore
	log      *zap.Logger
	holidays schedule.HolidayTable
	period   schedule.Period

	mu          sync.RWMutex
	instructors []InstructorRow
	exclusions  []ExclusionRow
	insVersion  int64
	exclVersion int64
	warnings    []string
}

// NewSession creates a session over the given store. Call Load before
// serving queries.
func NewSession(store TableStore, log *zap.Logger, holidays schedule.HolidayTable, period schedule.Period) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		store:    store,
		log:      log,
		holidays: holidays,
		period:   period,
	}
}

// =============================================================================
// LOADING AND DEGRADATION
// =============================================================================

// Load reads both collections. A failed read degrades to an empty table
// with a recorded warning; Load itself never fails.
func (s *Session) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnings = nil

	rows, version, err := s.store.ReadInstructors(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %v", schedule.ErrStoreUnavailable, err)
		s.log.Warn("instructors table unavailable, starting empty", zap.Error(err))
		s.warnings = append(s.warnings, fmt.Sprintf("instructor data could not be loaded (%v); starting with an empty table", err))
		rows, version = nil, 0
	}
	s.instructors, s.insVersion = rows, version

	excl, version, err := s.store.ReadExclusions(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %v", schedule.ErrStoreUnavailable, err)
		s.log.Warn("exclusions table unavailable, starting empty", zap.Error(err))
		s.warnings = append(s.warnings, fmt.Sprintf("exclusion data could not be loaded (%v); starting with an empty table", err))
		excl, version = nil, 0
	}
	s.exclusions, s.exclVersion = excl, version
}

// Warnings returns the degradation warnings from the last Load.
func (s *Session) Warnings() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.warnings...)
}

// Holidays returns the fixed holiday table for the active year.
func (s *Session) Holidays() schedule.HolidayTable { return s.holidays }

// Period returns the active academic year range.
func (s *Session) Period() schedule.Period { return s.period }

// =============================================================================
// INSTRUCTOR PROFILES
// =============================================================================

// Profiles returns the normalized profiles in table order, one per name.
// When the shared store holds duplicate names, the last row wins.
func (s *Session) Profiles() []schedule.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profilesLocked()
}

func (s *Session) profilesLocked() []schedule.Profile {
	index := make(map[string]int)
	var profiles []schedule.Profile
	for _, row := range s.instructors {
		p := row.Profile()
		if i, ok := index[p.Name]; ok {
			profiles[i] = p
			continue
		}
		index[p.Name] = len(profiles)
		profiles = append(profiles, p)
	}
	return profiles
}

// Profile returns the named instructor's normalized profile.
func (s *Session) Profile(name string) (schedule.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.profilesLocked() {
		if p.Name == name {
			return p, nil
		}
	}
	return schedule.Profile{}, &schedule.NotFoundError{Name: name}
}

// UpsertProfile registers a new instructor or atomically replaces an
// existing one by name, then persists the whole table. Name is immutable:
// an edit under a different name is a new registration.
func (s *Session) UpsertProfile(ctx context.Context, p schedule.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row := RowFromProfile(p)
	replaced := false
	rows := make([]InstructorRow, 0, len(s.instructors)+1)
	for _, existing := range s.instructors {
		if existing.Name == p.Name {
			if !replaced {
				rows = append(rows, row)
				replaced = true
			}
			continue // drop duplicates of the same name
		}
		rows = append(rows, existing)
	}
	if !replaced {
		rows = append(rows, row)
	}
	return s.saveInstructorsLocked(ctx, rows)
}

// DeleteProfile removes the named instructor and persists the table.
func (s *Session) DeleteProfile(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]InstructorRow, 0, len(s.instructors))
	found := false
	for _, existing := range s.instructors {
		if existing.Name == name {
			found = true
			continue
		}
		rows = append(rows, existing)
	}
	if !found {
		return &schedule.NotFoundError{Name: name}
	}
	return s.saveInstructorsLocked(ctx, rows)
}

func (s *Session) saveInstructorsLocked(ctx context.Context, rows []InstructorRow) error {
	version, err := s.store.WriteInstructors(ctx, rows, s.insVersion)
	if err != nil {
		return fmt.Errorf("save instructors: %w", err)
	}
	s.instructors, s.insVersion = rows, version
	s.log.Info("instructors saved", zap.Int("rows", len(rows)), zap.Int64("version", version))
	return nil
}

// =============================================================================
// EXCLUSIONS
// =============================================================================

// ExclusionRows returns the current exclusion table snapshot.
func (s *Session) ExclusionRows() []ExclusionRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ExclusionRow(nil), s.exclusions...)
}

// AddExclusion appends one row and persists the table. The row is kept
// even when malformed; the resolver skips it at computation time, exactly
// as a hand-edited spreadsheet row would behave.
func (s *Session) AddExclusion(ctx context.Context, row ExclusionRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveExclusionsLocked(ctx, append(append([]ExclusionRow(nil), s.exclusions...), row))
}

// ReplaceExclusions installs a wholesale edit of the table (rows added,
// edited or removed arbitrarily) and persists it.
func (s *Session) ReplaceExclusions(ctx context.Context, rows []ExclusionRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveExclusionsLocked(ctx, append([]ExclusionRow(nil), rows...))
}

func (s *Session) saveExclusionsLocked(ctx context.Context, rows []ExclusionRow) error {
	version, err := s.store.WriteExclusions(ctx, rows, s.exclVersion)
	if err != nil {
		return fmt.Errorf("save exclusions: %w", err)
	}
	s.exclusions, s.exclVersion = rows, version
	s.log.Info("exclusions saved", zap.Int("rows", len(rows)), zap.Int64("version", version))
	return nil
}

func (s *Session) exclusionSetLocked() schedule.ExclusionSet {
	return schedule.ResolveExclusions(Intervals(s.exclusions))
}

// =============================================================================
// QUERIES
// =============================================================================

// Schedule resolves the named instructor against the current snapshots
// and lays out the calendar grids for rendering.
func (s *Session) Schedule(name string) (schedule.Result, []schedule.MonthGrid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var profile schedule.Profile
	found := false
	for _, p := range s.profilesLocked() {
		if p.Name == name {
			profile, found = p, true
		}
	}
	if !found {
		return schedule.Result{}, nil, &schedule.NotFoundError{Name: name}
	}

	excl := s.exclusionSetLocked()
	result := schedule.Resolve(profile, s.holidays, excl, s.period)
	grids := schedule.BuildGrid(result, s.holidays, excl)
	return result, grids, nil
}

// Budget aggregates projected pay across all instructors against the
// declared budget for this viewing session.
func (s *Session) Budget(declared decimal.Decimal) schedule.BudgetReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return schedule.AggregateBudget(s.profilesLocked(), s.holidays, s.exclusionSetLocked(), s.period, declared)
}
