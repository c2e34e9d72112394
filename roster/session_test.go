package roster_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hagwonlabs/roster-engine/roster"
	"github.com/hagwonlabs/roster-engine/roster/store"
	"github.com/hagwonlabs/roster-engine/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestSession(t *testing.T) (*roster.Session, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	session := roster.NewSession(mem, nil, schedule.Holidays2026(), schedule.AcademicYear(2026))
	session.Load(context.Background())
	return session, mem
}

func monWedProfile(name string) schedule.Profile {
	return roster.InstructorRow{Name: name, Rate: "30000", Mon: "2", Wed: "3"}.Profile()
}

// =============================================================================
// PROFILE STORE SEMANTICS
// =============================================================================

func TestSession_UpsertReplacesByName(t *testing.T) {
	session, _ := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, session.UpsertProfile(ctx, monWedProfile("kim")))

	// Re-registering the same name replaces the prior profile atomically.
	edited := roster.InstructorRow{Name: "kim", Rate: "35000", Mon: "1"}.Profile()
	require.NoError(t, session.UpsertProfile(ctx, edited))

	profiles := session.Profiles()
	require.Len(t, profiles, 1)
	assert.Equal(t, "kim", profiles[0].Name)
	assert.True(t, profiles[0].HourlyRate.Equal(decimal.NewFromInt(35000)))
	assert.True(t, profiles[0].WeeklyHours[2].IsZero(), "old wednesday hours must not survive the replace")
}

func TestSession_UpsertRejectsInvalidProfilesAtTheBoundary(t *testing.T) {
	session, mem := newTestSession(t)
	ctx := context.Background()

	bad := roster.InstructorRow{Name: "kim", Rate: "-100", Mon: "2"}.Profile()
	err := session.UpsertProfile(ctx, bad)
	require.ErrorIs(t, err, schedule.ErrInvalidRate)

	rows, _, readErr := mem.ReadInstructors(ctx)
	require.NoError(t, readErr)
	assert.Empty(t, rows, "rejected profile must not be persisted")
}

func TestSession_DeleteProfile(t *testing.T) {
	session, mem := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, session.UpsertProfile(ctx, monWedProfile("kim")))
	require.NoError(t, session.UpsertProfile(ctx, monWedProfile("lee")))

	require.NoError(t, session.DeleteProfile(ctx, "kim"))

	_, err := session.Profile("kim")
	assert.ErrorIs(t, err, schedule.ErrProfileNotFound)

	rows, _, readErr := mem.ReadInstructors(ctx)
	require.NoError(t, readErr)
	require.Len(t, rows, 1)
	assert.Equal(t, "lee", rows[0].Name)

	err = session.DeleteProfile(ctx, "kim")
	assert.ErrorIs(t, err, schedule.ErrProfileNotFound)
}

func TestSession_DuplicateStoreRows_LastOneWins(t *testing.T) {
	// A concurrent writer can leave duplicate names in the shared table.
	// The session normalizes to the last row.
	_, mem := newTestSession(t)
	ctx := context.Background()

	_, err := mem.WriteInstructors(ctx, []roster.InstructorRow{
		{Name: "kim", Rate: "30000", Mon: "2"},
		{Name: "kim", Rate: "40000", Tue: "1"},
	}, 0)
	require.NoError(t, err)

	session := roster.NewSession(mem, nil, schedule.Holidays2026(), schedule.AcademicYear(2026))
	session.Load(ctx)

	profiles := session.Profiles()
	require.Len(t, profiles, 1)
	assert.True(t, profiles[0].HourlyRate.Equal(decimal.NewFromInt(40000)))
}

// =============================================================================
// DEGRADATION AND CONCURRENT WRITERS
// =============================================================================

func TestSession_StoreFailureDegradesToEmpty(t *testing.T) {
	mem := store.NewMemory()
	mem.FailReads(errors.New("worksheet missing"))

	session := roster.NewSession(mem, nil, schedule.Holidays2026(), schedule.AcademicYear(2026))
	session.Load(context.Background())

	assert.Empty(t, session.Profiles())
	assert.Empty(t, session.ExclusionRows())
	warnings := session.Warnings()
	require.Len(t, warnings, 2, "both tables should report a warning")
	for _, w := range warnings {
		assert.Contains(t, w, schedule.ErrStoreUnavailable.Error())
		assert.Contains(t, w, "worksheet missing")
	}

	// The rest of the session stays usable.
	report := session.Budget(decimal.NewFromInt(1000))
	assert.True(t, report.TotalProjectedPay.IsZero())
}

func TestSession_StaleWriteIsDetected(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	first := roster.NewSession(mem, nil, schedule.Holidays2026(), schedule.AcademicYear(2026))
	first.Load(ctx)
	second := roster.NewSession(mem, nil, schedule.Holidays2026(), schedule.AcademicYear(2026))
	second.Load(ctx)

	require.NoError(t, first.UpsertProfile(ctx, monWedProfile("kim")))

	// The second session still holds the pre-save snapshot; its full-table
	// overwrite must not silently discard the first session's edit.
	err := second.UpsertProfile(ctx, monWedProfile("lee"))
	require.ErrorIs(t, err, schedule.ErrVersionConflict)

	// After reloading, the edit goes through.
	second.Load(ctx)
	require.NoError(t, second.UpsertProfile(ctx, monWedProfile("lee")))

	rows, _, readErr := mem.ReadInstructors(ctx)
	require.NoError(t, readErr)
	assert.Len(t, rows, 2)
}

// =============================================================================
// EXCLUSIONS AND QUERIES
// =============================================================================

func TestSession_ExclusionsFlowIntoSchedule(t *testing.T) {
	session, _ := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, session.UpsertProfile(ctx, monWedProfile("kim")))

	before, _, err := session.Schedule("kim")
	require.NoError(t, err)

	require.NoError(t, session.AddExclusion(ctx, roster.ExclusionRow{
		StartDate: "2026-07-20", EndDate: "2026-08-20", Note: "summer break",
	}))

	after, grids, err := session.Schedule("kim")
	require.NoError(t, err)
	assert.Less(t, after.Count, before.Count)
	assert.Len(t, grids, 10, "one grid per academic month")

	window := schedule.Period{
		Start: schedule.NewDate(2026, 7, 20),
		End:   schedule.NewDate(2026, 8, 20),
	}
	for _, d := range after.WorkDates {
		assert.False(t, window.Contains(d), "work date %s inside exclusion window", d)
	}
}

func TestSession_BulkReplaceKeepsMalformedRowsButSkipsThem(t *testing.T) {
	session, _ := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, session.UpsertProfile(ctx, monWedProfile("kim")))
	require.NoError(t, session.ReplaceExclusions(ctx, []roster.ExclusionRow{
		{StartDate: "2026-04-06", EndDate: "2026-04-06", Note: "closure"},
		{StartDate: "garbage", EndDate: "2026-04-07", Note: "broken"},
		{Date: "2026-04-08", Kind: "exam"},
	}))

	// All three rows persist; only the two well-formed ones resolve.
	assert.Len(t, session.ExclusionRows(), 3)

	result, _, err := session.Schedule("kim")
	require.NoError(t, err)
	for _, d := range result.WorkDates {
		assert.False(t, d.Equal(schedule.NewDate(2026, 4, 6)), "closure day must be excluded")
		assert.False(t, d.Equal(schedule.NewDate(2026, 4, 8)), "exam day must be excluded")
	}
}

func TestSession_ScheduleUnknownInstructor(t *testing.T) {
	session, _ := newTestSession(t)
	_, _, err := session.Schedule("nobody")
	assert.ErrorIs(t, err, schedule.ErrProfileNotFound)
}

func TestSession_BudgetAcrossInstructors(t *testing.T) {
	session, _ := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, session.UpsertProfile(ctx, monWedProfile("kim")))
	require.NoError(t, session.UpsertProfile(ctx, monWedProfile("lee")))

	report := session.Budget(decimal.NewFromInt(100000000))

	require.Len(t, report.PerInstructor, 2)
	assert.True(t, report.TotalProjectedPay.Equal(report.PerInstructor[0].Pay.Add(report.PerInstructor[1].Pay)))
	assert.True(t, report.Balance.Equal(decimal.NewFromInt(100000000).Sub(report.TotalProjectedPay)))
}
