/*
rows.go - Raw table rows as the external store holds them

PURPOSE:
  The persistence layer is a spreadsheet-shaped tabular store: every cell
  is effectively text that humans may have edited by hand. These row types
  carry that raw representation; normalization into the engine's typed
  model happens here, at the boundary, so the engine never sees a
  malformed cell.

SUPPORTED LAYOUTS:
  Instructors: name + rate + per-weekday hour columns (mon..sun), or the
  legacy days-list layout (comma-separated weekday ordinals + flat rate).

  Exclusions: start_date/end_date/note ranges, or the legacy single `date`
  column with a `type` tag, normalized to a one-day interval.
*/
package roster

import (
	"github.com/hagwonlabs/roster-engine/schedule"
)

// =============================================================================
// INSTRUCTOR ROWS
// =============================================================================

// InstructorRow is one row of the Instructors table, untyped as stored.
type InstructorRow struct {
	Name string
	Rate string
	Mon  string
	Tue  string
	Wed  string
	Thu  string
	Fri  string
	Sat  string
	Sun  string

	// Days is the legacy representation: comma-separated weekday ordinals
	// with Rate as a flat per-session rate. When present it wins over the
	// hour columns.
	Days string
}

// Profile normalizes the row into the engine's model. Non-numeric cells
// coerce to zero; both layouts land on the same weekday->hours mapping.
func (r InstructorRow) Profile() schedule.Profile {
	if r.Days != "" {
		return schedule.ProfileFromDayList(r.Name, r.Rate, r.Days)
	}
	return schedule.ProfileFromColumns(r.Name, r.Rate, map[string]string{
		"mon": r.Mon, "tue": r.Tue, "wed": r.Wed, "thu": r.Thu,
		"fri": r.Fri, "sat": r.Sat, "sun": r.Sun,
	})
}

// RowFromProfile converts a validated profile back into the canonical
// per-weekday-columns layout for persistence.
func RowFromProfile(p schedule.Profile) InstructorRow {
	return InstructorRow{
		Name: p.Name,
		Rate: p.HourlyRate.String(),
		Mon:  p.WeeklyHours[0].String(),
		Tue:  p.WeeklyHours[1].String(),
		Wed:  p.WeeklyHours[2].String(),
		Thu:  p.WeeklyHours[3].String(),
		Fri:  p.WeeklyHours[4].String(),
		Sat:  p.WeeklyHours[5].String(),
		Sun:  p.WeeklyHours[6].String(),
	}
}

// =============================================================================
// EXCLUSION ROWS
// =============================================================================

// ExclusionRow is one row of the Exclusions table.
type ExclusionRow struct {
	StartDate string
	EndDate   string
	Note      string

	// Date/Kind is the legacy single-date layout. When Date is present the
	// row normalizes to a one-day interval tagged with Kind.
	Date string
	Kind string
}

// Interval normalizes the row. ok=false marks a malformed row to be
// skipped; the caller never aborts the batch over one bad record.
func (r ExclusionRow) Interval() (schedule.Interval, bool) {
	if r.Date != "" {
		return schedule.SingleDayInterval(r.Date, r.Kind)
	}
	return schedule.ParseInterval(r.StartDate, r.EndDate, r.Note)
}

// Intervals normalizes a batch of rows, silently dropping malformed ones.
func Intervals(rows []ExclusionRow) []schedule.Interval {
	intervals := make([]schedule.Interval, 0, len(rows))
	for _, r := range rows {
		if iv, ok := r.Interval(); ok {
			intervals = append(intervals, iv)
		}
	}
	return intervals
}
