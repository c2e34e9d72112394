/*
exclusion.go - Exclusion intervals and the resolver that expands them

PURPOSE:
  Administrators declare closed date ranges during which no teaching
  happens (vacations, facility closures). The resolver expands the
  declared intervals into a per-date lookup that the resolution engine
  consults alongside the holiday table.

KEY BEHAVIORS:
  - Intervals are processed in insertion order; when two intervals cover
    the same date, the later interval's note overwrites the earlier one
    (last-write-wins, no merge).
  - Malformed records (unparsable date, missing endpoint) are skipped
    without aborting the rest of the batch. The resolver never fails.
  - Overlapping and duplicate intervals are legal.

COMPLEXITY:
  O(total excluded days across all intervals). Exclusions are bounded by
  a single academic year, so the day-by-day walk is fine.

SEE ALSO:
  - holiday.go: The other source of excluded dates
  - engine.go: Consumes the resolved set
*/
package schedule

// =============================================================================
// EXCLUSION INTERVAL
// =============================================================================

// Interval is a closed date range [Start, End] with a free-text note shown
// to the end user.
type Interval struct {
	Start Date
	End   Date
	Note  string
}

// ParseInterval builds an interval from raw ISO-8601 strings. It is the
// fail-soft boundary for exclusion records: any malformed or missing
// endpoint yields ok=false and the record should be skipped.
func ParseInterval(start, end, note string) (Interval, bool) {
	if start == "" || end == "" {
		return Interval{}, false
	}
	s, err := ParseDate(start)
	if err != nil {
		return Interval{}, false
	}
	e, err := ParseDate(end)
	if err != nil {
		return Interval{}, false
	}
	return Interval{Start: s, End: e, Note: note}, true
}

// SingleDayInterval normalizes the single-date row variant (one `date`
// column plus a `type` tag) into a one-day interval.
func SingleDayInterval(date, kind string) (Interval, bool) {
	return ParseInterval(date, date, kind)
}

// =============================================================================
// EXCLUSION SET - Resolved date -> note mapping
// =============================================================================

// ExclusionSet maps each excluded date to the note of the interval that
// last covered it.
type ExclusionSet map[Date]string

// Contains reports whether the date is excluded.
func (s ExclusionSet) Contains(d Date) bool {
	_, ok := s[d]
	return ok
}

// ResolveExclusions expands intervals into a date->note mapping. Intervals
// are walked day-by-day in the given order; a later interval's note
// overwrites an earlier one on overlap. An interval with Start > End
// contributes nothing.
func ResolveExclusions(intervals []Interval) ExclusionSet {
	set := make(ExclusionSet)
	for _, iv := range intervals {
		current := iv.Start
		for current.BeforeOrEqual(iv.End) {
			set[current] = iv.Note
			current = current.AddDays(1)
		}
	}
	return set
}

// =============================================================================
// MERGED CALENDAR - Holiday and exclusion facts side by side
// =============================================================================

// DayStatus carries both exclusion facts for a date. Which label wins for
// display is a rendering decision, so both are exposed rather than merged.
type DayStatus struct {
	IsHoliday     bool
	HolidayLabel  string
	ExclusionNote string
}

// Excluded reports whether the date is blocked for any reason.
func (ds DayStatus) Excluded() bool {
	return ds.IsHoliday || ds.ExclusionNote != ""
}

// DisplayLabel picks the holiday label when present, falling back to the
// exclusion note. Callers that want the opposite precedence read the
// fields directly.
func (ds DayStatus) DisplayLabel() string {
	if ds.IsHoliday {
		return ds.HolidayLabel
	}
	return ds.ExclusionNote
}

// Status returns the combined holiday/exclusion facts for a date.
func Status(d Date, holidays HolidayTable, excl ExclusionSet) DayStatus {
	var ds DayStatus
	if label, ok := holidays.Label(d); ok {
		ds.IsHoliday = true
		ds.HolidayLabel = label
	}
	ds.ExclusionNote = excl[d]
	return ds
}
