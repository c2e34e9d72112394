package schedule

import (
	"time"
)

// =============================================================================
// DATE - Naive calendar date (no timezone, day granularity)
// =============================================================================

// Date is a naive calendar date. The whole system works on calendar days;
// there is no notion of timezone or time-of-day anywhere.
type Date struct {
	Time time.Time
}

// NewDate constructs a date at UTC midnight so Date values are comparable
// and usable as map keys.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO-8601 date string (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// Comparison
func (d Date) Before(other Date) bool        { return d.Time.Before(other.Time) }
func (d Date) After(other Date) bool         { return d.Time.After(other.Time) }
func (d Date) Equal(other Date) bool         { return d.Time.Equal(other.Time) }
func (d Date) BeforeOrEqual(other Date) bool { return d.Before(other) || d.Equal(other) }
func (d Date) AfterOrEqual(other Date) bool  { return d.After(other) || d.Equal(other) }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{Time: d.Time.AddDate(0, 0, n)} }

// Properties
func (d Date) Year() int         { return d.Time.Year() }
func (d Date) Month() time.Month { return d.Time.Month() }
func (d Date) Day() int          { return d.Time.Day() }
func (d Date) IsZero() bool      { return d.Time.IsZero() }

// WeekdayOrdinal returns the weekday as 0=Monday .. 6=Sunday.
// time.Weekday counts from Sunday, so shift by one.
func (d Date) WeekdayOrdinal() int {
	return (int(d.Time.Weekday()) + 6) % 7
}

func (d Date) String() string { return d.Time.Format("2006-01-02") }

// =============================================================================
// PERIOD - Inclusive date range
// =============================================================================

// Period is a closed date range [Start, End].
type Period struct {
	Start Date
	End   Date
}

// Contains returns true if the date is within [Start, End].
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

// Days returns every calendar date from Start to End inclusive, ascending.
// Start > End yields an empty sequence; the generation is pure and
// restartable.
func (p Period) Days() []Date {
	var days []Date
	current := p.Start
	for current.BeforeOrEqual(p.End) {
		days = append(days, current)
		current = current.AddDays(1)
	}
	return days
}

// Months returns the (year, month) pairs touched by the period, ascending.
func (p Period) Months() []YearMonth {
	var months []YearMonth
	if p.Start.After(p.End) {
		return months
	}
	current := YearMonth{Year: p.Start.Year(), Month: p.Start.Month()}
	last := YearMonth{Year: p.End.Year(), Month: p.End.Month()}
	for {
		months = append(months, current)
		if current == last {
			return months
		}
		current = current.Next()
	}
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}

// YearMonth identifies a calendar month for monthly aggregation.
type YearMonth struct {
	Year  int
	Month time.Month
}

func (ym YearMonth) Next() YearMonth {
	if ym.Month == time.December {
		return YearMonth{Year: ym.Year + 1, Month: time.January}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

// DaysInMonth returns the number of calendar days in the month.
func (ym YearMonth) DaysInMonth() int {
	return time.Date(ym.Year, ym.Month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1).Day()
}

// AcademicYear returns the teaching period for a year: March 1 through
// December 31. January and February sit between academic years and are
// excluded entirely.
func AcademicYear(year int) Period {
	return Period{
		Start: NewDate(year, time.March, 1),
		End:   NewDate(year, time.December, 31),
	}
}
