package schedule

import "time"

// =============================================================================
// HOLIDAY TABLE - Fixed per-year public holiday calendar
// =============================================================================

// HolidayTable maps dates to holiday labels. It is built once per year
// version and never mutated; there is deliberately no write API.
//
// Holiday-ness is independent of weekday eligibility: a holiday falling on
// a weekend is still a holiday. Both predicates must admit a date before it
// counts as a work date.
type HolidayTable struct {
	labels map[Date]string
}

// NewHolidayTable builds a table from date->label pairs.
func NewHolidayTable(labels map[Date]string) HolidayTable {
	copied := make(map[Date]string, len(labels))
	for d, l := range labels {
		copied[d] = l
	}
	return HolidayTable{labels: copied}
}

// IsHoliday reports whether the date is a public holiday.
func (h HolidayTable) IsHoliday(d Date) bool {
	_, ok := h.labels[d]
	return ok
}

// Label returns the holiday label for the date, if any.
func (h HolidayTable) Label(d Date) (string, bool) {
	l, ok := h.labels[d]
	return l, ok
}

// Len returns the number of holidays in the table.
func (h HolidayTable) Len() int { return len(h.labels) }

// Dates returns all holiday dates in no particular order.
func (h HolidayTable) Dates() []Date {
	dates := make([]Date, 0, len(h.labels))
	for d := range h.labels {
		dates = append(dates, d)
	}
	return dates
}

// Holidays2026 returns the fixed Korean public holiday calendar for the
// 2026 academic year. Compiled in, not read from the store.
func Holidays2026() HolidayTable {
	return NewHolidayTable(map[Date]string{
		NewDate(2026, time.March, 1):      "Independence Movement Day",
		NewDate(2026, time.March, 2):      "Independence Movement Day (substitute)",
		NewDate(2026, time.May, 5):        "Children's Day",
		NewDate(2026, time.May, 24):       "Buddha's Birthday",
		NewDate(2026, time.May, 25):       "Buddha's Birthday (substitute)",
		NewDate(2026, time.June, 6):       "Memorial Day",
		NewDate(2026, time.August, 15):    "Liberation Day",
		NewDate(2026, time.August, 17):    "Liberation Day (substitute)",
		NewDate(2026, time.September, 24): "Chuseok",
		NewDate(2026, time.September, 25): "Chuseok",
		NewDate(2026, time.September, 26): "Chuseok",
		NewDate(2026, time.September, 28): "Chuseok (substitute)",
		NewDate(2026, time.October, 3):    "National Foundation Day",
		NewDate(2026, time.October, 9):    "Hangeul Day",
		NewDate(2026, time.December, 25):  "Christmas Day",
	})
}
