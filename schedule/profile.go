/*
profile.go - Instructor profiles and normalization from external rows

PURPOSE:
  An instructor's recurring weekly pattern: hourly rate plus scheduled
  hours per weekday. Profiles are the normalized form every external
  representation is converted into before resolution, so one engine
  subsumes all the historical row layouts:

    - per-weekday hour columns (mon..fri, optionally sat/sun)
    - a comma-separated weekday-ordinal list plus a flat rate

NORMALIZATION RULES:
  - WeeklyHours always has 7 entries, 0=Monday .. 6=Sunday, zero default.
    A weekday with no entry has zero hours that day, which makes an
    explicit "weekday < 5" guard and the zero-hours gate equivalent.
  - Non-numeric rate/hour cells coerce to zero (fail-soft), mirroring the
    store's tolerance for hand-edited rows.

VALIDATION:
  Negative rates and hours are data-entry errors rejected at the boundary
  (store/API), never inside the engine. See Validate.
*/
package schedule

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// WeekdayNames are the external column names in weekday-ordinal order.
var WeekdayNames = [7]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// =============================================================================
// PROFILE
// =============================================================================

// Profile is an instructor's weekly teaching pattern. Name is the unique
// identity (case-sensitive exact match) and is immutable after creation.
type Profile struct {
	Name       string
	HourlyRate decimal.Decimal

	// WeeklyHours is indexed by weekday ordinal, 0=Monday .. 6=Sunday.
	// Zero hours means the instructor does not teach that day.
	WeeklyHours [7]decimal.Decimal
}

// HoursOn returns the scheduled hours for a date's weekday.
func (p Profile) HoursOn(d Date) decimal.Decimal {
	return p.WeeklyHours[d.WeekdayOrdinal()]
}

// Validate rejects negative rates or hours. The engine itself never sees
// invalid profiles; this runs at the store/API boundary.
func (p Profile) Validate() error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if p.HourlyRate.IsNegative() {
		return ErrInvalidRate
	}
	for _, h := range p.WeeklyHours {
		if h.IsNegative() {
			return ErrInvalidHours
		}
	}
	return nil
}

// =============================================================================
// NORMALIZATION
// =============================================================================

// CoerceNumber parses a numeric cell, coercing blank or malformed values
// to zero. This is the fail-soft rule for hand-edited numeric fields.
func CoerceNumber(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ProfileFromColumns normalizes the per-weekday-columns representation.
// hours is keyed by external column name (mon..sun); missing keys default
// to zero.
func ProfileFromColumns(name, rate string, hours map[string]string) Profile {
	p := Profile{Name: name, HourlyRate: CoerceNumber(rate)}
	for i, col := range WeekdayNames {
		if v, ok := hours[col]; ok {
			p.WeeklyHours[i] = CoerceNumber(v)
		}
	}
	return p
}

// ProfileFromDayList normalizes the days-list representation: a
// comma-separated list of weekday ordinals plus a flat per-session rate.
// Each listed weekday counts as one scheduled hour; unparsable or
// out-of-range ordinals are skipped.
func ProfileFromDayList(name, rate, days string) Profile {
	p := Profile{Name: name, HourlyRate: CoerceNumber(rate)}
	one := decimal.NewFromInt(1)
	for _, part := range strings.Split(days, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ord, err := strconv.Atoi(part)
		if err != nil || ord < 0 || ord > 6 {
			continue
		}
		p.WeeklyHours[ord] = one
	}
	return p
}
