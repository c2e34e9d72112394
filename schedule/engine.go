/*
engine.go - Schedule resolution: the central pure computation

PURPOSE:
  Maps (instructor profile, holiday table, resolved exclusions, period)
  to the realized work-date sequence and the derived hour/pay aggregates.
  Every other component exists to feed this function or consume its
  output.

ADMISSION GATE:
  A date is a work date iff ALL of:
    1. the profile schedules positive hours on that weekday
    2. the date is not a public holiday
    3. the date is not in the resolved exclusion set
  The gate is a single boolean; a date can never be double counted and a
  zero-hour day is never a work date even when nothing excludes it.

PRECISION:
  Hours and pay accumulate in full decimal precision. Monthly aggregates
  are computed from the same admissions, so they sum exactly to the
  annual totals. Integer truncation happens only at the display boundary
  (DisplayWon), never during accumulation.

PURITY:
  Resolve is referentially transparent: no hidden state, identical inputs
  yield identical outputs. Callers recompute on every view refresh instead
  of caching.

SEE ALSO:
  - exclusion.go: Resolved exclusion set
  - budget.go: Cross-instructor aggregation
  - grid.go: Calendar cells for the rendering sink
*/
package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// RESULT TYPES
// =============================================================================

// MonthSummary is the per-month slice of a resolution result.
type MonthSummary struct {
	Year  int
	Month time.Month
	Count int
	Hours decimal.Decimal
	Pay   decimal.Decimal
}

// Result is the outcome of resolving one instructor against a period.
type Result struct {
	Profile    Profile
	Period     Period
	WorkDates  []Date
	Count      int
	TotalHours decimal.Decimal
	TotalPay   decimal.Decimal
	Monthly    []MonthSummary
}

// =============================================================================
// RESOLUTION
// =============================================================================

// Resolve computes the realized work dates and aggregates for one
// instructor. It is total: a profile with no teaching days yields an empty
// result, not an error.
func Resolve(profile Profile, holidays HolidayTable, excl ExclusionSet, period Period) Result {
	result := Result{
		Profile:    profile,
		Period:     period,
		TotalHours: decimal.Zero,
		TotalPay:   decimal.Zero,
	}

	// One summary per calendar month in the period, present even when empty
	// so the rendering sink always has a full grid to draw.
	months := period.Months()
	index := make(map[YearMonth]int, len(months))
	result.Monthly = make([]MonthSummary, len(months))
	for i, ym := range months {
		index[ym] = i
		result.Monthly[i] = MonthSummary{
			Year:  ym.Year,
			Month: ym.Month,
			Hours: decimal.Zero,
			Pay:   decimal.Zero,
		}
	}

	for _, d := range period.Days() {
		hours := profile.HoursOn(d)
		if !hours.IsPositive() {
			continue
		}
		if holidays.IsHoliday(d) {
			continue
		}
		if excl.Contains(d) {
			continue
		}

		result.WorkDates = append(result.WorkDates, d)
		result.TotalHours = result.TotalHours.Add(hours)

		i := index[YearMonth{Year: d.Year(), Month: d.Month()}]
		result.Monthly[i].Count++
		result.Monthly[i].Hours = result.Monthly[i].Hours.Add(hours)
	}

	result.Count = len(result.WorkDates)
	result.TotalPay = result.TotalHours.Mul(profile.HourlyRate)
	for i := range result.Monthly {
		result.Monthly[i].Pay = result.Monthly[i].Hours.Mul(profile.HourlyRate)
	}
	return result
}

// DisplayWon truncates a pay amount to a whole currency unit for display.
// Truncation happens here and nowhere else, so monthly figures always sum
// to the annual figure before rounding.
func DisplayWon(pay decimal.Decimal) int64 {
	return pay.IntPart()
}
