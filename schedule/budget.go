package schedule

import "github.com/shopspring/decimal"

// =============================================================================
// BUDGET AGGREGATOR - Cross-instructor pay projection
// =============================================================================

// InstructorPay is one instructor's projected annual pay.
type InstructorPay struct {
	Name  string
	Hours decimal.Decimal
	Pay   decimal.Decimal
}

// BudgetReport compares projected pay across all instructors against a
// declared budget. A negative balance is an overrun: a reportable
// business condition, never an error.
type BudgetReport struct {
	DeclaredBudget    decimal.Decimal
	TotalProjectedPay decimal.Decimal
	Balance           decimal.Decimal
	PerInstructor     []InstructorPay
}

// Overrun reports whether projected pay exceeds the declared budget.
func (r BudgetReport) Overrun() bool { return r.Balance.IsNegative() }

// AggregateBudget resolves every profile independently and sums the
// projected pay. The per-profile resolutions share no mutable state, so
// the order is irrelevant; profiles are processed in the given order to
// keep the report stable.
func AggregateBudget(profiles []Profile, holidays HolidayTable, excl ExclusionSet, period Period, declared decimal.Decimal) BudgetReport {
	report := BudgetReport{
		DeclaredBudget:    declared,
		TotalProjectedPay: decimal.Zero,
		PerInstructor:     make([]InstructorPay, 0, len(profiles)),
	}
	for _, p := range profiles {
		res := Resolve(p, holidays, excl, period)
		report.PerInstructor = append(report.PerInstructor, InstructorPay{
			Name:  p.Name,
			Hours: res.TotalHours,
			Pay:   res.TotalPay,
		})
		report.TotalProjectedPay = report.TotalProjectedPay.Add(res.TotalPay)
	}
	report.Balance = declared.Sub(report.TotalProjectedPay)
	return report
}
