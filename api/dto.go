/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for API communication, decoupled from the internal
  domain model. Pay figures cross this boundary as integers: truncation
  to a whole currency unit happens here and only here, after all
  accumulation is done in full precision.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

VALIDATION:
  Request structs carry go-playground/validator tags; handlers run the
  validator before touching the session. Negative rates/hours die here.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"sort"

	"github.com/hagwonlabs/roster-engine/roster"
	"github.com/hagwonlabs/roster-engine/schedule"
)

// =============================================================================
// INSTRUCTORS
// =============================================================================

// InstructorDTO represents an instructor in API responses.
type InstructorDTO struct {
	Name  string             `json:"name"`
	Rate  float64            `json:"rate"`
	Hours map[string]float64 `json:"hours"`
}

// UpsertInstructorRequest registers or edits an instructor. Hours is keyed
// by weekday column name (mon..sun); missing weekdays default to zero.
type UpsertInstructorRequest struct {
	Name  string             `json:"name" validate:"required"`
	Rate  float64            `json:"rate" validate:"gte=0"`
	Hours map[string]float64 `json:"hours" validate:"dive,gte=0"`
}

func toInstructorDTO(p schedule.Profile) InstructorDTO {
	dto := InstructorDTO{
		Name:  p.Name,
		Rate:  p.HourlyRate.InexactFloat64(),
		Hours: make(map[string]float64, 7),
	}
	for i, col := range schedule.WeekdayNames {
		if !p.WeeklyHours[i].IsZero() {
			dto.Hours[col] = p.WeeklyHours[i].InexactFloat64()
		}
	}
	return dto
}

// =============================================================================
// EXCLUSIONS
// =============================================================================

// ExclusionDTO mirrors one raw row of the Exclusions table, legacy columns
// included. Rows round-trip unchanged through bulk edits.
type ExclusionDTO struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Note      string `json:"note,omitempty"`
	Date      string `json:"date,omitempty"`
	Kind      string `json:"kind,omitempty"`
}

// AddExclusionRequest appends one exclusion interval.
type AddExclusionRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Note      string `json:"note"`
}

// ReplaceExclusionsRequest installs a wholesale edit of the table.
type ReplaceExclusionsRequest struct {
	Rows []ExclusionDTO `json:"rows"`
}

func toExclusionDTO(r roster.ExclusionRow) ExclusionDTO {
	return ExclusionDTO{StartDate: r.StartDate, EndDate: r.EndDate, Note: r.Note, Date: r.Date, Kind: r.Kind}
}

func fromExclusionDTO(d ExclusionDTO) roster.ExclusionRow {
	return roster.ExclusionRow{StartDate: d.StartDate, EndDate: d.EndDate, Note: d.Note, Date: d.Date, Kind: d.Kind}
}

// =============================================================================
// SCHEDULE VIEW
// =============================================================================

// MonthSummaryDTO is one month's aggregates. Pay is display-truncated.
type MonthSummaryDTO struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Count int     `json:"count"`
	Hours float64 `json:"hours"`
	Pay   int64   `json:"pay"`
}

// CellDTO is one day square of the month grid.
type CellDTO struct {
	Day           int    `json:"day,omitempty"`
	State         string `json:"state"`
	Label         string `json:"label,omitempty"`
	HolidayLabel  string `json:"holiday_label,omitempty"`
	ExclusionNote string `json:"exclusion_note,omitempty"`
}

// MonthGridDTO is a month laid out in Monday-first weeks.
type MonthGridDTO struct {
	Year  int          `json:"year"`
	Month int          `json:"month"`
	Weeks [][7]CellDTO `json:"weeks"`
}

// ScheduleResponse is the per-instructor calendar/metrics view.
type ScheduleResponse struct {
	Name        string            `json:"name"`
	PeriodStart string            `json:"period_start"`
	PeriodEnd   string            `json:"period_end"`
	WorkDates   []string          `json:"work_dates"`
	Count       int               `json:"count"`
	TotalHours  float64           `json:"total_hours"`
	TotalPay    int64             `json:"total_pay"`
	Monthly     []MonthSummaryDTO `json:"monthly"`
	Grids       []MonthGridDTO    `json:"grids"`
}

func toScheduleResponse(result schedule.Result, grids []schedule.MonthGrid) ScheduleResponse {
	resp := ScheduleResponse{
		Name:        result.Profile.Name,
		PeriodStart: result.Period.Start.String(),
		PeriodEnd:   result.Period.End.String(),
		WorkDates:   make([]string, 0, len(result.WorkDates)),
		Count:       result.Count,
		TotalHours:  result.TotalHours.InexactFloat64(),
		TotalPay:    schedule.DisplayWon(result.TotalPay),
		Monthly:     make([]MonthSummaryDTO, 0, len(result.Monthly)),
		Grids:       make([]MonthGridDTO, 0, len(grids)),
	}
	for _, d := range result.WorkDates {
		resp.WorkDates = append(resp.WorkDates, d.String())
	}
	for _, m := range result.Monthly {
		resp.Monthly = append(resp.Monthly, MonthSummaryDTO{
			Year:  m.Year,
			Month: int(m.Month),
			Count: m.Count,
			Hours: m.Hours.InexactFloat64(),
			Pay:   schedule.DisplayWon(m.Pay),
		})
	}
	for _, g := range grids {
		dto := MonthGridDTO{Year: g.Year, Month: int(g.Month)}
		for _, week := range g.Weeks {
			var row [7]CellDTO
			for i, c := range week {
				row[i] = CellDTO{
					Day:           c.Day,
					State:         string(c.State),
					Label:         c.Label,
					HolidayLabel:  c.HolidayLabel,
					ExclusionNote: c.ExclusionNote,
				}
			}
			dto.Weeks = append(dto.Weeks, row)
		}
		resp.Grids = append(resp.Grids, dto)
	}
	return resp
}

// =============================================================================
// BUDGET VIEW
// =============================================================================

// InstructorPayDTO is one instructor's projected annual pay.
type InstructorPayDTO struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
	Pay   int64   `json:"pay"`
}

// BudgetResponse is the cross-instructor budget view.
type BudgetResponse struct {
	DeclaredBudget    int64              `json:"declared_budget"`
	TotalProjectedPay int64              `json:"total_projected_pay"`
	Balance           int64              `json:"balance"`
	Overrun           bool               `json:"overrun"`
	PerInstructor     []InstructorPayDTO `json:"per_instructor"`
}

func toBudgetResponse(report schedule.BudgetReport) BudgetResponse {
	resp := BudgetResponse{
		DeclaredBudget:    schedule.DisplayWon(report.DeclaredBudget),
		TotalProjectedPay: schedule.DisplayWon(report.TotalProjectedPay),
		Balance:           schedule.DisplayWon(report.Balance),
		Overrun:           report.Overrun(),
		PerInstructor:     make([]InstructorPayDTO, 0, len(report.PerInstructor)),
	}
	for _, p := range report.PerInstructor {
		resp.PerInstructor = append(resp.PerInstructor, InstructorPayDTO{
			Name:  p.Name,
			Hours: p.Hours.InexactFloat64(),
			Pay:   schedule.DisplayWon(p.Pay),
		})
	}
	return resp
}

// =============================================================================
// HOLIDAYS AND ENVELOPES
// =============================================================================

// HolidayDTO is one fixed holiday.
type HolidayDTO struct {
	Date  string `json:"date"`
	Label string `json:"label"`
}

func toHolidayDTOs(table schedule.HolidayTable) []HolidayDTO {
	dates := table.Dates()
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	dtos := make([]HolidayDTO, 0, table.Len())
	for _, d := range dates {
		label, _ := table.Label(d)
		dtos = append(dtos, HolidayDTO{Date: d.String(), Label: label})
	}
	return dtos
}

// ListResponse wraps collection responses with the session's degradation
// warnings so a store outage shows up without failing the request.
type ListResponse struct {
	Items    any      `json:"items"`
	Warnings []string `json:"warnings,omitempty"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
