/*
grid.go - Calendar cells for the rendering sink

PURPOSE:
  Turns a resolution result into a per-month grid the presentation layer
  can draw directly: one row per week, one cell per weekday, each cell
  carrying its state and the tooltip label for excluded days. The engine
  owns the classification; the renderer only picks colors.

CELL STATES:
  CellBlank    padding before the 1st / after the last day of the month
  CellWork     an admitted work date
  CellExcluded a day blocked by a holiday or exclusion, scheduled or not
  CellOff      a free in-month day the instructor does not teach
*/
package schedule

import "time"

type CellState string

const (
	CellBlank    CellState = "blank"
	CellWork     CellState = "work"
	CellExcluded CellState = "excluded"
	CellOff      CellState = "off"
)

// Cell is one day square in the month grid.
type Cell struct {
	Day   int // 0 for blank padding cells
	State CellState

	// Label is the tooltip for excluded cells. Holiday label and exclusion
	// note are both present when both apply; display precedence belongs to
	// the renderer.
	Label         string
	HolidayLabel  string
	ExclusionNote string
}

// MonthGrid is a calendar month laid out in Monday-first weeks.
type MonthGrid struct {
	Year  int
	Month time.Month
	Weeks [][7]Cell
}

// BuildGrid lays out every month of the result's period. A day is a work
// cell iff it was admitted by the resolution; any blocked day shows as
// excluded with its labels, even on a weekday the instructor never
// teaches.
func BuildGrid(result Result, holidays HolidayTable, excl ExclusionSet) []MonthGrid {
	admitted := make(map[Date]bool, len(result.WorkDates))
	for _, d := range result.WorkDates {
		admitted[d] = true
	}

	var grids []MonthGrid
	for _, ym := range result.Period.Months() {
		grids = append(grids, buildMonth(ym, admitted, holidays, excl))
	}
	return grids
}

func buildMonth(ym YearMonth, admitted map[Date]bool, holidays HolidayTable, excl ExclusionSet) MonthGrid {
	grid := MonthGrid{Year: ym.Year, Month: ym.Month}

	week := blankWeek()
	first := NewDate(ym.Year, ym.Month, 1)
	col := first.WeekdayOrdinal()

	for day := 1; day <= ym.DaysInMonth(); day++ {
		d := NewDate(ym.Year, ym.Month, day)
		week[col] = classify(d, admitted, holidays, excl)
		if col == 6 {
			grid.Weeks = append(grid.Weeks, week)
			week = blankWeek()
			col = 0
		} else {
			col++
		}
	}
	if col != 0 {
		grid.Weeks = append(grid.Weeks, week)
	}
	return grid
}

func blankWeek() [7]Cell {
	var week [7]Cell
	for i := range week {
		week[i].State = CellBlank
	}
	return week
}

func classify(d Date, admitted map[Date]bool, holidays HolidayTable, excl ExclusionSet) Cell {
	cell := Cell{Day: d.Day(), State: CellOff}
	if admitted[d] {
		cell.State = CellWork
		return cell
	}

	status := Status(d, holidays, excl)
	if status.Excluded() {
		cell.State = CellExcluded
		cell.Label = status.DisplayLabel()
		cell.HolidayLabel = status.HolidayLabel
		cell.ExclusionNote = status.ExclusionNote
	}
	return cell
}
