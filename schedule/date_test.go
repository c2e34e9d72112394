package schedule_test

import (
	"testing"
	"time"

	"github.com/hagwonlabs/roster-engine/schedule"
)

func TestPeriodDays_InclusiveAscending(t *testing.T) {
	p := schedule.Period{Start: date(2026, time.March, 30), End: date(2026, time.April, 2)}

	days := p.Days()

	want := []schedule.Date{
		date(2026, time.March, 30),
		date(2026, time.March, 31),
		date(2026, time.April, 1),
		date(2026, time.April, 2),
	}
	if len(days) != len(want) {
		t.Fatalf("expected %d days, got %d", len(want), len(days))
	}
	for i := range want {
		if !days[i].Equal(want[i]) {
			t.Errorf("day %d: expected %s, got %s", i, want[i], days[i])
		}
	}
}

func TestPeriodDays_StartAfterEndIsEmpty(t *testing.T) {
	p := schedule.Period{Start: date(2026, time.April, 2), End: date(2026, time.March, 30)}
	if days := p.Days(); len(days) != 0 {
		t.Errorf("expected empty sequence, got %d days", len(days))
	}
}

func TestWeekdayOrdinal_MondayIsZero(t *testing.T) {
	// 2026-06-01 is a Monday, 2026-06-07 a Sunday.
	for i := 0; i < 7; i++ {
		d := date(2026, time.June, 1+i)
		if d.WeekdayOrdinal() != i {
			t.Errorf("%s: expected ordinal %d, got %d", d, i, d.WeekdayOrdinal())
		}
	}
}

func TestAcademicYear_MarchThroughDecember(t *testing.T) {
	p := schedule.AcademicYear(2026)

	if !p.Start.Equal(date(2026, time.March, 1)) || !p.End.Equal(date(2026, time.December, 31)) {
		t.Errorf("unexpected academic year bounds: %s", p)
	}
	months := p.Months()
	if len(months) != 10 {
		t.Fatalf("expected 10 months, got %d", len(months))
	}
	if months[0].Month != time.March || months[9].Month != time.December {
		t.Errorf("unexpected month endpoints: %v .. %v", months[0], months[9])
	}
	// 306 days: March..December of a non-leap year.
	if got := len(p.Days()); got != 306 {
		t.Errorf("expected 306 days, got %d", got)
	}
}

func TestParseDate_RejectsNonISO(t *testing.T) {
	for _, s := range []string{"", "2026/03/01", "01-03-2026", "2026-13-01"} {
		d, err := schedule.ParseDate(s)
		if err == nil {
			t.Errorf("expected %q to fail", s)
		}
		if !d.IsZero() {
			t.Errorf("%q: rejected parse should return the zero date, got %s", s, d)
		}
	}
}
