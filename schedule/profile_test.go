package schedule_test

import (
	"errors"
	"testing"

	"github.com/hagwonlabs/roster-engine/schedule"
)

func TestProfileFromColumns_NormalizesAndCoerces(t *testing.T) {
	// GIVEN: A row in the per-weekday-columns layout, with one malformed
	//   cell and weekend columns absent
	// THEN: Malformed coerces to zero and missing weekdays default to zero

	p := schedule.ProfileFromColumns("kim", "30000", map[string]string{
		"mon": "2",
		"tue": "x2", // hand-edited garbage
		"wed": "3.5",
	})

	if !p.WeeklyHours[0].Equal(dec(2)) {
		t.Errorf("mon: expected 2, got %v", p.WeeklyHours[0])
	}
	if !p.WeeklyHours[1].IsZero() {
		t.Errorf("tue: malformed cell should coerce to zero, got %v", p.WeeklyHours[1])
	}
	if !p.WeeklyHours[2].Equal(dec(3.5)) {
		t.Errorf("wed: expected 3.5, got %v", p.WeeklyHours[2])
	}
	for ord := 3; ord < 7; ord++ {
		if !p.WeeklyHours[ord].IsZero() {
			t.Errorf("ordinal %d: expected zero hours, got %v", ord, p.WeeklyHours[ord])
		}
	}
	if !p.HourlyRate.Equal(dec(30000)) {
		t.Errorf("rate: expected 30000, got %v", p.HourlyRate)
	}
}

func TestProfileFromDayList_NormalizesToWeeklyHours(t *testing.T) {
	// The days-list variant: each listed weekday ordinal becomes one
	// scheduled hour; junk entries are skipped.
	p := schedule.ProfileFromDayList("lee", "25000", "0, 2, 4, 9, x")

	for ord := 0; ord < 7; ord++ {
		want := ord == 0 || ord == 2 || ord == 4
		if p.WeeklyHours[ord].IsPositive() != want {
			t.Errorf("ordinal %d: scheduled=%v, want %v", ord, p.WeeklyHours[ord].IsPositive(), want)
		}
	}
}

func TestProfileValidate_RejectsBadBoundaryData(t *testing.T) {
	cases := []struct {
		name    string
		profile schedule.Profile
		want    error
	}{
		{"empty name", schedule.ProfileFromColumns("", "100", nil), schedule.ErrEmptyName},
		{"negative rate", schedule.ProfileFromColumns("kim", "-5", nil), schedule.ErrInvalidRate},
		{"negative hours", schedule.ProfileFromColumns("kim", "100", map[string]string{"mon": "-1"}), schedule.ErrInvalidHours},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.profile.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}

	good := schedule.ProfileFromColumns("kim", "30000", map[string]string{"mon": "2"})
	if err := good.Validate(); err != nil {
		t.Errorf("valid profile rejected: %v", err)
	}
}

func TestCoerceNumber_FailSoft(t *testing.T) {
	if !schedule.CoerceNumber("").IsZero() || !schedule.CoerceNumber("abc").IsZero() {
		t.Error("blank/malformed cells must coerce to zero")
	}
	if !schedule.CoerceNumber(" 2.5 ").Equal(dec(2.5)) {
		t.Error("padded numeric cell should parse")
	}
}
