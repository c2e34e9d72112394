package schedule_test

import (
	"testing"
	"time"

	"github.com/hagwonlabs/roster-engine/schedule"
)

// =============================================================================
// RESOLVER SEMANTICS
// =============================================================================

func TestResolveExclusions_OverlapLastWriteWins(t *testing.T) {
	// GIVEN: [Jul 1, Jul 10] "first" then [Jul 5, Jul 15] "second"
	// WHEN: Resolving in insertion order
	// THEN: Exactly Jul 1..15 is excluded and Jul 5..10 carries the
	//       second interval's note

	first, _ := schedule.ParseInterval("2026-07-01", "2026-07-10", "first")
	second, _ := schedule.ParseInterval("2026-07-05", "2026-07-15", "second")

	set := schedule.ResolveExclusions([]schedule.Interval{first, second})

	if len(set) != 15 {
		t.Fatalf("expected 15 excluded days, got %d", len(set))
	}
	for day := 1; day <= 15; day++ {
		d := date(2026, time.July, day)
		note, ok := set[d]
		if !ok {
			t.Errorf("expected %s to be excluded", d)
			continue
		}
		want := "first"
		if day >= 5 {
			want = "second"
		}
		if note != want {
			t.Errorf("%s: expected note %q, got %q", d, want, note)
		}
	}
	if set.Contains(date(2026, time.July, 16)) {
		t.Error("Jul 16 must not be excluded")
	}
}

func TestResolveExclusions_SingleDayInterval(t *testing.T) {
	// GIVEN: An interval where start == end
	// THEN: Exactly that one day is excluded

	iv, ok := schedule.ParseInterval("2026-09-10", "2026-09-10", "closure")
	if !ok {
		t.Fatal("interval should parse")
	}

	set := schedule.ResolveExclusions([]schedule.Interval{iv})

	if len(set) != 1 || !set.Contains(date(2026, time.September, 10)) {
		t.Errorf("expected exactly 2026-09-10 excluded, got %v", set)
	}
}

func TestResolveExclusions_InvertedIntervalContributesNothing(t *testing.T) {
	set := schedule.ResolveExclusions([]schedule.Interval{{
		Start: date(2026, time.May, 10),
		End:   date(2026, time.May, 1),
		Note:  "backwards",
	}})
	if len(set) != 0 {
		t.Errorf("inverted interval excluded %d days", len(set))
	}
}

// =============================================================================
// FAIL-SOFT PARSING
// =============================================================================

func TestParseInterval_MalformedRecordsAreSkipped(t *testing.T) {
	// Malformed rows are dropped one by one; they never abort the batch.
	cases := []struct {
		name       string
		start, end string
	}{
		{"garbage start", "not-a-date", "2026-07-10"},
		{"garbage end", "2026-07-01", "10/07/2026"},
		{"missing start", "", "2026-07-10"},
		{"missing end", "2026-07-01", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := schedule.ParseInterval(tc.start, tc.end, "note"); ok {
				t.Errorf("expected %q..%q to be rejected", tc.start, tc.end)
			}
		})
	}

	good, ok := schedule.ParseInterval("2026-07-01", "2026-07-02", "kept")
	if !ok {
		t.Fatal("well-formed interval should parse")
	}
	if got := len(schedule.ResolveExclusions([]schedule.Interval{good})); got != 2 {
		t.Errorf("expected 2 excluded days, got %d", got)
	}
}

func TestSingleDayInterval_NormalizesTypeTaggedRows(t *testing.T) {
	iv, ok := schedule.SingleDayInterval("2026-06-15", "exam")
	if !ok {
		t.Fatal("single-date row should normalize")
	}
	if !iv.Start.Equal(iv.End) || iv.Note != "exam" {
		t.Errorf("expected one-day interval with note exam, got %+v", iv)
	}
}

// =============================================================================
// MERGED STATUS - Both facts exposed, no guessed precedence
// =============================================================================

func TestStatus_HolidayInsideExclusionExposesBothLabels(t *testing.T) {
	// GIVEN: 2026-05-05 is both Children's Day and inside a declared interval
	// THEN: Both facts are available; DisplayLabel defaults to the holiday

	iv, _ := schedule.ParseInterval("2026-05-01", "2026-05-10", "spring break")
	excl := schedule.ResolveExclusions([]schedule.Interval{iv})

	ds := schedule.Status(date(2026, time.May, 5), schedule.Holidays2026(), excl)

	if !ds.IsHoliday || ds.HolidayLabel != "Children's Day" {
		t.Errorf("expected holiday fact, got %+v", ds)
	}
	if ds.ExclusionNote != "spring break" {
		t.Errorf("expected exclusion note, got %q", ds.ExclusionNote)
	}
	if !ds.Excluded() {
		t.Error("date must be excluded")
	}
	if ds.DisplayLabel() != "Children's Day" {
		t.Errorf("default display label should be the holiday, got %q", ds.DisplayLabel())
	}
}
