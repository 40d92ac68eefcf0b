package analytics

import (
	"testing"

	"github.com/sarfrazcodes/tracker-dashboard/internal/task"
)

func TestProductivityRatio_ZeroPlan(t *testing.T) {
	// A zero plan always yields 0, no matter how much actual time exists.
	for _, actual := range []int{0, 1, 30, 100000} {
		if got := ProductivityRatio(0, actual); got != 0 {
			t.Errorf("ProductivityRatio(0, %d) = %d, want 0", actual, got)
		}
	}
}

func TestProductivityRatio_Uncapped(t *testing.T) {
	// Over-delivery must stay visible: actual > planned exceeds 100.
	if got := ProductivityRatio(60, 90); got != 150 {
		t.Errorf("ProductivityRatio(60, 90) = %d, want 150", got)
	}
	if got := ProductivityRatio(10, 25); got <= 100 {
		t.Errorf("ProductivityRatio(10, 25) = %d, want > 100", got)
	}
}

func TestProductivityRatio_Rounds(t *testing.T) {
	// 30/60 = 50%, 1/3 = 33%, 2/3 = 67%.
	cases := []struct {
		planned, actual, want int
	}{
		{60, 30, 50},
		{3, 1, 33},
		{3, 2, 67},
		{60, 60, 100},
	}
	for _, c := range cases {
		if got := ProductivityRatio(c.planned, c.actual); got != c.want {
			t.Errorf("ProductivityRatio(%d, %d) = %d, want %d", c.planned, c.actual, got, c.want)
		}
	}
}

func TestDailyTotals_MatchesDateOnly(t *testing.T) {
	records := []task.Record{
		{TaskDate: "2026-08-29", PlannedMinutes: 60, ActualMinutes: 30, IsCompleted: true},
		{TaskDate: "2026-08-29", PlannedMinutes: 40},
		{TaskDate: "2026-08-28", PlannedMinutes: 500, ActualMinutes: 500, IsCompleted: true},
	}

	got := DailyTotals(records, "2026-08-29")
	if got.PlannedMinutes != 100 {
		t.Errorf("PlannedMinutes = %d, want 100", got.PlannedMinutes)
	}
	if got.ActualMinutes != 30 {
		t.Errorf("ActualMinutes = %d, want 30", got.ActualMinutes)
	}
}

func TestDailyTotals_TrustsStoredActual(t *testing.T) {
	// The rollup sums actual as stored without re-filtering on completion;
	// incomplete records carry 0 actual by invariant.
	records := []task.Record{
		{TaskDate: "2026-08-29", PlannedMinutes: 60, ActualMinutes: 0, IsCompleted: false},
	}
	got := DailyTotals(records, "2026-08-29")
	if got.PlannedMinutes != 60 || got.ActualMinutes != 0 {
		t.Errorf("totals = %+v, want planned 60 actual 0", got)
	}
}

func TestWeeklySeries_SevenPointsOldestFirst(t *testing.T) {
	today := makeDay(t, "2026-08-29")
	records := []task.Record{
		{TaskDate: "2026-08-29", PlannedMinutes: 60, ActualMinutes: 30, IsCompleted: true},
		{TaskDate: "2026-08-25", PlannedMinutes: 60, ActualMinutes: 90, IsCompleted: true},
	}

	series := WeeklySeries(records, today)
	if len(series) != 7 {
		t.Fatalf("expected 7 points, got %d", len(series))
	}
	if series[0].Date != "2026-08-23" {
		t.Errorf("first point %q, want 2026-08-23", series[0].Date)
	}
	if series[6].Date != "2026-08-29" {
		t.Errorf("last point %q, want 2026-08-29", series[6].Date)
	}
	if series[6].Ratio != 50 {
		t.Errorf("today's ratio = %d, want 50", series[6].Ratio)
	}
	// 2026-08-25 is index 2; over-delivery stays above 100.
	if series[2].Ratio != 150 {
		t.Errorf("2026-08-25 ratio = %d, want 150", series[2].Ratio)
	}
	// Empty days score 0.
	if series[1].Ratio != 0 {
		t.Errorf("empty day ratio = %d, want 0", series[1].Ratio)
	}
}

func TestMonthlySeries_FullHistorySorted(t *testing.T) {
	records := []task.Record{
		{TaskDate: "2026-08-29", PlannedMinutes: 100, ActualMinutes: 50, IsCompleted: true},
		{TaskDate: "2026-08-01", PlannedMinutes: 100, ActualMinutes: 100, IsCompleted: true},
		{TaskDate: "2025-12-31", PlannedMinutes: 60, ActualMinutes: 90, IsCompleted: true},
	}

	series := MonthlySeries(records)
	if len(series) != 2 {
		t.Fatalf("expected 2 months, got %d", len(series))
	}
	if series[0].Month != "2025-12" || series[1].Month != "2026-08" {
		t.Errorf("months = [%s, %s], want sorted [2025-12, 2026-08]", series[0].Month, series[1].Month)
	}
	// 2026-08: 150 actual over 200 planned = 75.
	if series[1].Ratio != 75 {
		t.Errorf("2026-08 ratio = %d, want 75", series[1].Ratio)
	}
	// 2025-12: over-delivery, 150.
	if series[0].Ratio != 150 {
		t.Errorf("2025-12 ratio = %d, want 150", series[0].Ratio)
	}
}

func TestMonthlySeries_Empty(t *testing.T) {
	if series := MonthlySeries(nil); len(series) != 0 {
		t.Errorf("expected empty series, got %d points", len(series))
	}
}

func TestCategoryDistribution_CompletedOnly(t *testing.T) {
	// Two same-day records in "Work": one completed with 40 actual, one
	// incomplete carrying 20 actual. Only the completed one attributes time.
	records := []task.Record{
		{TaskDate: "2026-08-29", Category: "Work", ActualMinutes: 40, IsCompleted: true},
		{TaskDate: "2026-08-29", Category: "Work", ActualMinutes: 20, IsCompleted: false},
	}

	dist := CategoryDistribution(records)
	if dist["Work"] != 40 {
		t.Errorf("Work = %d, want 40 (incomplete record excluded)", dist["Work"])
	}
	if len(dist) != 1 {
		t.Errorf("expected 1 category, got %d", len(dist))
	}
}

func TestCategoryDistribution_EmptyCategoryNormalizes(t *testing.T) {
	records := []task.Record{
		{TaskDate: "2026-08-29", Category: "", ActualMinutes: 25, IsCompleted: true},
	}
	dist := CategoryDistribution(records)
	if dist[task.DefaultCategory] != 25 {
		t.Errorf("Other = %d, want 25", dist[task.DefaultCategory])
	}
}
