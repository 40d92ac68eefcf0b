package analytics

import (
	"encoding/json"
	"testing"

	"github.com/sarfrazcodes/tracker-dashboard/internal/task"
)

func TestAggregate_SingleCompletedTask(t *testing.T) {
	today := makeDay(t, "2026-08-29")
	records := []task.Record{
		{
			ID: "t1", TaskDate: "2026-08-29", PlannedMinutes: 60,
			ActualMinutes: 30, IsCompleted: true, Category: "Work",
			CreatedAt: "2026-08-29T09:00:00Z",
		},
	}

	b := Aggregate(records, today, 360)

	if b.DailyTotals.PlannedMinutes != 60 || b.DailyTotals.ActualMinutes != 30 {
		t.Errorf("DailyTotals = %+v, want planned 60 actual 30", b.DailyTotals)
	}
	if b.ProductivityScore != 100 {
		t.Errorf("ProductivityScore = %d, want 100 (1/1 completed)", b.ProductivityScore)
	}
	if b.GoalProgressPercent != 8 {
		t.Errorf("GoalProgressPercent = %d, want 8 (30/360)", b.GoalProgressPercent)
	}
	if b.StreakDays != 1 {
		t.Errorf("StreakDays = %d, want 1", b.StreakDays)
	}
	if len(b.RecentEntries) != 1 || b.RecentEntries[0].ID != "t1" {
		t.Errorf("RecentEntries = %+v, want the single record", b.RecentEntries)
	}
}

func TestAggregate_EmptySnapshot(t *testing.T) {
	today := makeDay(t, "2026-08-29")
	b := Aggregate(nil, today, 360)

	if b.DailyTotals.PlannedMinutes != 0 || b.DailyTotals.ActualMinutes != 0 {
		t.Errorf("DailyTotals = %+v, want zeros", b.DailyTotals)
	}
	if len(b.WeeklySeries) != 7 {
		t.Fatalf("WeeklySeries has %d points, want 7", len(b.WeeklySeries))
	}
	for i, pt := range b.WeeklySeries {
		if pt.Ratio != 0 {
			t.Errorf("WeeklySeries[%d].Ratio = %d, want 0", i, pt.Ratio)
		}
	}
	if len(b.MonthlySeries) != 0 {
		t.Errorf("MonthlySeries = %v, want empty", b.MonthlySeries)
	}
	if len(b.CategoryDistribution) != 0 {
		t.Errorf("CategoryDistribution = %v, want empty", b.CategoryDistribution)
	}
	if b.StreakDays != 0 {
		t.Errorf("StreakDays = %d, want 0", b.StreakDays)
	}
	if b.ProductivityScore != 0 || b.GoalProgressPercent != 0 {
		t.Errorf("scores = %d/%d, want 0/0", b.ProductivityScore, b.GoalProgressPercent)
	}
	if b.WeeklyAverageHours != 0 {
		t.Errorf("WeeklyAverageHours = %f, want 0", b.WeeklyAverageHours)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	today := makeDay(t, "2026-08-29")
	records := []task.Record{
		{ID: "a", TaskDate: "2026-08-29", PlannedMinutes: 60, ActualMinutes: 90, IsCompleted: true, Category: "Work", CreatedAt: "2026-08-29T08:00:00Z"},
		{ID: "b", TaskDate: "2026-08-28", PlannedMinutes: 45, IsCompleted: false, Category: "Study", CreatedAt: "2026-08-28T10:00:00Z"},
		{ID: "c", TaskDate: "2026-07-02", PlannedMinutes: 30, ActualMinutes: 30, IsCompleted: true, CreatedAt: "2026-07-02T18:00:00Z"},
	}

	first, err := json.Marshal(Aggregate(records, today, 360))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(Aggregate(records, today, 360))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("same snapshot and today produced different bundles:\n%s\n%s", first, second)
	}
}

func TestAggregate_DoesNotMutateSnapshot(t *testing.T) {
	today := makeDay(t, "2026-08-29")
	records := []task.Record{
		{ID: "z", TaskDate: "2026-08-29", CreatedAt: "2026-08-29T01:00:00Z"},
		{ID: "a", TaskDate: "2026-08-29", CreatedAt: "2026-08-29T02:00:00Z"},
	}

	Aggregate(records, today, 360)
	if records[0].ID != "z" || records[1].ID != "a" {
		t.Errorf("aggregation reordered the input snapshot: %+v", records)
	}
}

func TestAggregate_RecentEntriesNewestFirst(t *testing.T) {
	today := makeDay(t, "2026-08-29")
	var records []task.Record
	ids := []string{"r1", "r2", "r3", "r4", "r5", "r6", "r7"}
	for i, id := range ids {
		records = append(records, task.Record{
			ID:        id,
			TaskDate:  "2026-08-29",
			CreatedAt: makeDay(t, "2026-08-20").AddDate(0, 0, i).Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	b := Aggregate(records, today, 360)
	if len(b.RecentEntries) != 5 {
		t.Fatalf("RecentEntries has %d records, want 5", len(b.RecentEntries))
	}
	if b.RecentEntries[0].ID != "r7" {
		t.Errorf("newest entry = %s, want r7", b.RecentEntries[0].ID)
	}
	if b.RecentEntries[4].ID != "r3" {
		t.Errorf("oldest kept entry = %s, want r3", b.RecentEntries[4].ID)
	}
}

func TestFilterWindow(t *testing.T) {
	today := makeDay(t, "2026-08-29")
	records := []task.Record{
		{ID: "today", TaskDate: "2026-08-29"},
		{ID: "week", TaskDate: "2026-08-24"},
		{ID: "old", TaskDate: "2026-06-01"},
	}

	if got := FilterWindow(records, WindowAll, today); len(got) != 3 {
		t.Errorf("WindowAll kept %d, want 3", len(got))
	}
	if got := FilterWindow(records, WindowTrailing7, today); len(got) != 2 {
		t.Errorf("WindowTrailing7 kept %d, want 2", len(got))
	}
	got := FilterWindow(records, WindowToday, today)
	if len(got) != 1 || got[0].ID != "today" {
		t.Errorf("WindowToday kept %v, want just today's record", got)
	}
}

func TestParseWindow(t *testing.T) {
	cases := map[string]Window{
		"today":     WindowToday,
		"trailing7": WindowTrailing7,
		"week":      WindowTrailing7,
		"all":       WindowAll,
		"":          WindowAll,
		"bogus":     WindowAll,
	}
	for in, want := range cases {
		if got := ParseWindow(in); got != want {
			t.Errorf("ParseWindow(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInsightPayload_FieldSelectionOnly(t *testing.T) {
	b := Bundle{
		DailyTotals: Totals{PlannedMinutes: 120, ActualMinutes: 90},
		WeeklySeries: []DayPoint{
			{Date: "2026-08-28", Ratio: 40},
			{Date: "2026-08-29", Ratio: 75},
		},
		MonthlySeries: []MonthPoint{
			{Month: "2026-08", Ratio: 60},
		},
		CategoryDistribution: map[string]int{"Work": 90, "Gym": 45},
	}

	p := InsightPayload(b)

	if p.Daily.Planned != 120 || p.Daily.Actual != 90 {
		t.Errorf("Daily = %+v, want planned 120 actual 90", p.Daily)
	}
	if len(p.Weekly) != 2 || p.Weekly[1].Productivity != 75 {
		t.Errorf("Weekly = %+v, want the bundle's series", p.Weekly)
	}
	if len(p.Monthly) != 1 || p.Monthly[0].Month != "2026-08" {
		t.Errorf("Monthly = %+v, want the bundle's series", p.Monthly)
	}
	// Categories come out sorted by name.
	if len(p.Category) != 2 || p.Category[0].Name != "Gym" || p.Category[1].Value != 90 {
		t.Errorf("Category = %+v, want sorted [Gym 45, Work 90]", p.Category)
	}
}
