package analytics

import (
	"testing"

	"github.com/sarfrazcodes/tracker-dashboard/internal/task"
)

func completedOn(dates ...string) []task.Record {
	records := make([]task.Record, 0, len(dates))
	for _, d := range dates {
		records = append(records, task.Record{TaskDate: d, IsCompleted: true, ActualMinutes: 30})
	}
	return records
}

func TestStreak_ThreeConsecutiveDays(t *testing.T) {
	today := makeDay(t, "2026-08-29")
	// Completed today, yesterday, and the day before; nothing on day -3.
	records := completedOn("2026-08-29", "2026-08-28", "2026-08-27")

	if got := Streak(records, today); got != 3 {
		t.Errorf("Streak = %d, want 3", got)
	}
}

func TestStreak_ZeroWhenTodayMissing(t *testing.T) {
	today := makeDay(t, "2026-08-29")
	// Yesterday's completion doesn't count if today has none.
	records := completedOn("2026-08-28", "2026-08-27")

	if got := Streak(records, today); got != 0 {
		t.Errorf("Streak = %d, want 0", got)
	}
}

func TestStreak_GapResets(t *testing.T) {
	today := makeDay(t, "2026-08-29")
	// A gap on -2 cuts the scan even though earlier days are complete.
	records := completedOn("2026-08-29", "2026-08-28", "2026-08-26", "2026-08-25")

	if got := Streak(records, today); got != 2 {
		t.Errorf("Streak = %d, want 2", got)
	}
}

func TestStreak_IncompleteTasksDoNotCount(t *testing.T) {
	today := makeDay(t, "2026-08-29")
	records := []task.Record{
		{TaskDate: "2026-08-29", IsCompleted: false, PlannedMinutes: 60},
	}

	if got := Streak(records, today); got != 0 {
		t.Errorf("Streak = %d, want 0 (no completed tasks)", got)
	}
}

func TestStreak_RemovingTodayDropsToZero(t *testing.T) {
	today := makeDay(t, "2026-08-29")
	records := completedOn("2026-08-29", "2026-08-28")

	before := Streak(records, today)
	after := Streak(records[1:], today)
	if after > before {
		t.Errorf("streak grew from %d to %d after removing today's completion", before, after)
	}
	if after != 0 {
		t.Errorf("Streak = %d after removing today's only completion, want 0", after)
	}
}

func TestStreak_ScanBound(t *testing.T) {
	today := makeDay(t, "2026-08-29")

	// Two years of daily completions still clamp at the scan limit.
	var dates []string
	for offset := 0; offset < 730; offset++ {
		dates = append(dates, DayKey(today.AddDate(0, 0, -offset)))
	}
	records := completedOn(dates...)

	if got := Streak(records, today); got != 365 {
		t.Errorf("Streak = %d, want 365 (scan bound)", got)
	}
}

func TestStreak_Empty(t *testing.T) {
	if got := Streak(nil, makeDay(t, "2026-08-29")); got != 0 {
		t.Errorf("Streak = %d for empty snapshot, want 0", got)
	}
}
