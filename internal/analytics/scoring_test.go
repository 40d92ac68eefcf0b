package analytics

import (
	"math"
	"testing"

	"github.com/sarfrazcodes/tracker-dashboard/internal/task"
)

func TestWeeklyAverageHours_AlwaysDividesBySeven(t *testing.T) {
	today := makeDay(t, "2026-08-29")
	// One completed day with 420 minutes; the divisor stays 7 even though
	// only one day has data, so the average is 1 hour per day.
	records := []task.Record{
		{TaskDate: "2026-08-29", ActualMinutes: 420, IsCompleted: true},
	}

	got := WeeklyAverageHours(records, today)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("WeeklyAverageHours = %f, want 1.0", got)
	}
}

func TestWeeklyAverageHours_ExcludesOutsideWindow(t *testing.T) {
	today := makeDay(t, "2026-08-29")
	records := []task.Record{
		{TaskDate: "2026-08-23", ActualMinutes: 70, IsCompleted: true}, // oldest in-window day
		{TaskDate: "2026-08-22", ActualMinutes: 700, IsCompleted: true}, // outside
	}

	got := WeeklyAverageHours(records, today)
	want := 70.0 / 7.0 / 60.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("WeeklyAverageHours = %f, want %f", got, want)
	}
}

func TestWeeklyAverageHours_ExcludesIncomplete(t *testing.T) {
	today := makeDay(t, "2026-08-29")
	records := []task.Record{
		{TaskDate: "2026-08-29", ActualMinutes: 60, IsCompleted: false},
	}

	if got := WeeklyAverageHours(records, today); got != 0 {
		t.Errorf("WeeklyAverageHours = %f, want 0 (incomplete)", got)
	}
}

func TestProductivityScore(t *testing.T) {
	cases := []struct {
		name    string
		records []task.Record
		want    int
	}{
		{"no records", nil, 0},
		{"all complete", []task.Record{
			{IsCompleted: true}, {IsCompleted: true},
		}, 100},
		{"half complete", []task.Record{
			{IsCompleted: true}, {IsCompleted: false},
		}, 50},
		{"one of three", []task.Record{
			{IsCompleted: true}, {IsCompleted: false}, {IsCompleted: false},
		}, 33},
	}

	for _, c := range cases {
		if got := ProductivityScore(c.records); got != c.want {
			t.Errorf("%s: ProductivityScore = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestGoalProgressPercent_Capped(t *testing.T) {
	// Any non-negative actual stays in [0, 100].
	for _, actual := range []int{0, 30, 360, 720, 100000} {
		got := GoalProgressPercent(actual, 360)
		if got < 0 || got > 100 {
			t.Errorf("GoalProgressPercent(%d, 360) = %d, out of [0, 100]", actual, got)
		}
	}
	if got := GoalProgressPercent(720, 360); got != 100 {
		t.Errorf("GoalProgressPercent(720, 360) = %d, want 100", got)
	}
}

func TestGoalProgressPercent_Rounds(t *testing.T) {
	// 30/360 = 8.33 rounds to 8.
	if got := GoalProgressPercent(30, 360); got != 8 {
		t.Errorf("GoalProgressPercent(30, 360) = %d, want 8", got)
	}
}

func TestGoalProgressPercent_DefaultGoal(t *testing.T) {
	// A non-positive goal falls back to the 360-minute default.
	if got := GoalProgressPercent(180, 0); got != 50 {
		t.Errorf("GoalProgressPercent(180, 0) = %d, want 50", got)
	}
}
