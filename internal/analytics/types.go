// Package analytics is the aggregation engine: pure functions that turn one
// immutable snapshot of task records into the derived metrics shown on the
// dashboard and sent to the insight service. The engine performs no I/O,
// reads no clock (the reference day is always an explicit parameter), and
// allocates a fresh result on every call, so calls are idempotent and safe
// to issue concurrently from multiple views.
//
// Precondition: snapshots are validated at the ingestion boundary
// (task.Record.Validate); the engine does not re-check task dates.
package analytics

import "github.com/sarfrazcodes/tracker-dashboard/internal/task"

// Totals holds planned and actual minute sums for one grouping key.
type Totals struct {
	PlannedMinutes int `json:"planned_minutes"`
	ActualMinutes  int `json:"actual_minutes"`
}

// DayPoint is one day of the weekly productivity series.
type DayPoint struct {
	// Date is the day key (YYYY-MM-DD).
	Date string `json:"date"`

	// Ratio is the productivity ratio for the day, uncapped.
	Ratio int `json:"productivity"`
}

// MonthPoint is one month of the monthly productivity series.
type MonthPoint struct {
	// Month is the month key (YYYY-MM).
	Month string `json:"month"`

	// Ratio is the productivity ratio for the month, uncapped.
	Ratio int `json:"productivity"`
}

// Bundle is the full metrics bundle derived from one snapshot. It has no
// persisted identity: every aggregation call constructs a new one.
type Bundle struct {
	// DailyTotals is planned vs actual minutes for the reference day.
	DailyTotals Totals `json:"daily_totals"`

	// WeeklySeries is exactly 7 points covering the trailing week,
	// oldest first, inclusive of the reference day.
	WeeklySeries []DayPoint `json:"weekly_series"`

	// MonthlySeries has one point per distinct month in the snapshot,
	// sorted by month key.
	MonthlySeries []MonthPoint `json:"monthly_series"`

	// CategoryDistribution maps category to summed actual minutes of
	// completed tasks.
	CategoryDistribution map[string]int `json:"category_distribution"`

	// StreakDays is the count of consecutive days ending at the reference
	// day that each have at least one completed task.
	StreakDays int `json:"streak_days"`

	// WeeklyAverageHours is the trailing-7-day average of completed actual
	// minutes, in hours.
	WeeklyAverageHours float64 `json:"weekly_average_hours"`

	// ProductivityScore is the reference day's completion rate, 0-100.
	ProductivityScore int `json:"productivity_score"`

	// GoalProgressPercent is progress toward the daily goal, capped at 100.
	GoalProgressPercent int `json:"goal_progress_percent"`

	// RecentEntries holds up to 5 records, newest CreatedAt first.
	RecentEntries []task.Record `json:"recent_entries"`
}
