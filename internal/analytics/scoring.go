package analytics

import (
	"math"
	"time"

	"github.com/sarfrazcodes/tracker-dashboard/internal/task"
)

// DefaultGoalMinutes is the daily completed-time goal (6 hours) used when
// the caller does not configure one.
const DefaultGoalMinutes = 360

// WeeklyAverageHours averages completed actual minutes over the trailing
// 7-day window inclusive of today and converts to hours. The divisor is
// always 7, even when the history is shorter; this matches the dashboard's
// established semantics for new accounts and understates their true average
// (see DESIGN.md).
func WeeklyAverageHours(records []task.Record, today time.Time) float64 {
	window := make(map[string]bool, 7)
	for _, day := range LastNDays(7, today) {
		window[day] = true
	}

	total := 0
	for _, r := range records {
		if r.IsCompleted && window[r.TaskDate] {
			total += r.ActualMinutes
		}
	}
	return float64(total) / 7.0 / 60.0
}

// ProductivityScore is the completion rate over today's records, 0-100.
// No records today scores 0.
func ProductivityScore(todayRecords []task.Record) int {
	if len(todayRecords) == 0 {
		return 0
	}
	completed := 0
	for _, r := range todayRecords {
		if r.IsCompleted {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(todayRecords)) * 100))
}

// GoalProgressPercent is today's completed minutes as a percentage of the
// daily goal, capped at 100. A non-positive goal falls back to the default.
func GoalProgressPercent(todayActualMinutes, goalMinutes int) int {
	if goalMinutes <= 0 {
		goalMinutes = DefaultGoalMinutes
	}
	pct := int(math.Round(float64(todayActualMinutes) / float64(goalMinutes) * 100))
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
