package analytics

import (
	"time"

	"github.com/sarfrazcodes/tracker-dashboard/internal/task"
)

// streakScanLimit bounds the backward day scan so a pathological snapshot
// cannot make the walk unbounded.
const streakScanLimit = 365

// Streak counts consecutive calendar days ending at today on which at least
// one task was completed. The scan is a greedy single pass walking backward
// from today and stops at the first day with no completed task; if today
// itself has none, the streak is 0.
func Streak(records []task.Record, today time.Time) int {
	completed := make(map[string]bool)
	for _, r := range records {
		if r.IsCompleted {
			completed[r.TaskDate] = true
		}
	}

	streak := 0
	for offset := 0; offset < streakScanLimit; offset++ {
		day := DayKey(today.AddDate(0, 0, -offset))
		if !completed[day] {
			break
		}
		streak++
	}
	return streak
}
