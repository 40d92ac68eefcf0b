package analytics

import (
	"time"

	"github.com/sarfrazcodes/tracker-dashboard/internal/task"
)

// DayKey returns the canonical YYYY-MM-DD key for a time in the local
// calendar. All date comparisons in the engine are string equality on
// keys produced here, never timestamp arithmetic.
func DayKey(t time.Time) string {
	return t.Format(task.DayFormat)
}

// LastNDays returns the n day keys ending at anchor, oldest first, so
// callers can chart them chronologically without reversing.
func LastNDays(n int, anchor time.Time) []string {
	if n <= 0 {
		return nil
	}
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[n-1-i] = DayKey(anchor.AddDate(0, 0, -i))
	}
	return keys
}

// MonthKey derives the YYYY-MM key from a day key.
func MonthKey(dayKey string) string {
	if len(dayKey) < 7 {
		return dayKey
	}
	return dayKey[:7]
}

// ParseDayKey parses a day key strictly. It exists for ingestion-boundary
// callers; the engine itself never parses dates out of a snapshot.
func ParseDayKey(s string) (time.Time, error) {
	return time.ParseInLocation(task.DayFormat, s, time.Local)
}
