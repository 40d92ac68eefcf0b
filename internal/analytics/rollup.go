package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/sarfrazcodes/tracker-dashboard/internal/task"
)

// ProductivityRatio converts planned and actual minutes into a percentage.
// A zero plan yields 0 regardless of actual. The ratio is deliberately not
// capped at 100: a day where actual exceeds planned records over-delivery.
func ProductivityRatio(plannedMinutes, actualMinutes int) int {
	if plannedMinutes == 0 {
		return 0
	}
	return int(math.Round(float64(actualMinutes) / float64(plannedMinutes) * 100))
}

// DailyTotals sums planned and actual minutes for all records on the given
// day. Planned counts regardless of completion. Actual is summed as stored:
// incomplete records carry 0 actual by invariant, so no completion filter
// is applied here.
func DailyTotals(records []task.Record, dayKey string) Totals {
	var t Totals
	for _, r := range records {
		if r.TaskDate != dayKey {
			continue
		}
		t.PlannedMinutes += r.PlannedMinutes
		t.ActualMinutes += r.ActualMinutes
	}
	return t
}

// WeeklySeries computes the productivity ratio for each of the last 7
// calendar days inclusive of today, oldest first.
func WeeklySeries(records []task.Record, today time.Time) []DayPoint {
	days := LastNDays(7, today)
	points := make([]DayPoint, 0, len(days))
	for _, day := range days {
		t := DailyTotals(records, day)
		points = append(points, DayPoint{
			Date:  day,
			Ratio: ProductivityRatio(t.PlannedMinutes, t.ActualMinutes),
		})
	}
	return points
}

// MonthlySeries groups the entire snapshot by month and computes each
// month's ratio independently. There is no window: the series spans the
// snapshot's full history. Months are sorted by key so repeated calls
// produce identical output.
func MonthlySeries(records []task.Record) []MonthPoint {
	totals := make(map[string]Totals)
	for _, r := range records {
		key := MonthKey(r.TaskDate)
		t := totals[key]
		t.PlannedMinutes += r.PlannedMinutes
		t.ActualMinutes += r.ActualMinutes
		totals[key] = t
	}

	months := make([]string, 0, len(totals))
	for key := range totals {
		months = append(months, key)
	}
	sort.Strings(months)

	points := make([]MonthPoint, 0, len(months))
	for _, key := range months {
		t := totals[key]
		points = append(points, MonthPoint{
			Month: key,
			Ratio: ProductivityRatio(t.PlannedMinutes, t.ActualMinutes),
		})
	}
	return points
}

// CategoryDistribution accumulates completed actual minutes per normalized
// category. Incomplete records are excluded entirely: they have no actual
// time to attribute.
func CategoryDistribution(records []task.Record) map[string]int {
	dist := make(map[string]int)
	for _, r := range records {
		if !r.IsCompleted {
			continue
		}
		cat := r.Category
		if cat == "" {
			cat = task.DefaultCategory
		}
		dist[cat] += r.ActualMinutes
	}
	return dist
}
