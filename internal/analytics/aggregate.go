package analytics

import (
	"sort"
	"time"

	"github.com/sarfrazcodes/tracker-dashboard/internal/insight"
	"github.com/sarfrazcodes/tracker-dashboard/internal/task"
)

// Window names the date ranges the dashboard views aggregate over. The
// three views used to hand-roll their own fetch-and-filter blocks; windows
// centralize that as aggregator configuration.
type Window int

const (
	// WindowAll spans the snapshot's full history.
	WindowAll Window = iota

	// WindowToday covers only the reference day.
	WindowToday

	// WindowTrailing7 covers the last 7 days inclusive of the reference day.
	WindowTrailing7
)

// String returns the window's name for flags and logs.
func (w Window) String() string {
	switch w {
	case WindowToday:
		return "today"
	case WindowTrailing7:
		return "trailing7"
	default:
		return "all"
	}
}

// ParseWindow maps a flag value to a Window. Unknown values mean WindowAll.
func ParseWindow(s string) Window {
	switch s {
	case "today":
		return WindowToday
	case "trailing7", "week":
		return WindowTrailing7
	default:
		return WindowAll
	}
}

// FilterWindow returns the records whose task date falls inside the window
// anchored at today. WindowAll returns the input unchanged.
func FilterWindow(records []task.Record, w Window, today time.Time) []task.Record {
	if w == WindowAll {
		return records
	}

	days := 1
	if w == WindowTrailing7 {
		days = 7
	}
	keep := make(map[string]bool, days)
	for _, day := range LastNDays(days, today) {
		keep[day] = true
	}

	var out []task.Record
	for _, r := range records {
		if keep[r.TaskDate] {
			out = append(out, r)
		}
	}
	return out
}

// Aggregate derives the full metrics bundle from one snapshot. The snapshot
// must already be scoped to one user and validated; today is the reference
// day and the engine's only environmental input, passed explicitly so that
// results are deterministic.
func Aggregate(records []task.Record, today time.Time, goalMinutes int) Bundle {
	todayKey := DayKey(today)
	daily := DailyTotals(records, todayKey)

	var todays []task.Record
	for _, r := range records {
		if r.TaskDate == todayKey {
			todays = append(todays, r)
		}
	}

	return Bundle{
		DailyTotals:          daily,
		WeeklySeries:         WeeklySeries(records, today),
		MonthlySeries:        MonthlySeries(records),
		CategoryDistribution: CategoryDistribution(records),
		StreakDays:           Streak(records, today),
		WeeklyAverageHours:   WeeklyAverageHours(records, today),
		ProductivityScore:    ProductivityScore(todays),
		GoalProgressPercent:  GoalProgressPercent(daily.ActualMinutes, goalMinutes),
		RecentEntries:        recentEntries(records, 5),
	}
}

// recentEntries returns up to limit records ordered newest CreatedAt first.
// Ties fall back to ID so the order is stable across calls.
func recentEntries(records []task.Record, limit int) []task.Record {
	out := make([]task.Record, len(records))
	copy(out, records)
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].CreatedTime(), out[j].CreatedTime()
		if ti.Equal(tj) {
			return out[i].ID < out[j].ID
		}
		return ti.After(tj)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// InsightPayload shapes a bundle into the insight service's request payload.
// It selects and renames fields only; no metric is recomputed here.
func InsightPayload(b Bundle) insight.Payload {
	p := insight.Payload{
		Daily: insight.DailyPayload{
			Planned: b.DailyTotals.PlannedMinutes,
			Actual:  b.DailyTotals.ActualMinutes,
		},
	}

	for _, pt := range b.WeeklySeries {
		p.Weekly = append(p.Weekly, insight.WeekPoint{Date: pt.Date, Productivity: pt.Ratio})
	}
	for _, pt := range b.MonthlySeries {
		p.Monthly = append(p.Monthly, insight.MonthPoint{Month: pt.Month, Productivity: pt.Ratio})
	}

	cats := make([]string, 0, len(b.CategoryDistribution))
	for name := range b.CategoryDistribution {
		cats = append(cats, name)
	}
	sort.Strings(cats)
	for _, name := range cats {
		p.Category = append(p.Category, insight.CategorySlice{Name: name, Value: b.CategoryDistribution[name]})
	}

	return p
}
