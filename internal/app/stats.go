package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sarfrazcodes/tracker-dashboard/internal/analytics"
	"github.com/sarfrazcodes/tracker-dashboard/internal/config"
	"github.com/sarfrazcodes/tracker-dashboard/internal/output"
	"github.com/sarfrazcodes/tracker-dashboard/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Today's dashboard: totals, score, streak, goal",
	Long: `Compute today's metrics from the full task history: planned vs actual
minutes, completion-rate score, goal progress, current streak, trailing
weekly average, and the most recent entries.

All metrics are recomputed from the raw records on every run; nothing is
cached or stored.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor {
		output.SetNoColor(true)
	} else {
		output.AutoDetect()
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	records, err := db.ListTasks(cfg.User, "")
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}

	today := time.Now()
	bundle := analytics.Aggregate(records, today, cfg.GoalMinutes)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(bundle)
	}

	renderStats(bundle, today, cfg.GoalMinutes)
	return nil
}

func renderStats(b analytics.Bundle, today time.Time, goalMinutes int) {
	fmt.Println(output.Section("Today · " + analytics.DayKey(today)))
	fmt.Printf(" %s%s planned · %s actual\n",
		output.StyleLabel.Render("Minutes"),
		output.StyleBold.Render(fmt.Sprintf("%d", b.DailyTotals.PlannedMinutes)),
		output.StyleBold.Render(fmt.Sprintf("%d", b.DailyTotals.ActualMinutes)))
	fmt.Printf(" %s%s\n",
		output.StyleLabel.Render("Completion score"),
		output.PercentBar(b.ProductivityScore, 20))
	fmt.Printf(" %s%s  %s\n",
		output.StyleLabel.Render("Goal progress"),
		output.PercentBar(b.GoalProgressPercent, 20),
		output.StyleMuted.Render(fmt.Sprintf("(goal %d min)", goalMinutes)))

	fmt.Println(output.Section("Momentum"))
	fmt.Printf(" %s%s\n",
		output.StyleLabel.Render("Streak"),
		output.Streak(b.StreakDays))
	fmt.Printf(" %s%.1f h/day\n",
		output.StyleLabel.Render("Weekly average"),
		b.WeeklyAverageHours)

	ratios := make([]int, 0, len(b.WeeklySeries))
	for _, pt := range b.WeeklySeries {
		ratios = append(ratios, pt.Ratio)
	}
	fmt.Printf(" %s%s  %s\n",
		output.StyleLabel.Render("Last 7 days"),
		output.Sparkline(ratios),
		output.StyleMuted.Render("(productivity %)"))

	if len(b.RecentEntries) > 0 {
		fmt.Println(output.Section("Recent entries"))
		table := output.NewTable("DATE", "ACTIVITY", "CATEGORY", "PLANNED", "ACTUAL").
			AlignRight(3, 4)
		for _, r := range b.RecentEntries {
			table.AddRow(
				r.TaskDate,
				truncate(r.Activity, 32),
				r.Category,
				fmt.Sprintf("%d", r.PlannedMinutes),
				fmt.Sprintf("%d", r.ActualMinutes),
			)
		}
		fmt.Println()
		table.Print()
	}
	fmt.Println()
}
