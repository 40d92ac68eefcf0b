package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/sarfrazcodes/tracker-dashboard/internal/analytics"
	"github.com/sarfrazcodes/tracker-dashboard/internal/config"
	"github.com/sarfrazcodes/tracker-dashboard/internal/output"
	"github.com/sarfrazcodes/tracker-dashboard/internal/store"
	"github.com/sarfrazcodes/tracker-dashboard/internal/task"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Weekly, monthly, and category rollups",
	Long: `Show the productivity trend views: today's planned vs actual, the
last 7 days' productivity ratios, per-month productivity across the full
history, and actual time by category.`,
	RunE: runAnalytics,
}

func init() {
	rootCmd.AddCommand(analyticsCmd)
}

// analyticsOutput is the JSON-serializable output for the analytics command.
type analyticsOutput struct {
	Daily    analytics.Totals       `json:"daily_totals"`
	Weekly   []analytics.DayPoint   `json:"weekly_series"`
	Monthly  []analytics.MonthPoint `json:"monthly_series"`
	Category map[string]int         `json:"category_distribution"`
}

func runAnalytics(cmd *cobra.Command, args []string) error {
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

	today := time.Now()

	// The daily, weekly, and full-history views read disjoint date ranges;
	// fetch them concurrently like the dashboard's independent views do.
	var todays, week, all []task.Record
	var g errgroup.Group
	g.Go(func() error {
		var err error
		todays, err = fetchWindow(db, cfg.User, analytics.WindowToday, today)
		return err
	})
	g.Go(func() error {
		var err error
		week, err = fetchWindow(db, cfg.User, analytics.WindowTrailing7, today)
		return err
	})
	g.Go(func() error {
		var err error
		all, err = fetchWindow(db, cfg.User, analytics.WindowAll, today)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}

	out := analyticsOutput{
		Daily:    analytics.DailyTotals(todays, analytics.DayKey(today)),
		Weekly:   analytics.WeeklySeries(week, today),
		Monthly:  analytics.MonthlySeries(all),
		Category: analytics.CategoryDistribution(all),
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	renderAnalytics(out)
	return nil
}

func renderAnalytics(out analyticsOutput) {
	fmt.Println(output.Section("Today: planned vs actual"))
	fmt.Printf(" %s%d min planned · %d min actual\n",
		output.StyleLabel.Render("Minutes"),
		out.Daily.PlannedMinutes, out.Daily.ActualMinutes)

	fmt.Println(output.Section("Weekly productivity"))
	weekTable := output.NewTable("DATE", "PRODUCTIVITY").AlignRight(1)
	for _, pt := range out.Weekly {
		weekTable.AddRow(pt.Date, fmt.Sprintf("%d%%", pt.Ratio))
	}
	fmt.Println()
	weekTable.Print()

	if len(out.Monthly) > 0 {
		fmt.Println(output.Section("Monthly productivity"))
		monthTable := output.NewTable("MONTH", "PRODUCTIVITY").AlignRight(1)
		for _, pt := range out.Monthly {
			monthTable.AddRow(pt.Month, fmt.Sprintf("%d%%", pt.Ratio))
		}
		fmt.Println()
		monthTable.Print()
	}

	if len(out.Category) > 0 {
		fmt.Println(output.Section("Time by category"))
		catTable := output.NewTable("CATEGORY", "ACTUAL MIN").AlignRight(1)
		for _, c := range sortedKeys(out.Category) {
			catTable.AddRow(c, fmt.Sprintf("%d", out.Category[c]))
		}
		fmt.Println()
		catTable.Print()
	}
	fmt.Println()
}

// sortedKeys returns a map's keys in lexical order for stable rendering.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
