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
	"github.com/sarfrazcodes/tracker-dashboard/internal/task"
	"github.com/spf13/cobra"
)

var listWindow string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged tasks",
	Long: `List tasks in a view window: today, the trailing 7 days, or the full
history (the default).

Examples:
  tracker list
  tracker list --window today
  tracker list --window trailing7 --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listWindow, "window", "all", "View window: today, trailing7, or all")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
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

	records, err := fetchWindow(db, cfg.User, analytics.ParseWindow(listWindow), time.Now())
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No tasks logged for this window.")
		return nil
	}

	table := output.NewTable("DATE", "ACTIVITY", "CATEGORY", "PLANNED", "ACTUAL", "DONE", "ID").
		AlignRight(3, 4)
	for _, r := range records {
		done := ""
		if r.IsCompleted {
			done = "✓"
		}
		table.AddRow(
			r.TaskDate,
			truncate(r.Activity, 32),
			r.Category,
			fmt.Sprintf("%d", r.PlannedMinutes),
			fmt.Sprintf("%d", r.ActualMinutes),
			done,
			shortID(r.ID),
		)
	}
	table.Print()
	return nil
}

// fetchWindow loads one user's records for a view window. Today and the
// trailing week push the date bound into the query; the full history
// fetches everything.
func fetchWindow(db *store.DB, userID string, w analytics.Window, today time.Time) ([]task.Record, error) {
	switch w {
	case analytics.WindowToday:
		return db.TasksForDay(userID, analytics.DayKey(today))
	case analytics.WindowTrailing7:
		return db.ListTasks(userID, analytics.LastNDays(7, today)[0])
	default:
		return db.ListTasks(userID, "")
	}
}

// shortID trims a UUID to its first segment for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate shortens a string for table layout.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
