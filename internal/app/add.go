package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sarfrazcodes/tracker-dashboard/internal/analytics"
	"github.com/sarfrazcodes/tracker-dashboard/internal/config"
	"github.com/sarfrazcodes/tracker-dashboard/internal/output"
	"github.com/sarfrazcodes/tracker-dashboard/internal/store"
	"github.com/sarfrazcodes/tracker-dashboard/internal/task"
	"github.com/spf13/cobra"
)

var (
	addDate     string
	addPlanned  int
	addCategory string
	addPriority string
	addNotes    string
)

var addCmd = &cobra.Command{
	Use:   "add <activity>",
	Short: "Log a task with planned time and category",
	Long: `Add a task entry for a calendar day. Tasks start incomplete with zero
actual minutes; record actual time later with 'tracker done'.

Examples:
  tracker add "Write report" --planned 90 --category Work
  tracker add "Leg day" --planned 60 --category Gym --date 2026-08-28
  tracker add "Read paper" --planned 45 --priority High --notes "ch. 3-4"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "Task date YYYY-MM-DD (default: today)")
	addCmd.Flags().IntVar(&addPlanned, "planned", 0, "Planned minutes")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Category label (default: Other)")
	addCmd.Flags().StringVar(&addPriority, "priority", task.PriorityMedium, "Priority: High, Medium, or Low")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Optional note")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor {
		output.SetNoColor(true)
	}

	now := time.Now()
	date := addDate
	if date == "" {
		date = analytics.DayKey(now)
	}

	rec := task.Record{
		ID:             uuid.NewString(),
		UserID:         cfg.User,
		Activity:       strings.Join(args, " "),
		TaskDate:       date,
		PlannedMinutes: addPlanned,
		Category:       addCategory,
		Priority:       normalizePriority(addPriority),
		Notes:          addNotes,
		CreatedAt:      now.Format(time.RFC3339),
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.InsertTask(&rec); err != nil {
		return err
	}

	fmt.Printf("Added %s (%s, %d min planned) for %s\n",
		output.StyleBold.Render(rec.Activity),
		rec.Category, rec.PlannedMinutes, rec.TaskDate)
	fmt.Println(output.StyleMuted.Render("id: " + rec.ID))
	return nil
}

// normalizePriority maps any casing of the priority flag to the canonical
// constants, defaulting to Medium.
func normalizePriority(p string) string {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "high":
		return task.PriorityHigh
	case "low":
		return task.PriorityLow
	default:
		return task.PriorityMedium
	}
}
