package app

import (
	"fmt"

	"github.com/sarfrazcodes/tracker-dashboard/internal/config"
	"github.com/sarfrazcodes/tracker-dashboard/internal/output"
	"github.com/sarfrazcodes/tracker-dashboard/internal/store"
	"github.com/spf13/cobra"
)

var doneActual int

var doneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Mark a task completed with actual time",
	Long: `Mark a task completed, recording the minutes actually spent. Until a
task is completed its actual time stays 0 and it contributes only to
planned totals.

Example:
  tracker done 4f8a... --actual 75`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func init() {
	doneCmd.Flags().IntVar(&doneActual, "actual", 0, "Actual minutes spent")
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor {
		output.SetNoColor(true)
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	id, err := resolveID(db, cfg.User, args[0])
	if err != nil {
		return err
	}
	if err := db.CompleteTask(cfg.User, id, doneActual); err != nil {
		return err
	}

	rec, err := db.GetTask(cfg.User, id)
	if err != nil {
		return err
	}
	if rec != nil {
		fmt.Printf("Completed %s: %d min actual vs %d planned\n",
			output.StyleBold.Render(rec.Activity), rec.ActualMinutes, rec.PlannedMinutes)
	}
	return nil
}
