// Package app contains the Cobra command tree for tracker.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Personal productivity tracker with analytics and AI insights",
	Long: `tracker logs daily tasks with planned and actual time, then derives
productivity metrics from them: daily totals, weekly and monthly trends,
category distribution, completion streaks, and goal progress. An optional
insight command sends the aggregated numbers to an AI service for a short
personalized suggestion.

Run 'tracker stats' for today's dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("tracker", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  add        Log a task with planned time and category")
		fmt.Println("  done       Mark a task completed with actual time")
		fmt.Println("  list       List logged tasks")
		fmt.Println("  delete     Remove a task")
		fmt.Println("  stats      Today's dashboard: totals, score, streak, goal")
		fmt.Println("  analytics  Weekly, monthly, and category rollups")
		fmt.Println("  insight    Generate an AI insight from your metrics")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/tracker/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}
