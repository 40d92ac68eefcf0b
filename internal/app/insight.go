package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sarfrazcodes/tracker-dashboard/internal/analytics"
	"github.com/sarfrazcodes/tracker-dashboard/internal/config"
	"github.com/sarfrazcodes/tracker-dashboard/internal/insight"
	"github.com/sarfrazcodes/tracker-dashboard/internal/output"
	"github.com/sarfrazcodes/tracker-dashboard/internal/store"
	"github.com/spf13/cobra"
)

var insightShowPayload bool

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Generate an AI insight from your metrics",
	Long: `Aggregate the full task history and send a summary payload (daily
totals, weekly and monthly series, category distribution) to the Gemini
API for a short personalized insight.

The API key is read from the environment variable named by
insight.api_key_env in the config (default GEMINI_API_KEY); a .env file
in the working directory or the config directory is loaded first. If the
service is unavailable the command prints a fallback message and exits 0.`,
	RunE: runInsight,
}

func init() {
	insightCmd.Flags().BoolVar(&insightShowPayload, "payload", false, "Print the request payload instead of calling the service")
	rootCmd.AddCommand(insightCmd)
}

func runInsight(cmd *cobra.Command, args []string) error {
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

	bundle := analytics.Aggregate(records, time.Now(), cfg.GoalMinutes)
	payload := analytics.InsightPayload(bundle)

	if insightShowPayload {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	apiKey := loadAPIKey(cfg.Insight.APIKeyEnv)
	if apiKey == "" {
		return fmt.Errorf("no API key: set %s or add it to a .env file", cfg.Insight.APIKeyEnv)
	}

	text, err := insight.Generate(payload, apiKey, cfg.Insight.Model)
	if err != nil {
		// Service failures are not fatal; the dashboard shows a fallback.
		fmt.Println(insight.Fallback)
		fmt.Println(output.StyleMuted.Render("(" + err.Error() + ")"))
		return nil
	}

	fmt.Println(output.Section("AI Insight"))
	fmt.Println()
	fmt.Println(text)
	fmt.Println()
	return nil
}

// loadAPIKey reads the insight API key, consulting .env files in the
// working directory and the config directory before the environment.
func loadAPIKey(envVar string) string {
	_ = godotenv.Load()
	_ = godotenv.Load(filepath.Join(config.ConfigDir(), ".env"))
	return os.Getenv(envVar)
}
