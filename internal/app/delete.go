package app

import (
	"fmt"
	"strings"

	"github.com/sarfrazcodes/tracker-dashboard/internal/config"
	"github.com/sarfrazcodes/tracker-dashboard/internal/store"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Remove a task",
	Long: `Delete a task by ID. A short ID prefix from 'tracker list' works as
long as it is unambiguous.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
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

	if err := db.DeleteTask(cfg.User, id); err != nil {
		return err
	}
	fmt.Println("Deleted", id)
	return nil
}

// resolveID expands a short ID prefix to the full task ID, erroring when
// the prefix matches zero or multiple tasks.
func resolveID(db *store.DB, userID, prefix string) (string, error) {
	if rec, err := db.GetTask(userID, prefix); err != nil {
		return "", err
	} else if rec != nil {
		return rec.ID, nil
	}

	records, err := db.ListTasks(userID, "")
	if err != nil {
		return "", err
	}

	var matches []string
	for _, r := range records {
		if strings.HasPrefix(r.ID, prefix) {
			matches = append(matches, r.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no task with id %s", prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id prefix %s is ambiguous (%d matches)", prefix, len(matches))
	}
}
