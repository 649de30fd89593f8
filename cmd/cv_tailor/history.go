package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List recent match runs from the history database",
	Long:  "Without arguments, list the most recent match runs. With a run ID, print the full stored match result for that run.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

var (
	historyDatabaseURL string
	historyLimit       int
)

func init() {
	historyCmd.Flags().StringVar(&historyDatabaseURL, "db-url", "", "PostgreSQL URL (default: DATABASE_URL env var)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs to list")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, args []string) error {
	var runID uuid.UUID
	if len(args) == 1 {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid run ID %q: %w", args[0], err)
		}
		runID = id
	}

	cfg, err := loadConfig("")
	if err != nil {
		return err
	}
	databaseURL := firstNonEmpty(historyDatabaseURL, cfg.DatabaseURL)
	if databaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or use --db-url)")
	}

	ctx := context.Background()
	history, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer history.Close()

	if len(args) == 1 {
		result, err := history.GetMatch(ctx, runID)
		if err != nil {
			return err
		}
		if result == nil {
			return fmt.Errorf("no match run recorded with ID %s", runID)
		}
		return writeJSON("", result)
	}

	records, err := history.ListMatches(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No match runs recorded.")
		return nil
	}

	for _, r := range records {
		title := r.JobTitle
		if title == "" {
			title = "(unknown role)"
		}
		company := r.Company
		if company == "" {
			company = "(unknown company)"
		}
		fmt.Printf("%s  %5.1f%%  %s @ %s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.OverallScore, title, company, r.ID)
	}
	return nil
}
