package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent analysis runs",
	RunE:  runHistory,
}

var (
	historyLimit  int
	historyConfig string
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", history.DefaultRecentLimit, "Number of runs to show")
	historyCmd.Flags().StringVarP(&historyConfig, "config", "c", "", "Path to JSON config file")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(historyConfig, config.Config{HistorySize: historyLimit})
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("history requires a database URL (config file or DATABASE_URL)")
	}

	ctx := cmd.Context()

	store, err := history.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(ctx, cfg.HistorySize)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No saved runs")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("%s  %s  %s\n", run.CreatedAt.Format("2006-01-02 15:04"), run.ID, run.ResumeName)
		fmt.Printf("  words %d, contact %d/100, bullets %d, verb score %.1f\n",
			run.Record.WordCount, run.Record.ContactScore, run.Record.BulletCount, run.Record.VerbScore)
		if run.Record.MatchScore > 0 {
			fmt.Printf("  match %.0f/100: %s\n", run.Record.MatchScore, run.Record.MatchReasoning)
		}
	}

	return nil
}
