package main

import (
	"fmt"
	"log/slog"

	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/cli"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/storage"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent pipeline runs from the catalog",
		RunE:  runHistory,
	}

	cmd.Flags().Int("limit", 10, "number of runs to show")
	cmd.Flags().Bool("failures", false, "list failing reports from the latest run")

	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	catalog, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := catalog.Close(); closeErr != nil {
			slog.Warn("Failed to close catalog", "error", closeErr)
		}
	}()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := catalog.RecentRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println(cli.FormatWarning("No runs recorded yet"))
		return nil
	}

	showFailures, _ := cmd.Flags().GetBool("failures")
	if showFailures {
		return printFailures(cmd, catalog, runs[0].ID)
	}

	fmt.Println(cli.FormatTitle("Recent runs"))
	for _, run := range runs {
		status := cli.FormatSuccess(fmt.Sprintf("%d processed", run.Processed))
		if run.Failed > 0 {
			status = cli.FormatError(fmt.Sprintf("%d failed", run.Failed)) + ", " + status
		}
		fmt.Printf("  %s  %s  (%s, %d skipped)\n",
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			cli.SubtleStyle.Render(run.ID[:8]),
			status,
			run.Skipped)
	}

	return nil
}

func printFailures(cmd *cobra.Command, catalog *storage.SQLiteCatalog, runID string) error {
	failures, err := catalog.FailedReports(cmd.Context(), runID)
	if err != nil {
		return err
	}

	if len(failures) == 0 {
		fmt.Println(cli.FormatSuccess("No failures in the latest run"))
		return nil
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Failures in run %s", runID[:8])))
	for _, failure := range failures {
		fmt.Printf("  %s\n    %s\n",
			cli.FormatError(failure.SourceFile),
			cli.SubtleStyle.Render(failure.Error))
	}

	return nil
}
