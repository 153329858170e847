package main

import (
	"fmt"

	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/cli"
	"github.com/spf13/cobra"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Clean raw reports and run all analyses",
		Long: `Run the full pipeline: convert every XML report in the input directory
into an interim JSON document, then compute the analysis CSV sets over them.

Examples:
  # Full pipeline with defaults
  bureau run

  # Reprocess everything and produce the consolidated workbook
  bureau run --force --workbook`,
		RunE: runRun,
	}

	addStageFlags(cmd, true, true)

	return cmd
}

func runRun(cmd *cobra.Command, _ []string) error {
	p, cleanup, err := buildPipeline(cmd)
	defer cleanup()
	if err != nil {
		return err
	}

	summary, err := p.Clean(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Println(cli.RenderRunSummary(summary))

	if summary.Processed == 0 && summary.Skipped == 0 {
		return nil
	}

	return p.Analyze(cmd.Context())
}
