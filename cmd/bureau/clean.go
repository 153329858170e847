package main

import (
	"fmt"

	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/cli"
	"github.com/spf13/cobra"
)

func cleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Convert raw XML reports into interim analysis documents",
		Long: `Parse each bureau XML report in the input directory, normalize it, and
persist the projected analysis document as formatted_<stem>.json in the
interim directory. Corrupt files are logged and skipped.

Examples:
  # Clean with defaults
  bureau clean

  # Clean a specific drop, printing a summary box per report
  bureau clean --input ~/drops/2026-08 --summary`,
		RunE: runClean,
	}

	addStageFlags(cmd, true, false)

	return cmd
}

func runClean(cmd *cobra.Command, _ []string) error {
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

	return nil
}
