package main

import (
	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the analyses over existing interim documents",
		Long: `Compute the analysis CSV sets from the interim documents already present
in the interim directory, without touching the raw reports.

Examples:
  # All analyses
  bureau analyze

  # Only the delinquency incidence analysis
  bureau analyze --only dpd`,
		RunE: runAnalyze,
	}

	addStageFlags(cmd, false, true)

	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	p, cleanup, err := buildPipeline(cmd)
	defer cleanup()
	if err != nil {
		return err
	}

	return p.Analyze(cmd.Context())
}
