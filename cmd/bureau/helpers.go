package main

import (
	"fmt"
	"log/slog"

	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/config"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/pipeline"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/report"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/service"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/storage"
	"github.com/spf13/cobra"
)

// addStageFlags registers the flags shared by the clean and analyze stages.
func addStageFlags(cmd *cobra.Command, clean, analyze bool) {
	cmd.Flags().Bool("no-catalog", false, "run without the SQLite run catalog")
	if clean {
		cmd.Flags().BoolP("force", "f", false, "reprocess reports even if unchanged")
		cmd.Flags().Bool("summary", false, "print a per-report summary box after cleaning")
		cmd.Flags().Bool("no-progress", false, "disable the progress bar")
		cmd.Flags().Int("workers", 0, "number of concurrent workers (default: CPU count, capped at 8)")
	}
	if analyze {
		cmd.Flags().String("only", "", "run a single analysis (dpd, max_dpd_months, disbursements)")
		cmd.Flags().Bool("workbook", false, "also write a consolidated XLSX workbook")
	}
}

// buildPipeline assembles the pipeline from config and flags. The returned
// cleanup closes the catalog and must run even on error paths.
func buildPipeline(cmd *cobra.Command) (*pipeline.Pipeline, func(), error) {
	cleanup := func() {}

	cfg, err := config.Load()
	if err != nil {
		return nil, cleanup, err
	}

	if workers, flagErr := cmd.Flags().GetInt("workers"); flagErr == nil && workers > 0 {
		cfg.Workers = workers
	}

	opts := pipeline.Options{}
	opts.Force, _ = cmd.Flags().GetBool("force")
	opts.Summary, _ = cmd.Flags().GetBool("summary")
	opts.NoProgress, _ = cmd.Flags().GetBool("no-progress")
	opts.Workbook, _ = cmd.Flags().GetBool("workbook")
	opts.Only, _ = cmd.Flags().GetString("only")

	codes := report.DefaultTable()
	if cfg.DPDCodesFile != "" {
		codes, err = report.LoadTable(cfg.DPDCodesFile)
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to load DPD codes: %w", err)
		}
	}

	var catalog service.Catalog
	if noCatalog, _ := cmd.Flags().GetBool("no-catalog"); !noCatalog {
		store, catErr := storage.NewSQLiteCatalog(cfg.DatabasePath)
		if catErr != nil {
			return nil, cleanup, fmt.Errorf("failed to open catalog: %w", catErr)
		}
		if migErr := store.Migrate(cmd.Context()); migErr != nil {
			_ = store.Close()
			return nil, cleanup, fmt.Errorf("failed to migrate catalog: %w", migErr)
		}
		catalog = store
		cleanup = func() {
			if closeErr := store.Close(); closeErr != nil {
				slog.Warn("Failed to close catalog", "error", closeErr)
			}
		}
	}

	return pipeline.New(cfg, catalog, codes, opts), cleanup, nil
}

// openCatalog opens the catalog directly for read-only commands.
func openCatalog(cmd *cobra.Command) (*storage.SQLiteCatalog, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteCatalog(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	if err := store.Migrate(cmd.Context()); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate catalog: %w", err)
	}

	return store, nil
}
