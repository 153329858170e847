package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/analysis"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/cli"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/exporter"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/model"
)

var renderSummary = cli.RenderReportSummary

// Analyze runs the analysis set over the interim documents in the interim
// directory, writing each analysis's CSV files under the results directory
// and, when requested, a consolidated workbook.
func (p *Pipeline) Analyze(ctx context.Context) error {
	files, err := filepath.Glob(filepath.Join(p.cfg.InterimDir, "formatted_*.json"))
	if err != nil {
		return fmt.Errorf("failed to list interim directory: %w", err)
	}
	sort.Strings(files)

	if len(files) == 0 {
		slog.Warn("No interim documents found", "dir", p.cfg.InterimDir)
		return nil
	}

	analyses := analysis.All(p.codes)
	if p.opts.Only != "" {
		analyses = filterAnalyses(analyses, p.opts.Only)
		if len(analyses) == 0 {
			return fmt.Errorf("unknown analysis: %s", p.opts.Only)
		}
	}

	slog.Info("Analyzing interim documents",
		"file_count", len(files),
		"analyses", len(analyses))

	for _, file := range files {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		doc, err := readInterim(file)
		if err != nil {
			slog.Error("Failed to read interim document", "file", file, "error", err)
			continue
		}

		customerID := InterimCustomerID(file)
		for _, a := range analyses {
			a.Add(customerID, doc)
		}

		slog.Debug("Analyzed document", "file", filepath.Base(file), "customer", customerID)
	}

	writer := exporter.NewCSVWriter()
	for _, a := range analyses {
		dir := filepath.Join(p.cfg.ResultsDir, a.Name()+"_analysis")
		if err := a.Write(dir, writer); err != nil {
			return fmt.Errorf("%s analysis: %w", a.Name(), err)
		}
		slog.Info("Wrote analysis results", "analysis", a.Name(), "dir", dir)
	}

	if p.opts.Workbook {
		if err := p.writeWorkbook(analyses); err != nil {
			return err
		}
	}

	return nil
}

func (p *Pipeline) writeWorkbook(analyses []analysis.Analysis) error {
	workbook := exporter.NewWorkbook()
	for _, a := range analyses {
		headers, rows := a.SummaryTable()
		if err := workbook.AddSheet(a.Name(), headers, rows); err != nil {
			return fmt.Errorf("workbook sheet %s: %w", a.Name(), err)
		}
	}
	return workbook.Save(filepath.Join(p.cfg.ResultsDir, "portfolio_summary.xlsx"))
}

func filterAnalyses(analyses []analysis.Analysis, only string) []analysis.Analysis {
	var kept []analysis.Analysis
	for _, a := range analyses {
		if a.Name() == only {
			kept = append(kept, a)
		}
	}
	return kept
}

func readInterim(path string) (*model.AnalysisDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read interim document: %w", err)
	}

	var doc model.AnalysisDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode interim document: %w", err)
	}

	return &doc, nil
}
