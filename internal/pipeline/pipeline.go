// Package pipeline orchestrates the batch flow: clean raw bureau reports
// into interim documents, then run the analyses over them.
package pipeline

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/bureau"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/config"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/model"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/report"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/service"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// Options are the per-invocation toggles that don't belong in the config
// file.
type Options struct {
	Only       string
	Force      bool
	Summary    bool
	Workbook   bool
	NoProgress bool
}

// Pipeline runs the clean and analyze stages. The catalog may be nil for
// throwaway invocations; skip detection and history are then disabled.
type Pipeline struct {
	cfg     *config.Config
	catalog service.Catalog
	codes   report.Table
	opts    Options

	mu      sync.Mutex
	summary service.RunSummary
	printed []string
}

// New creates a pipeline.
func New(cfg *config.Config, catalog service.Catalog, codes report.Table, opts Options) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		catalog: catalog,
		codes:   codes,
		opts:    opts,
	}
}

// CustomerID derives the customer token from a report filename. The bureau
// drop names files like "report_8156.xml"; the second underscore-delimited
// token minus the extension identifies the customer. Files without an
// underscore fall back to their full stem.
func CustomerID(filename string) string {
	base := filepath.Base(filename)
	parts := strings.Split(base, "_")
	if len(parts) < 2 {
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return strings.SplitN(parts[1], ".", 2)[0]
}

// InterimCustomerID derives the customer token from an interim document
// filename. Interim files wrap the source stem as "formatted_<stem>.json",
// so the wrapping is stripped before the usual derivation; the analyze
// stage must label a customer the same way the clean stage did.
func InterimCustomerID(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return CustomerID(strings.TrimPrefix(stem, "formatted_"))
}

// InterimName returns the interim document filename for a source report.
func InterimName(sourcePath string) string {
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("formatted_%s.json", stem)
}

// Clean processes every XML report in the input directory into an interim
// JSON document. Failures are isolated per file; the returned summary
// carries the counts and per-file errors.
func (p *Pipeline) Clean(ctx context.Context) (*service.RunSummary, error) {
	started := time.Now()
	p.summary = service.RunSummary{}
	p.printed = nil

	files, err := filepath.Glob(filepath.Join(p.cfg.InputDir, "*.xml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list input directory: %w", err)
	}
	sort.Strings(files)

	if err := os.MkdirAll(p.cfg.InterimDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create interim directory: %w", err)
	}

	if len(files) == 0 {
		slog.Warn("No reports found", "dir", p.cfg.InputDir)
		return &p.summary, nil
	}

	if p.catalog != nil {
		runID, runErr := p.catalog.BeginRun(ctx)
		if runErr != nil {
			return nil, fmt.Errorf("failed to begin catalog run: %w", runErr)
		}
		p.summary.RunID = runID
	}

	slog.Info("Cleaning credit reports",
		"file_count", len(files),
		"workers", p.cfg.Workers,
		"force", p.opts.Force)

	var bar *progressbar.ProgressBar
	if !p.opts.NoProgress {
		bar = newCleanBar(len(files))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)

	for _, file := range files {
		file := file
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			p.cleanOne(gctx, file)
			if bar != nil {
				if barErr := bar.Add(1); barErr != nil {
					slog.Warn("Failed to update progress bar", "error", barErr)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("cleaning interrupted: %w", err)
	}

	p.summary.Duration = time.Since(started)

	if p.catalog != nil {
		if err := p.catalog.FinishRun(ctx, p.summary.RunID, &p.summary); err != nil {
			slog.Error("Failed to record run", "run_id", p.summary.RunID, "error", err)
		}
	}

	for _, box := range p.printed {
		fmt.Println(box)
	}

	slog.Info("Cleaning complete",
		"processed", p.summary.Processed,
		"skipped", p.summary.Skipped,
		"failed", p.summary.Failed,
		"duration", p.summary.Duration)

	return &p.summary, nil
}

// cleanOne processes a single report; every failure path records the file
// and returns without touching the rest of the batch.
func (p *Pipeline) cleanOne(ctx context.Context, file string) {
	customerID := CustomerID(file)

	data, err := os.ReadFile(file)
	if err != nil {
		p.recordFailure(ctx, file, customerID, "", err)
		return
	}
	checksum := fmt.Sprintf("%x", sha256.Sum256(data))

	interimPath := filepath.Join(p.cfg.InterimDir, InterimName(file))
	if !p.opts.Force && p.alreadyProcessed(ctx, checksum, interimPath) {
		slog.Debug("Skipping unchanged report", "file", file)
		p.mu.Lock()
		p.summary.Skipped++
		p.mu.Unlock()
		return
	}

	doc, err := processReport(data)
	if err != nil {
		p.recordFailure(ctx, file, customerID, checksum, err)
		return
	}

	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		p.recordFailure(ctx, file, customerID, checksum, err)
		return
	}
	if err := os.WriteFile(interimPath, encoded, 0o640); err != nil {
		p.recordFailure(ctx, file, customerID, checksum, err)
		return
	}

	if p.catalog != nil {
		record := service.ReportRecord{
			CustomerID: customerID,
			SourceFile: file,
			Checksum:   checksum,
			LoanCount:  len(doc.Loans),
			ReportDate: doc.ReportDate,
			Status:     service.StatusProcessed,
			RunID:      p.summary.RunID,
		}
		if err := p.catalog.RecordReport(ctx, record); err != nil {
			slog.Error("Failed to catalog report", "file", file, "error", err)
		}
	}

	p.mu.Lock()
	p.summary.Processed++
	if p.opts.Summary {
		p.printed = append(p.printed, renderSummary(customerID, doc))
	}
	p.mu.Unlock()

	slog.Info("Cleaned report",
		"file", filepath.Base(file),
		"customer", customerID,
		"loans", len(doc.Loans))
}

/// processReport runs the core conversion: parse, normalize, project.
func processReport(data []byte) (*model.AnalysisDocument, error) {
	root, err := bureau.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return report.Project(bureau.Normalize(root))
}

func (p *Pipeline) alreadyProcessed(ctx context.Context, checksum, interimPath string) bool {
	if p.catalog == nil {
		return false
	}
	processed, err := p.catalog.IsProcessed(ctx, checksum)
	if err != nil {
		slog.Warn("Failed to check catalog, reprocessing", "error", err)
		return false
	}
	if !processed {
		return false
	}
	// The interim document must still exist; a cleaned results tree means
	// the work has to happen again.
	_, err = os.Stat(interimPath)
	return err == nil
}

func (p *Pipeline) recordFailure(ctx context.Context, file, customerID string, checksum string, err error) {
	slog.Error("Failed to process report", "file", file, "error", err)

	p.mu.Lock()
	p.summary.Failed++
	p.summary.Failures = append(p.summary.Failures, service.FileFailure{File: file, Err: err.Error()})
	p.mu.Unlock()

	if p.catalog == nil || checksum == "" {
		return
	}
	record := service.ReportRecord{
		CustomerID: customerID,
		SourceFile: file,
		Checksum:   checksum,
		Status:     service.StatusFailed,
		Error:      err.Error(),
		RunID:      p.summary.RunID,
	}
	if recordErr := p.catalog.RecordReport(ctx, record); recordErr != nil {
		slog.Error("Failed to catalog failure", "file", file, "error", recordErr)
	}
}

func newCleanBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Cleaning reports..."),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
