// Package service defines the interfaces and shared result types for the
// pipeline's collaborators.
package service

import (
	"context"
	"time"
)

// Report processing outcomes recorded in the catalog.
const (
	StatusProcessed = "processed"
	StatusFailed    = "failed"
)

// Catalog records batch runs and per-report outcomes so operators can audit
// history and the pipeline can skip unchanged inputs. Implementations must
// be safe for concurrent use by the clean-stage workers.
type Catalog interface {
	// Migrate brings the catalog schema up to date.
	Migrate(ctx context.Context) error

	// Run tracking.
	BeginRun(ctx context.Context) (string, error)
	FinishRun(ctx context.Context, runID string, summary *RunSummary) error
	RecentRuns(ctx context.Context, limit int) ([]Run, error)

	// Report tracking.
	RecordReport(ctx context.Context, record ReportRecord) error
	IsProcessed(ctx context.Context, checksum string) (bool, error)
	FailedReports(ctx context.Context, runID string) ([]ReportRecord, error)

	Close() error
}

// Run is one recorded pipeline invocation.
type Run struct {
	StartedAt  time.Time
	FinishedAt time.Time
	ID         string
	Processed  int
	Skipped    int
	Failed     int
}

// ReportRecord is the catalog entry for a single source report.
type ReportRecord struct {
	ProcessedAt time.Time
	CustomerID  string
	SourceFile  string
	Checksum    string
	ReportDate  string
	Status      string
	Error       string
	RunID       string
	LoanCount   int
}

// FileFailure pairs a failed source file with its error.
type FileFailure struct {
	File string
	Err  string
}

// RunSummary is the outcome of one clean-stage run.
type RunSummary struct {
	RunID     string
	Failures  []FileFailure
	Processed int
	Skipped   int
	Failed    int
	Duration  time.Duration
}
