package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/service"
)

// RecordReport upserts the outcome for a source report, keyed by checksum
// so a re-run of the same bytes replaces the previous entry.
func (c *SQLiteCatalog) RecordReport(ctx context.Context, record service.ReportRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(record.Checksum, "checksum"); err != nil {
		return err
	}

	_, err := c.db.ExecContext(ctx,
		`INSERT INTO reports (checksum, customer_id, source_file, loan_count, report_date, status, error, run_id, processed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(checksum) DO UPDATE SET
			customer_id = excluded.customer_id,
			source_file = excluded.source_file,
			loan_count = excluded.loan_count,
			report_date = excluded.report_date,
			status = excluded.status,
			error = excluded.error,
			run_id = excluded.run_id,
			processed_at = excluded.processed_at`,
		record.Checksum, record.CustomerID, record.SourceFile, record.LoanCount,
		record.ReportDate, record.Status, record.Error, record.RunID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record report: %w", err)
	}

	return nil
}

// IsProcessed reports whether a report with this checksum was already
// processed successfully.
func (c *SQLiteCatalog) IsProcessed(ctx context.Context, checksum string) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateString(checksum, "checksum"); err != nil {
		return false, err
	}

	var count int
	err := c.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reports WHERE checksum = ? AND status = ?`,
		checksum, service.StatusProcessed).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check report: %w", err)
	}

	return count > 0, nil
}

// FailedReports returns the failed report entries for a run.
func (c *SQLiteCatalog) FailedReports(ctx context.Context, runID string) ([]service.ReportRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(runID, "runID"); err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx,
		`SELECT checksum, customer_id, source_file, loan_count, report_date, status, error, run_id, processed_at
		 FROM reports WHERE run_id = ? AND status = ? ORDER BY source_file`,
		runID, service.StatusFailed)
	if err != nil {
		return nil, fmt.Errorf("failed to query failed reports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []service.ReportRecord
	for rows.Next() {
		var record service.ReportRecord
		if err := rows.Scan(&record.Checksum, &record.CustomerID, &record.SourceFile,
			&record.LoanCount, &record.ReportDate, &record.Status, &record.Error,
			&record.RunID, &record.ProcessedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reports: %w", err)
	}

	return records, nil
}
