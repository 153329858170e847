package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/service"
)

// BeginRun inserts a new run and returns its ID.
func (c *SQLiteCatalog) BeginRun(ctx context.Context) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}

	runID := uuid.NewString()
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at) VALUES (?, ?)`,
		runID, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to begin run: %w", err)
	}

	return runID, nil
}

// FinishRun records the final counts for a run.
func (c *SQLiteCatalog) FinishRun(ctx context.Context, runID string, summary *service.RunSummary) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(runID, "runID"); err != nil {
		return err
	}

	result, err := c.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, processed = ?, skipped = ?, failed = ? WHERE id = ?`,
		time.Now().UTC(), summary.Processed, summary.Skipped, summary.Failed, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check run update: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("run %s does not exist", runID)
	}

	return nil
}

// RecentRuns returns runs ordered newest first.
func (c *SQLiteCatalog) RecentRuns(ctx context.Context, limit int) ([]service.Run, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := c.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, processed, skipped, failed
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []service.Run
	for rows.Next() {
		var run service.Run
		var finished sql.NullTime
		if err := rows.Scan(&run.ID, &run.StartedAt, &finished, &run.Processed, &run.Skipped, &run.Failed); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if finished.Valid {
			run.FinishedAt = finished.Time
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}
