package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Workbook builds a consolidated XLSX file with one sheet per analysis
// summary, for analysts who want a single artifact instead of the CSV sets.
type Workbook struct {
	file   *excelize.File
	sheets int
}

// NewWorkbook creates an empty workbook.
func NewWorkbook() *Workbook {
	return &Workbook{file: excelize.NewFile()}
}

// AddSheet appends a sheet with a header row followed by the records.
func (w *Workbook) AddSheet(name string, headers []string, records [][]string) error {
	if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	w.sheets++

	if err := w.writeRow(name, 1, headers); err != nil {
		return err
	}
	for i, record := range records {
		if err := w.writeRow(name, i+2, record); err != nil {
			return err
		}
	}

	return nil
}

func (w *Workbook) writeRow(sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}

	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}

	if err := w.file.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", row, sheet, err)
	}

	return nil
}

// Save writes the workbook to path, dropping the default empty sheet when
// at least one analysis sheet exists.
func (w *Workbook) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if w.sheets > 0 {
		if err := w.file.DeleteSheet("Sheet1"); err != nil {
			slog.Warn("Failed to remove default sheet", "error", err)
		}
	}

	if err := w.file.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	slog.Info("Wrote workbook", "file", path, "sheets", w.sheets)

	return nil
}
