package analysis

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/exporter"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/model"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/report"
)

// DelinquencyIncidence measures how many of each customer's trades have
// ever hit 30+ DPD.
type DelinquencyIncidence struct {
	codes   report.Table
	results []dpdResult
}

type dpdResult struct {
	customerID string
	stats      DPDStats
}

// DPDStats is one customer's delinquency incidence.
type DPDStats struct {
	Loans               []LoanDPD
	TotalTrades         int
	TradesWith30PlusDPD int
	Percentage          float64
}

// LoanDPD is the per-loan breakdown behind the incidence numbers.
type LoanDPD struct {
	AccountType string
	Status      string
	Months      []DPDMonth
}

// NewDelinquencyIncidence creates the delinquency incidence analysis.
func NewDelinquencyIncidence(codes report.Table) *DelinquencyIncidence {
	return &DelinquencyIncidence{codes: codes}
}

// Name implements Analysis.
func (a *DelinquencyIncidence) Name() string { return "dpd" }

// Add implements Analysis.
func (a *DelinquencyIncidence) Add(customerID string, doc *model.AnalysisDocument) {
	stats := DPDStats{TotalTrades: len(doc.Loans)}

	for _, loan := range doc.Loans {
		months := delinquentMonths(a.codes, customerID, loan)
		stats.Loans = append(stats.Loans, LoanDPD{
			AccountType: loan.AccountType,
			Status:      loan.Status,
			Months:      months,
		})
		if len(months) > 0 {
			stats.TradesWith30PlusDPD++
		}
	}

	// A customer with no trades has a defined incidence of zero.
	if stats.TotalTrades > 0 {
		stats.Percentage = float64(stats.TradesWith30PlusDPD) / float64(stats.TotalTrades) * 100
	}

	a.results = append(a.results, dpdResult{customerID: customerID, stats: stats})
}

// SummaryTable implements Analysis.
func (a *DelinquencyIncidence) SummaryTable() ([]string, [][]string) {
	headers := []string{"Customer ID", "Total Trades", "30+ DPD Trades", "Percentage"}
	rows := make([][]string, 0, len(a.results))
	for _, r := range a.results {
		percent := "0%"
		if r.stats.TotalTrades > 0 {
			percent = formatPercent(r.stats.Percentage)
		}
		rows = append(rows, []string{
			r.customerID,
			strconv.Itoa(r.stats.TotalTrades),
			strconv.Itoa(r.stats.TradesWith30PlusDPD),
			percent,
		})
	}
	return headers, rows
}

// Write implements Analysis.
func (a *DelinquencyIncidence) Write(dir string, w *exporter.CSVWriter) error {
	headers, rows := a.SummaryTable()
	if err := w.WriteSimpleCSV(filepath.Join(dir, "dpd_summary.csv"), headers, rows); err != nil {
		return fmt.Errorf("failed to write DPD summary: %w", err)
	}

	var details [][]string
	for _, r := range a.results {
		for _, loan := range r.stats.Loans {
			has30Plus := "No"
			if len(loan.Months) > 0 {
				has30Plus = "Yes"
			}
			details = append(details, []string{
				r.customerID,
				loan.AccountType,
				loan.Status,
				has30Plus,
				formatMonths(loan.Months),
			})
		}
	}
	detailHeaders := []string{"Customer ID", "Loan Type", "Loan Status", "Has 30+ DPD", "DPD Months"}
	if err := w.WriteSimpleCSV(filepath.Join(dir, "dpd_details.csv"), detailHeaders, details); err != nil {
		return fmt.Errorf("failed to write DPD details: %w", err)
	}

	var totalTrades, delinquentTrades int
	for _, r := range a.results {
		totalTrades += r.stats.TotalTrades
		delinquentTrades += r.stats.TradesWith30PlusDPD
	}
	overall := "0%"
	if totalTrades > 0 {
		overall = formatPercent(float64(delinquentTrades) / float64(totalTrades) * 100)
	}
	stats := [][]string{
		{"Total Trades", strconv.Itoa(totalTrades)},
		{"Trades with 30+ DPD", strconv.Itoa(delinquentTrades)},
		{"Overall Percentage", overall},
	}
	if err := w.WriteSimpleCSV(filepath.Join(dir, "dpd_overall_stats.csv"), []string{"Metric", "Value"}, stats); err != nil {
		return fmt.Errorf("failed to write DPD overall stats: %w", err)
	}

	return nil
}
