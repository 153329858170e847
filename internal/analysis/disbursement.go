package analysis

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/exporter"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/model"
)

// Disbursements totals the disbursed amounts across each customer's loans.
type Disbursements struct {
	results []disbursementResult
}

type disbursementResult struct {
	customerID string
	total      float64
	loans      []loanDisbursement
}

type loanDisbursement struct {
	accountType string
	date        string
	status      string
	amount      float64
}

// NewDisbursements creates the disbursement totals analysis.
func NewDisbursements() *Disbursements {
	return &Disbursements{}
}

// Name implements Analysis.
func (a *Disbursements) Name() string { return "disbursements" }

// Add implements Analysis.
func (a *Disbursements) Add(customerID string, doc *model.AnalysisDocument) {
	result := disbursementResult{customerID: customerID}

	for _, loan := range doc.Loans {
		amount := ParseAmount(loan.Amount)
		result.total += amount
		result.loans = append(result.loans, loanDisbursement{
			accountType: loan.AccountType,
			amount:      amount,
			date:        loan.DisbursedDate,
			status:      loan.Status,
		})
	}

	a.results = append(a.results, result)
}

// SummaryTable implements Analysis.
func (a *Disbursements) SummaryTable() ([]string, [][]string) {
	headers := []string{"Customer ID", "Total Disbursed", "Number of Loans", "Average per Loan"}
	rows := make([][]string, 0, len(a.results))
	for _, r := range a.results {
		var avg float64
		if len(r.loans) > 0 {
			avg = r.total / float64(len(r.loans))
		}
		rows = append(rows, []string{
			r.customerID,
			FormatAmount(r.total),
			strconv.Itoa(len(r.loans)),
			FormatAmount(avg),
		})
	}
	return headers, rows
}

// Write implements Analysis.
func (a *Disbursements) Write(dir string, w *exporter.CSVWriter) error {
	headers, rows := a.SummaryTable()
	if err := w.WriteSimpleCSV(filepath.Join(dir, "disbursement_summary.csv"), headers, rows); err != nil {
		return fmt.Errorf("failed to write disbursement summary: %w", err)
	}

	var details [][]string
	for _, r := range a.results {
		for _, loan := range r.loans {
			details = append(details, []string{
				r.customerID,
				loan.accountType,
				FormatAmount(loan.amount),
				loan.date,
				loan.status,
			})
		}
	}
	detailHeaders := []string{"Customer ID", "Loan Type", "Amount", "Date", "Status"}
	if err := w.WriteSimpleCSV(filepath.Join(dir, "disbursement_details.csv"), detailHeaders, details); err != nil {
		return fmt.Errorf("failed to write disbursement details: %w", err)
	}

	var grandTotal float64
	var totalLoans int
	for _, r := range a.results {
		grandTotal += r.total
		totalLoans += len(r.loans)
	}
	var avgTotal, avgLoans float64
	if len(a.results) > 0 {
		avgTotal = grandTotal / float64(len(a.results))
		avgLoans = float64(totalLoans) / float64(len(a.results))
	}
	stats := [][]string{
		{"Total Disbursed Across All Customers", FormatAmount(grandTotal)},
		{"Average Disbursed per Customer", FormatAmount(avgTotal)},
		{"Average Number of Loans per Customer", fmt.Sprintf("%.2f", avgLoans)},
	}
	if err := w.WriteSimpleCSV(filepath.Join(dir, "disbursement_overall_stats.csv"), []string{"Metric", "Value"}, stats); err != nil {
		return fmt.Errorf("failed to write disbursement overall stats: %w", err)
	}

	return nil
}
