package analysis

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/exporter"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/model"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/report"
)

// MaxDPDMonths measures delinquency severity: the largest number of 30+ DPD
// months any single trade of a customer has accumulated.
type MaxDPDMonths struct {
	codes   report.Table
	results []maxDPDResult
}

type maxDPDResult struct {
	customerID string
	maxMonths  int
	loans      []loanDPDCount
}

type loanDPDCount struct {
	accountType   string
	disbursedDate string
	months        []DPDMonth
}

// NewMaxDPDMonths creates the delinquency severity analysis.
func NewMaxDPDMonths(codes report.Table) *MaxDPDMonths {
	return &MaxDPDMonths{codes: codes}
}

// Name implements Analysis.
func (a *MaxDPDMonths) Name() string { return "max_dpd_months" }

// Add implements Analysis.
func (a *MaxDPDMonths) Add(customerID string, doc *model.AnalysisDocument) {
	result := maxDPDResult{customerID: customerID}

	for _, loan := range doc.Loans {
		months := delinquentMonths(a.codes, customerID, loan)
		result.loans = append(result.loans, loanDPDCount{
			accountType:   loan.AccountType,
			disbursedDate: loan.DisbursedDate,
			months:        months,
		})
		if len(months) > result.maxMonths {
			result.maxMonths = len(months)
		}
	}

	a.results = append(a.results, result)
}

// SummaryTable implements Analysis.
func (a *MaxDPDMonths) SummaryTable() ([]string, [][]string) {
	headers := []string{"Customer ID", "Maximum 30+ DPD Months"}
	rows := make([][]string, 0, len(a.results))
	for _, r := range a.results {
		rows = append(rows, []string{r.customerID, strconv.Itoa(r.maxMonths)})
	}
	return headers, rows
}

// Write implements Analysis.
func (a *MaxDPDMonths) Write(dir string, w *exporter.CSVWriter) error {
	headers, rows := a.SummaryTable()
	if err := w.WriteSimpleCSV(filepath.Join(dir, "max_dpd_summary.csv"), headers, rows); err != nil {
		return fmt.Errorf("failed to write max DPD summary: %w", err)
	}

	// Details list only loans that were ever delinquent.
	var details [][]string
	for _, r := range a.results {
		for _, loan := range r.loans {
			if len(loan.months) == 0 {
				continue
			}
			details = append(details, []string{
				r.customerID,
				loan.accountType,
				loan.disbursedDate,
				strconv.Itoa(len(loan.months)),
				formatMonths(loan.months),
			})
		}
	}
	detailHeaders := []string{"Customer ID", "Loan Type", "Disbursed Date", "Number of 30+ DPD Months", "DPD Details"}
	if err := w.WriteSimpleCSV(filepath.Join(dir, "max_dpd_details.csv"), detailHeaders, details); err != nil {
		return fmt.Errorf("failed to write max DPD details: %w", err)
	}

	var overallMax int
	for _, r := range a.results {
		if r.maxMonths > overallMax {
			overallMax = r.maxMonths
		}
	}
	var atMax []string
	for _, r := range a.results {
		if r.maxMonths == overallMax {
			atMax = append(atMax, r.customerID)
		}
	}
	stats := [][]string{
		{"Overall Maximum 30+ DPD Months", strconv.Itoa(overallMax)},
		{"Customers with Maximum DPD", strings.Join(atMax, ", ")},
		{"Total Customers Analyzed", strconv.Itoa(len(a.results))},
	}
	if err := w.WriteSimpleCSV(filepath.Join(dir, "max_dpd_overall_stats.csv"), []string{"Metric", "Value"}, stats); err != nil {
		return fmt.Errorf("failed to write max DPD overall stats: %w", err)
	}

	return nil
}
