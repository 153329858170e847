// Package analysis implements the portfolio-risk analyses run over interim
// analysis documents: delinquency incidence, delinquency severity trend,
// and disbursement totals.
package analysis

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/exporter"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/model"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/report"
)

// Analysis accumulates per-customer statistics and writes its CSV set once
// the whole batch has been fed in.
type Analysis interface {
	// Name identifies the analysis; its output lands in <name>_analysis/.
	Name() string
	// Add folds one customer's document into the running results.
	Add(customerID string, doc *model.AnalysisDocument)
	// Write emits the analysis CSV files under dir.
	Write(dir string, w *exporter.CSVWriter) error
	// SummaryTable returns the per-customer summary for workbook export.
	SummaryTable() (headers []string, rows [][]string)
}

// All returns the standard analysis set in its canonical run order.
func All(codes report.Table) []Analysis {
	return []Analysis{
		NewDelinquencyIncidence(codes),
		NewMaxDPDMonths(codes),
		NewDisbursements(),
	}
}

// DPDMonth is one reporting month at or beyond the delinquency threshold.
type DPDMonth struct {
	Date string
	Days int
}

// delinquencyThreshold is the DPD cutoff above which a month counts as
// delinquent for both DPD analyses.
const delinquencyThreshold = 30

// delinquentMonths decodes a loan's payment history and returns the months
// at 30+ DPD, in reported order. An entry whose status cannot be decoded is
// skipped with a warning rather than failing the loan.
func delinquentMonths(codes report.Table, customerID string, loan model.Loan) []DPDMonth {
	var months []DPDMonth
	for _, payment := range loan.PaymentHistory {
		days, err := codes.Decode(payment.Status)
		if err != nil {
			slog.Warn("Skipping undecodable payment status",
				"customer", customerID,
				"account_type", loan.AccountType,
				"date", payment.Date,
				"error", err)
			continue
		}
		if days >= delinquencyThreshold {
			months = append(months, DPDMonth{Date: payment.Date, Days: days})
		}
	}
	return months
}

// formatMonths renders delinquent months as "date: N days; ..." with a
// literal "None" when empty, matching the established report format.
func formatMonths(months []DPDMonth) string {
	if len(months) == 0 {
		return "None"
	}
	parts := make([]string, 0, len(months))
	for _, m := range months {
		parts = append(parts, fmt.Sprintf("%s: %d days", m.Date, m.Days))
	}
	return strings.Join(parts, "; ")
}

// formatPercent renders a computed percentage rounded to two decimals,
// keeping at least one decimal place so a half reads "50.0%" and a third
// "33.33%". Callers with no trades to divide by emit the literal "0%"
// instead of calling this.
func formatPercent(p float64) string {
	rounded := math.Round(p*100) / 100
	if rounded == math.Trunc(rounded) {
		return strconv.FormatFloat(rounded, 'f', 1, 64) + "%"
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64) + "%"
}
