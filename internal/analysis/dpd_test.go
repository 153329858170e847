package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/exporter"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/model"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docWithHistories(histories ...[]model.PaymentRecord) *model.AnalysisDocument {
	doc := &model.AnalysisDocument{Loans: []model.Loan{}}
	for _, history := range histories {
		doc.Loans = append(doc.Loans, model.Loan{
			AccountType:    "Personal Loan",
			Status:         "Active",
			DisbursedDate:  "10-01-2024",
			Amount:         "1,00,000",
			PaymentHistory: history,
		})
	}
	return doc
}

func TestDelinquencyIncidenceCountsTradesWith30PlusDPD(t *testing.T) {
	a := NewDelinquencyIncidence(report.DefaultTable())

	a.Add("8156", docWithHistories(
		[]model.PaymentRecord{
			{Date: "01-2026", Status: "XXX/01"},
			{Date: "02-2026", Status: "045/02"},
		},
		[]model.PaymentRecord{
			{Date: "01-2026", Status: "STD/01"},
		},
	))

	headers, rows := a.SummaryTable()
	assert.Equal(t, []string{"Customer ID", "Total Trades", "30+ DPD Trades", "Percentage"}, headers)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"8156", "2", "1", "50.0%"}, rows[0])
}

func TestDelinquencyIncidenceZeroLoansHasDefinedPercentage(t *testing.T) {
	a := NewDelinquencyIncidence(report.DefaultTable())

	a.Add("9001", &model.AnalysisDocument{Loans: []model.Loan{}})

	_, rows := a.SummaryTable()
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"9001", "0", "0", "0%"}, rows[0])
}

func TestDelinquencyIncidenceSkipsMalformedStatus(t *testing.T) {
	a := NewDelinquencyIncidence(report.DefaultTable())

	// One undecodable entry must not fail the loan; the decodable 61-day
	// entry still marks the trade delinquent.
	a.Add("8156", docWithHistories(
		[]model.PaymentRecord{
			{Date: "01-2026", Status: "garbage"},
			{Date: "02-2026", Status: "SMA/02"},
		},
	))

	_, rows := a.SummaryTable()
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"8156", "1", "1", "100.0%"}, rows[0])
}

func TestDelinquencyIncidenceSymbolicCodesBelowThreshold(t *testing.T) {
	a := NewDelinquencyIncidence(report.DefaultTable())

	a.Add("8156", docWithHistories(
		[]model.PaymentRecord{
			{Date: "01-2026", Status: "XXX/01"},
			{Date: "02-2026", Status: "STD/01"},
			{Date: "03-2026", Status: "029/01"},
		},
	))

	_, rows := a.SummaryTable()
	assert.Equal(t, []string{"8156", "1", "0", "0.0%"}, rows[0])
}

func TestDelinquencyIncidenceWriteCSVSet(t *testing.T) {
	dir := t.TempDir()
	a := NewDelinquencyIncidence(report.DefaultTable())

	a.Add("8156", docWithHistories(
		[]model.PaymentRecord{{Date: "01-2026", Status: "091/02"}},
		[]model.PaymentRecord{{Date: "01-2026", Status: "XXX/01"}},
	))
	a.Add("9001", docWithHistories(
		[]model.PaymentRecord{{Date: "02-2026", Status: "STD/01"}},
	))

	require.NoError(t, a.Write(dir, exporter.NewCSVWriter()))

	summary := readCSVFile(t, filepath.Join(dir, "dpd_summary.csv"))
	assert.Contains(t, summary, "8156,2,1,50.0%")
	assert.Contains(t, summary, "9001,1,0,0.0%")

	details := readCSVFile(t, filepath.Join(dir, "dpd_details.csv"))
	assert.Contains(t, details, "8156,Personal Loan,Active,Yes,01-2026: 91 days")
	assert.Contains(t, details, "8156,Personal Loan,Active,No,None")

	stats := readCSVFile(t, filepath.Join(dir, "dpd_overall_stats.csv"))
	assert.Contains(t, stats, "Total Trades,3")
	assert.Contains(t, stats, "Trades with 30+ DPD,1")
	assert.Contains(t, stats, "Overall Percentage,33.33%")
}

func TestFormatMonths(t *testing.T) {
	assert.Equal(t, "None", formatMonths(nil))
	assert.Equal(t, "01-2026: 91 days", formatMonths([]DPDMonth{{Date: "01-2026", Days: 91}}))
	assert.Equal(t, "01-2026: 91 days; 02-2026: 45 days",
		formatMonths([]DPDMonth{{Date: "01-2026", Days: 91}, {Date: "02-2026", Days: 45}}))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0.0%", formatPercent(0))
	assert.Equal(t, "50.0%", formatPercent(50))
	assert.Equal(t, "100.0%", formatPercent(100))
	assert.Equal(t, "33.33%", formatPercent(100.0/3))
	assert.Equal(t, "66.67%", formatPercent(200.0/3))
}

func readCSVFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
