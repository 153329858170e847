package analysis

import (
	"path/filepath"
	"testing"

	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/exporter"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/model"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxDPDMonthsTakesWorstTrade(t *testing.T) {
	a := NewMaxDPDMonths(report.DefaultTable())

	a.Add("8156", docWithHistories(
		[]model.PaymentRecord{
			{Date: "01-2026", Status: "091/02"},
			{Date: "02-2026", Status: "045/02"},
			{Date: "03-2026", Status: "XXX/01"},
		},
		[]model.PaymentRecord{
			{Date: "01-2026", Status: "SUB/03"},
		},
	))

	headers, rows := a.SummaryTable()
	assert.Equal(t, []string{"Customer ID", "Maximum 30+ DPD Months"}, headers)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"8156", "2"}, rows[0])
}

func TestMaxDPDMonthsZeroLoans(t *testing.T) {
	a := NewMaxDPDMonths(report.DefaultTable())

	a.Add("9001", &model.AnalysisDocument{Loans: []model.Loan{}})

	_, rows := a.SummaryTable()
	assert.Equal(t, []string{"9001", "0"}, rows[0])
}

func TestMaxDPDMonthsWriteCSVSet(t *testing.T) {
	dir := t.TempDir()
	a := NewMaxDPDMonths(report.DefaultTable())

	a.Add("8156", docWithHistories(
		[]model.PaymentRecord{
			{Date: "01-2026", Status: "091/02"},
			{Date: "02-2026", Status: "061/02"},
		},
	))
	a.Add("9001", docWithHistories(
		[]model.PaymentRecord{{Date: "01-2026", Status: "XXX/01"}},
	))

	require.NoError(t, a.Write(dir, exporter.NewCSVWriter()))

	summary := readCSVFile(t, filepath.Join(dir, "max_dpd_summary.csv"))
	assert.Contains(t, summary, "8156,2")
	assert.Contains(t, summary, "9001,0")

	// Details only list loans that were ever delinquent.
	details := readCSVFile(t, filepath.Join(dir, "max_dpd_details.csv"))
	assert.Contains(t, details, "8156,Personal Loan,10-01-2024,2,01-2026: 91 days; 02-2026: 61 days")
	assert.NotContains(t, details, "9001")

	stats := readCSVFile(t, filepath.Join(dir, "max_dpd_overall_stats.csv"))
	assert.Contains(t, stats, "Overall Maximum 30+ DPD Months,2")
	assert.Contains(t, stats, "Customers with Maximum DPD,8156")
	assert.Contains(t, stats, "Total Customers Analyzed,2")
}

func TestMaxDPDMonthsEmptyBatchWritesZeroStats(t *testing.T) {
	dir := t.TempDir()
	a := NewMaxDPDMonths(report.DefaultTable())

	require.NoError(t, a.Write(dir, exporter.NewCSVWriter()))

	stats := readCSVFile(t, filepath.Join(dir, "max_dpd_overall_stats.csv"))
	assert.Contains(t, stats, "Overall Maximum 30+ DPD Months,0")
	assert.Contains(t, stats, "Total Customers Analyzed,0")
}
