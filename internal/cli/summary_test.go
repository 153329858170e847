package cli

import (
	"testing"
	"time"

	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/model"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestRenderReportSummaryIncludesKeyFigures(t *testing.T) {
	doc := &model.AnalysisDocument{
		ReportDate:  "15-07-2026",
		CreditScore: model.CreditScore{Value: "712", Comments: "Low risk"},
		Summary: model.AccountSummary{
			TotalAccounts:      "4",
			ActiveAccounts:     "2",
			TotalBalance:       "2,45,000",
			CreditHistoryYears: "7",
			RecentInquiries:    "1",
		},
	}

	out := RenderReportSummary("8156", doc)

	assert.Contains(t, out, "Credit Report 8156")
	assert.Contains(t, out, "15-07-2026")
	assert.Contains(t, out, "712 (Low risk)")
	assert.Contains(t, out, "7 years")
	assert.Contains(t, out, "₹2,45,000")
}

func TestRenderReportSummaryMissingFields(t *testing.T) {
	out := RenderReportSummary("9001", &model.AnalysisDocument{})

	assert.Contains(t, out, "Credit Report 9001")
	assert.Contains(t, out, "n/a")
}

func TestRenderRunSummaryListsFailures(t *testing.T) {
	out := RenderRunSummary(&service.RunSummary{
		Processed: 2,
		Failed:    1,
		Duration:  1500 * time.Millisecond,
		Failures: []service.FileFailure{
			{File: "report_1111.xml", Err: "failed to parse report"},
		},
	})

	assert.Contains(t, out, "Processed: 2")
	assert.Contains(t, out, "Failed: 1")
	assert.Contains(t, out, "report_1111.xml")
}
