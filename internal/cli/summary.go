package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/model"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/service"
)

const summaryDurationUnit = time.Millisecond

// RenderReportSummary renders the key figures of one cleaned report as a
// boxed console summary.
func RenderReportSummary(customerID string, doc *model.AnalysisDocument) string {
	line := func(label, value string) string {
		if value == "" {
			value = SubtleStyle.Render("n/a")
		}
		return LabelStyle.Render(label) + value
	}

	score := doc.CreditScore.Value
	if score != "" && doc.CreditScore.Comments != "" {
		score = fmt.Sprintf("%s (%s)", doc.CreditScore.Value, doc.CreditScore.Comments)
	}

	years := doc.Summary.CreditHistoryYears
	if years != "" {
		years += " years"
	}

	balance := doc.Summary.TotalBalance
	if balance != "" {
		balance = "₹" + balance
	}

	content := strings.Join([]string{
		line("Report Date", doc.ReportDate),
		line("Credit Score", score),
		line("Total Accounts", doc.Summary.TotalAccounts),
		line("Active Accounts", doc.Summary.ActiveAccounts),
		line("Credit History", years),
		line("Recent Inquiries", doc.Summary.RecentInquiries),
		line("Current Total Balance", balance),
	}, "\n")

	return RenderBox(fmt.Sprintf("Credit Report %s", customerID), content)
}

// RenderRunSummary renders the outcome of a clean run.
func RenderRunSummary(summary *service.RunSummary) string {
	content := fmt.Sprintf("  • Processed: %d\n  • Skipped: %d\n  • Failed: %d\n  • Duration: %s",
		summary.Processed, summary.Skipped, summary.Failed, summary.Duration.Round(summaryDurationUnit))

	if len(summary.Failures) > 0 {
		var failures []string
		for _, failure := range summary.Failures {
			failures = append(failures, "  "+FormatError(fmt.Sprintf("%s: %s", failure.File, failure.Err)))
		}
		content += "\n\nFailures:\n" + strings.Join(failures, "\n")
	}

	return RenderBox("Cleaning Complete", content)
}
