// Package report projects normalized bureau trees into analysis documents
// and decodes the bureau's delinquency coding scheme.
package report

import (
	"fmt"

	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/bureau"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/common"
	"github.com/sakshishinde1749/indusInd-bank-asssignment/internal/model"
)

// Project walks a normalized bureau tree along the known report paths and
// builds the analysis document. Extraction is best-effort: any missing
// optional field degrades to an empty string. Only a missing report
// container is an error, since nothing downstream can use an empty shell.
func Project(v bureau.Value) (*model.AnalysisDocument, error) {
	root, ok := v.(*bureau.Object)
	if !ok {
		return nil, fmt.Errorf("root is not an object: %w", common.ErrMissingReport)
	}

	rpt := childObject(childObject(root, "INDV-REPORTS"), "INDV-REPORT")
	if rpt == nil {
		return nil, fmt.Errorf("INDV-REPORTS/INDV-REPORT: %w", common.ErrMissingReport)
	}

	header := childObject(rpt, "HEADER")
	score := childObject(childObject(rpt, "SCORES"), "SCORE")
	accounts := childObject(rpt, "ACCOUNTS-SUMMARY")
	derived := childObject(accounts, "DERIVED-ATTRIBUTES")
	primary := childObject(accounts, "PRIMARY-ACCOUNTS-SUMMARY")

	doc := &model.AnalysisDocument{
		ReportDate: childString(header, "DATE-OF-ISSUE"),
		CreditScore: model.CreditScore{
			Value:    childString(score, "SCORE-VALUE"),
			Type:     childString(score, "SCORE-TYPE"),
			Comments: childString(score, "SCORE-COMMENTS"),
		},
		Summary: model.AccountSummary{
			TotalAccounts:      childString(primary, "PRIMARY-NUMBER-OF-ACCOUNTS"),
			ActiveAccounts:     childString(primary, "PRIMARY-ACTIVE-NUMBER-OF-ACCOUNTS"),
			OverdueAccounts:    childString(primary, "PRIMARY-OVERDUE-NUMBER-OF-ACCOUNTS"),
			TotalBalance:       childString(primary, "PRIMARY-CURRENT-BALANCE"),
			CreditHistoryYears: childString(derived, "LENGTH-OF-CREDIT-HISTORY-YEAR"),
			RecentInquiries:    childString(derived, "INQUIRIES-IN-LAST-SIX-MONTHS"),
		},
		Loans: []model.Loan{},
	}

	// A single RESPONSE normalizes to a plain object while two or more
	// collide into a list; both shapes become a uniform loan slice here so
	// no consumer ever sees the ambiguity.
	responses := childObject(rpt, "RESPONSES")
	for _, resp := range asList(childValue(responses, "RESPONSE")) {
		doc.Loans = append(doc.Loans, projectLoan(resp))
	}

	return doc, nil
}

func projectLoan(v bureau.Value) model.Loan {
	details := childObject(asObject(v), "LOAN-DETAILS")
	return model.Loan{
		AccountType:    childString(details, "ACCT-TYPE"),
		Status:         childString(details, "ACCOUNT-STATUS"),
		Amount:         childString(details, "DISBURSED-AMT"),
		CurrentBalance: childString(details, "CURRENT-BAL"),
		DisbursedDate:  childString(details, "DISBURSED-DATE"),
		ClosedDate:     childString(details, "CLOSED-DATE"),
		SecurityStatus: childString(details, "SECURITY-STATUS"),
		PaymentHistory: ParsePaymentHistory(childString(details, "COMBINED-PAYMENT-HISTORY")),
	}
}

// asObject returns v as an object, or nil when it is a leaf or list.
func asObject(v bureau.Value) *bureau.Object {
	obj, ok := v.(*bureau.Object)
	if !ok {
		return nil
	}
	return obj
}

// asList returns v as a uniform slice: a list stays itself, nil vanishes,
// and any other value becomes a single-element slice.
func asList(v bureau.Value) []bureau.Value {
	switch t := v.(type) {
	case nil:
		return nil
	case bureau.List:
		return t
	default:
		return []bureau.Value{v}
	}
}

func childValue(o *bureau.Object, key string) bureau.Value {
	if o == nil {
		return nil
	}
	v, ok := o.Get(key)
	if !ok {
		return nil
	}
	return v
}

func childObject(o *bureau.Object, key string) *bureau.Object {
	return asObject(childValue(o, key))
}

// childString returns the leaf value at key, or "" when the key is absent
// or holds a nested structure.
func childString(o *bureau.Object, key string) string {
	leaf, ok := childValue(o, key).(bureau.Leaf)
	if !ok {
		return ""
	}
	return string(leaf)
}
