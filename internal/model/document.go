// Package model defines the analysis document shared by the cleaning and
// analysis stages.
package model

// PaymentRecord is one month of reported repayment status. Status keeps the
// raw "<dpd>/<code>" string from the bureau; decoding happens at analysis
// time so a single malformed code never fails projection.
type PaymentRecord struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// Loan is a single credit account (a "trade") within a customer's report.
// Every scalar is the raw bureau string; a missing field stays empty.
type Loan struct {
	AccountType    string          `json:"account_type"`
	Status         string          `json:"status"`
	Amount         string          `json:"amount"`
	CurrentBalance string          `json:"current_balance"`
	DisbursedDate  string          `json:"disbursed_date"`
	ClosedDate     string          `json:"closed_date"`
	SecurityStatus string          `json:"security_status"`
	PaymentHistory []PaymentRecord `json:"payment_history"`
}

// CreditScore carries the bureau score block.
type CreditScore struct {
	Value    string `json:"value"`
	Type     string `json:"type"`
	Comments string `json:"comments"`
}

// AccountSummary carries the primary-account counts and derived attributes.
type AccountSummary struct {
	TotalAccounts      string `json:"total_accounts"`
	ActiveAccounts     string `json:"active_accounts"`
	OverdueAccounts    string `json:"overdue_accounts"`
	TotalBalance       string `json:"total_balance"`
	CreditHistoryYears string `json:"credit_history_years"`
	RecentInquiries    string `json:"recent_inquiries"`
}

// AnalysisDocument is the interim form persisted for each customer: the sole
// contract between cleaning and the downstream analyses. It round-trips
// through JSON losslessly, loan order included.
type AnalysisDocument struct {
	ReportDate  string         `json:"report_date"`
	CreditScore CreditScore    `json:"credit_score"`
	Summary     AccountSummary `json:"summary"`
	Loans       []Loan         `json:"loans"`
}
