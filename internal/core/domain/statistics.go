package domain

import "github.com/shopspring/decimal"

// CurrencyTotals is the loaned/returned aggregate for one currency.
type CurrencyTotals struct {
	Loaned   decimal.Decimal `json:"loaned"`
	Returned decimal.Decimal `json:"returned"`
	Net      decimal.Decimal `json:"net"`
}

// MemberLoanSummary aggregates one member's loans per currency.
type MemberLoanSummary struct {
	MemberID   string                      `json:"memberID"`
	MemberName string                      `json:"memberName"`
	Totals     map[Currency]CurrencyTotals `json:"totals"`
}

// LoanStatistics is the loan-tracker aggregate. It is fully derived from
// the loan collection and always computed by the sheet backend; the client
// never mutates it, only replaces it wholesale.
type LoanStatistics struct {
	Members []MemberLoanSummary         `json:"members"`
	Totals  map[Currency]CurrencyTotals `json:"totals"`
}

// CategoryTotal is the spent/earned total for one category.
type CategoryTotal struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Type         CategoryType    `json:"type"`
	Total        decimal.Decimal `json:"total"`
}

// AccountSummary is the per-account income/expense/balance aggregate.
type AccountSummary struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	Income      decimal.Decimal `json:"income"`
	Expense     decimal.Decimal `json:"expense"`
	Balance     decimal.Decimal `json:"balance"`
}

// MonthlyTotals is one point of the per-month income/expense series.
// Month is formatted as "2006-01".
type MonthlyTotals struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MoneyStatistics is the money-manager aggregate, derived server-side from
// the transaction, account and category collections.
type MoneyStatistics struct {
	TotalIncome  decimal.Decimal  `json:"totalIncome"`
	TotalExpense decimal.Decimal  `json:"totalExpense"`
	NetBalance   decimal.Decimal  `json:"netBalance"`
	Categories   []CategoryTotal  `json:"categories"`
	Accounts     []AccountSummary `json:"accounts"`
	Monthly      []MonthlyTotals  `json:"monthly"`
}
