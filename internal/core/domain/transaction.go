package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of money movement.
type TransactionType string

const (
	TxnExpense  TransactionType = "expense"
	TxnIncome   TransactionType = "income"
	TxnTransfer TransactionType = "transfer"
)

// Transaction is a single money-manager entry. AccountName and
// CategoryName are cached projections of the referenced Account's and
// Category's Name fields, kept in sync by the store's rename propagation.
// Transfers carry FromAccountID/ToAccountID instead of a category.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	AccountName   string          `json:"accountName"`
	FromAccountID string          `json:"fromAccountID,omitempty"`
	ToAccountID   string          `json:"toAccountID,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      Currency        `json:"currency"`
	Type          TransactionType `json:"type"`
	CategoryID    string          `json:"categoryID,omitempty"`
	CategoryName  string          `json:"categoryName,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// EntityID implements store.Entity.
func (t Transaction) EntityID() string { return t.TransactionID }
