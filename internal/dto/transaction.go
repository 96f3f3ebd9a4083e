package dto

import (
	"time"

	"github.com/hisabapp/hisab/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a
// transaction. AccountName and CategoryName are resolved server-side from
// the store, never taken from the client. Transfers require the from/to
// account pair instead of a category.
type CreateTransactionRequest struct {
	AccountID     string                 `json:"accountID" binding:"required"`
	FromAccountID string                 `json:"fromAccountID"`
	ToAccountID   string                 `json:"toAccountID"`
	Amount        decimal.Decimal        `json:"amount" binding:"required"`
	Currency      domain.Currency        `json:"currency" binding:"required,oneof=BDT USD GBP"`
	Type          domain.TransactionType `json:"type" binding:"required,oneof=expense income transfer"`
	CategoryID    string                 `json:"categoryID"`
	Notes         string                 `json:"notes"`
}

// UpdateTransactionRequest defines the data allowed for updating a
// transaction.
type UpdateTransactionRequest struct {
	Amount     *decimal.Decimal `json:"amount"`
	CategoryID *string          `json:"categoryID"`
	Notes      *string          `json:"notes"`
}

// TransactionResponse mirrors domain.Transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	AccountID     string                 `json:"accountID"`
	AccountName   string                 `json:"accountName"`
	FromAccountID string                 `json:"fromAccountID,omitempty"`
	ToAccountID   string                 `json:"toAccountID,omitempty"`
	Amount        decimal.Decimal        `json:"amount"`
	Currency      domain.Currency        `json:"currency"`
	Type          domain.TransactionType `json:"type"`
	CategoryID    string                 `json:"categoryID,omitempty"`
	CategoryName  string                 `json:"categoryName,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		AccountID:     t.AccountID,
		AccountName:   t.AccountName,
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		Amount:        t.Amount,
		Currency:      t.Currency,
		Type:          t.Type,
		CategoryID:    t.CategoryID,
		CategoryName:  t.CategoryName,
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of transactions.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
