package dto

import (
	"time"

	"github.com/hisabapp/hisab/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// Balance is the opening balance.
type CreateAccountRequest struct {
	Name     string          `json:"name" binding:"required"`
	Balance  decimal.Decimal `json:"balance"`
	Currency domain.Currency `json:"currency" binding:"required,oneof=BDT USD GBP"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// The balance itself is server-maintained and not updatable here.
type UpdateAccountRequest struct {
	Name     *string          `json:"name"`
	Currency *domain.Currency `json:"currency" binding:"omitempty,oneof=BDT USD GBP"`
}

// AccountResponse mirrors domain.Account.
type AccountResponse struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  domain.Currency `json:"currency"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: a.AccountID,
		Name:      a.Name,
		Balance:   a.Balance,
		Currency:  a.Currency,
		CreatedAt: a.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of accounts.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
