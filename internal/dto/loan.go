package dto

import (
	"time"

	"github.com/hisabapp/hisab/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLoanRequest defines the data needed to record a loan or return.
// MemberName is resolved server-side from the member collection, never
// taken from the client.
type CreateLoanRequest struct {
	MemberID string            `json:"memberID" binding:"required"`
	Amount   decimal.Decimal   `json:"amount" binding:"required"`
	Currency domain.Currency   `json:"currency" binding:"required,oneof=BDT USD GBP"`
	Status   domain.LoanStatus `json:"status" binding:"required,oneof=Loan Return"`
	Notes    string            `json:"notes"`
}

// UpdateLoanRequest defines the data allowed for updating a loan.
type UpdateLoanRequest struct {
	Amount   *decimal.Decimal   `json:"amount"`
	Currency *domain.Currency   `json:"currency" binding:"omitempty,oneof=BDT USD GBP"`
	Status   *domain.LoanStatus `json:"status" binding:"omitempty,oneof=Loan Return"`
	Notes    *string            `json:"notes"`
}

// LoanResponse mirrors domain.Loan.
type LoanResponse struct {
	LoanID     string            `json:"loanID"`
	MemberID   string            `json:"memberID"`
	MemberName string            `json:"memberName"`
	Amount     decimal.Decimal   `json:"amount"`
	Currency   domain.Currency   `json:"currency"`
	Status     domain.LoanStatus `json:"status"`
	Notes      string            `json:"notes,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// ToLoanResponse converts a domain.Loan to its response DTO.
func ToLoanResponse(l *domain.Loan) LoanResponse {
	return LoanResponse{
		LoanID:     l.LoanID,
		MemberID:   l.MemberID,
		MemberName: l.MemberName,
		Amount:     l.Amount,
		Currency:   l.Currency,
		Status:     l.Status,
		Notes:      l.Notes,
		CreatedAt:  l.CreatedAt,
	}
}

// ToListLoanResponse converts a slice of loans.
func ToListLoanResponse(loans []domain.Loan) []LoanResponse {
	res := make([]LoanResponse, len(loans))
	for i := range loans {
		res[i] = ToLoanResponse(&loans[i])
	}
	return res
}
