package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus distinguishes money given out from money received back.
type LoanStatus string

const (
	StatusLoan   LoanStatus = "Loan"   // money given out
	StatusReturn LoanStatus = "Return" // money received back
)

// Loan is a single loan or return entry against a member.
// MemberName is a cached projection of the owning Member's Name.
type Loan struct {
	LoanID     string          `json:"loanID"`
	MemberID   string          `json:"memberID"`
	MemberName string          `json:"memberName"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   Currency        `json:"currency"`
	Status     LoanStatus      `json:"status"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// EntityID implements store.Entity.
func (l Loan) EntityID() string { return l.LoanID }
