package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a money-manager account with a running balance.
// Balance is maintained by the sheet backend as the net effect of all
// transactions referencing the account; the client's optimistic view may
// transiently diverge but reconciles to the server value after any
// mutation touching the account.
type Account struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  Currency        `json:"currency"`
	CreatedAt time.Time       `json:"createdAt"`
}

// EntityID implements store.Entity.
func (a Account) EntityID() string { return a.AccountID }
