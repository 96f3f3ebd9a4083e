package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryType marks a category as expense or income.
type CategoryType string

const (
	CategoryExpense CategoryType = "expense"
	CategoryIncome  CategoryType = "income"
)

// Category groups transactions. Budget is optional (nil when unset).
type Category struct {
	CategoryID string           `json:"categoryID"`
	Name       string           `json:"name"`
	Type       CategoryType     `json:"type"`
	Budget     *decimal.Decimal `json:"budget,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// EntityID implements store.Entity.
func (c Category) EntityID() string { return c.CategoryID }
