package domain

import "time"

// Member is a person money is loaned to or returned by.
// Loans hold a denormalized copy of Name (Loan.MemberName); renaming a
// member must go through the store's rename propagation so the copies
// stay in sync.
type Member struct {
	MemberID     string    `json:"memberID"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Relationship string    `json:"relationship"`
	CreatedAt    time.Time `json:"createdAt"`
}

// EntityID implements store.Entity.
func (m Member) EntityID() string { return m.MemberID }
