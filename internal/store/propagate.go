package store

import "github.com/hisabapp/hisab/internal/core/domain"

// Rename propagation: loans and transactions carry cached copies of their
// parent's display name. When a parent is renamed and the rename is
// server-confirmed, the engine calls exactly one of these to rewrite the
// copies locally. No dependent entity is refetched.

// RenameMemberRefs rewrites MemberName on every loan owned by memberID.
func (s *Store) RenameMemberRefs(memberID, name string) int {
	return s.Loans.UpdateWhere(
		func(l domain.Loan) bool { return l.MemberID == memberID },
		func(l domain.Loan) domain.Loan {
			l.MemberName = name
			return l
		})
}

// RenameAccountRefs rewrites AccountName on every transaction referencing
// accountID.
func (s *Store) RenameAccountRefs(accountID, name string) int {
	return s.Transactions.UpdateWhere(
		func(t domain.Transaction) bool { return t.AccountID == accountID },
		func(t domain.Transaction) domain.Transaction {
			t.AccountName = name
			return t
		})
}

// RenameCategoryRefs rewrites CategoryName on every transaction referencing
// categoryID.
func (s *Store) RenameCategoryRefs(categoryID, name string) int {
	return s.Transactions.UpdateWhere(
		func(t domain.Transaction) bool { return t.CategoryID == categoryID },
		func(t domain.Transaction) domain.Transaction {
			t.CategoryName = name
			return t
		})
}
