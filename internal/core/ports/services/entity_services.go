// Package services defines the facades the HTTP handlers consume. Each
// entity type exposes the same shape: a read-only view of its collection
// plus imperative add/update/delete that mutate optimistically and roll
// back on gateway failure.
package services

import (
	"context"

	"github.com/hisabapp/hisab/internal/core/domain"
	"github.com/hisabapp/hisab/internal/dto"
)

type MemberSvcFacade interface {
	ListMembers(ctx context.Context) []domain.Member
	AddMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error)
	UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error)
	DeleteMember(ctx context.Context, memberID string) error
}

type LoanSvcFacade interface {
	ListLoans(ctx context.Context) []domain.Loan
	AddLoan(ctx context.Context, req dto.CreateLoanRequest) (*domain.Loan, error)
	UpdateLoan(ctx context.Context, loanID string, req dto.UpdateLoanRequest) (*domain.Loan, error)
	DeleteLoan(ctx context.Context, loanID string) error
}

type AccountSvcFacade interface {
	ListAccounts(ctx context.Context) []domain.Account
	AddAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID string) error
}

type CategorySvcFacade interface {
	ListCategories(ctx context.Context) []domain.Category
	AddCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

type TransactionSvcFacade interface {
	ListTransactions(ctx context.Context) []domain.Transaction
	AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
}
