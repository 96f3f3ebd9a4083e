// Package ports defines the interfaces between the mutation engine and
// its collaborators: the remote persistence gateway on one side and the
// HTTP handlers on the other.
package ports

import (
	"context"

	"github.com/hisabapp/hisab/internal/core/domain"
)

// Per-entity gateway contracts against the spreadsheet-backed remote API.
// Create is handed the client-side entity (placeholder id included); the
// server assigns the authoritative id and creation timestamp and returns
// the confirmed entity. Delete returns nil only on a confirmed 2xx.

type MemberGateway interface {
	List(ctx context.Context) ([]domain.Member, error)
	Create(ctx context.Context, m domain.Member) (domain.Member, error)
	Update(ctx context.Context, id string, m domain.Member) (domain.Member, error)
	Delete(ctx context.Context, id string) error
}

type LoanGateway interface {
	List(ctx context.Context) ([]domain.Loan, error)
	Create(ctx context.Context, l domain.Loan) (domain.Loan, error)
	Update(ctx context.Context, id string, l domain.Loan) (domain.Loan, error)
	Delete(ctx context.Context, id string) error
}

type AccountGateway interface {
	List(ctx context.Context) ([]domain.Account, error)
	Create(ctx context.Context, a domain.Account) (domain.Account, error)
	Update(ctx context.Context, id string, a domain.Account) (domain.Account, error)
	Delete(ctx context.Context, id string) error
}

type CategoryGateway interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, c domain.Category) (domain.Category, error)
	Update(ctx context.Context, id string, c domain.Category) (domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type TransactionGateway interface {
	List(ctx context.Context) ([]domain.Transaction, error)
	Create(ctx context.Context, t domain.Transaction) (domain.Transaction, error)
	Update(ctx context.Context, id string, t domain.Transaction) (domain.Transaction, error)
	Delete(ctx context.Context, id string) error
}

// StatisticsGateway returns the server-computed aggregates. The client
// never derives statistics itself.
type StatisticsGateway interface {
	LoanStatistics(ctx context.Context) (domain.LoanStatistics, error)
	MoneyStatistics(ctx context.Context) (domain.MoneyStatistics, error)
}

// Gateway bundles the per-entity gateways for wiring.
type Gateway struct {
	Members      MemberGateway
	Loans        LoanGateway
	Accounts     AccountGateway
	Categories   CategoryGateway
	Transactions TransactionGateway
	Statistics   StatisticsGateway
}
