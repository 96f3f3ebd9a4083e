package services

import (
	"context"

	"github.com/hisabapp/hisab/internal/core/domain"
	"github.com/hisabapp/hisab/internal/store"
)

// RefresherSvcFacade maintains the store's freshness: EnsureFresh runs a
// bulk reload only when the freshness policy asks for one, RefreshAll
// always does.
type RefresherSvcFacade interface {
	EnsureFresh(ctx context.Context) error
	RefreshAll(ctx context.Context) error
	RefreshLoanStats(ctx context.Context) error
	RefreshMoneyStats(ctx context.Context) error
	RefreshAccounts(ctx context.Context) error
	Meta() store.Meta
}

// StatisticsSvcFacade reads the cached, server-computed aggregates.
type StatisticsSvcFacade interface {
	LoanStatistics(ctx context.Context) domain.LoanStatistics
	MoneyStatistics(ctx context.Context) domain.MoneyStatistics
}
