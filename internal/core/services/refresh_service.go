package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hisabapp/hisab/internal/core/ports"
	portssvc "github.com/hisabapp/hisab/internal/core/ports/services"
	"github.com/hisabapp/hisab/internal/metrics"
	"github.com/hisabapp/hisab/internal/store"
)

// RefresherService owns the bulk reload and the targeted post-mutation
// refreshes (statistics and account balances).
type RefresherService struct {
	BaseService
	st  *store.Store
	gw  ports.Gateway
	now func() time.Time
}

// NewRefresherService creates a refresher over the given store and gateway.
func NewRefresherService(st *store.Store, gw ports.Gateway) *RefresherService {
	return &RefresherService{st: st, gw: gw, now: time.Now}
}

var _ portssvc.RefresherSvcFacade = (*RefresherService)(nil)

// Meta exposes the store's loading/error/freshness state.
func (s *RefresherService) Meta() store.Meta {
	return s.st.Meta()
}

// EnsureFresh runs a bulk reload only when the freshness policy asks for
// one. Individual CRUD operations never go through here; they always
// write through.
func (s *RefresherService) EnsureFresh(ctx context.Context) error {
	if !s.st.ShouldRefresh(s.now()) {
		return nil
	}
	return s.RefreshAll(ctx)
}

// RefreshAll replaces every collection and both statistics snapshots with
// server truth. Any fetch failure marks the store errored and aborts the
// refresh without touching the collections.
func (s *RefresherService) RefreshAll(ctx context.Context) error {
	s.st.SetLoading(true)
	defer s.st.SetLoading(false)

	fail := func(what string, err error) error {
		s.st.SetError(true)
		s.LogError(ctx, err, "Bulk refresh failed", slog.String("collection", what))
		return fmt.Errorf("refresh %s: %w", what, err)
	}

	members, err := s.gw.Members.List(ctx)
	if err != nil {
		return fail("members", err)
	}
	loans, err := s.gw.Loans.List(ctx)
	if err != nil {
		return fail("loans", err)
	}
	accounts, err := s.gw.Accounts.List(ctx)
	if err != nil {
		return fail("accounts", err)
	}
	categories, err := s.gw.Categories.List(ctx)
	if err != nil {
		return fail("categories", err)
	}
	transactions, err := s.gw.Transactions.List(ctx)
	if err != nil {
		return fail("transactions", err)
	}
	loanStats, err := s.gw.Statistics.LoanStatistics(ctx)
	if err != nil {
		return fail("loan statistics", err)
	}
	moneyStats, err := s.gw.Statistics.MoneyStatistics(ctx)
	if err != nil {
		return fail("money statistics", err)
	}

	s.st.Members.Replace(members)
	s.st.Loans.Replace(loans)
	s.st.Accounts.Replace(accounts)
	s.st.Categories.Replace(categories)
	s.st.Transactions.Replace(transactions)
	s.st.SetLoanStats(loanStats)
	s.st.SetMoneyStats(moneyStats)
	s.st.SetError(false)
	s.st.MarkFetched(s.now())

	s.LogInfo(ctx, "Store refreshed",
		slog.Int("members", len(members)),
		slog.Int("loans", len(loans)),
		slog.Int("accounts", len(accounts)),
		slog.Int("categories", len(categories)),
		slog.Int("transactions", len(transactions)),
	)
	return nil
}

// RefreshLoanStats refetches the loan-tracker aggregates. Idempotent:
// the snapshot is replaced wholesale, never merged.
func (s *RefresherService) RefreshLoanStats(ctx context.Context) error {
	stats, err := s.gw.Statistics.LoanStatistics(ctx)
	if err != nil {
		metrics.StatsRefreshFailures.Inc()
		return fmt.Errorf("refresh loan statistics: %w", err)
	}
	s.st.SetLoanStats(stats)
	return nil
}

// RefreshMoneyStats refetches the money-manager aggregates.
func (s *RefresherService) RefreshMoneyStats(ctx context.Context) error {
	stats, err := s.gw.Statistics.MoneyStatistics(ctx)
	if err != nil {
		metrics.StatsRefreshFailures.Inc()
		return fmt.Errorf("refresh money statistics: %w", err)
	}
	s.st.SetMoneyStats(stats)
	return nil
}

// RefreshAccounts refetches the account collection so server-maintained
// balances converge after transaction mutations.
func (s *RefresherService) RefreshAccounts(ctx context.Context) error {
	accounts, err := s.gw.Accounts.List(ctx)
	if err != nil {
		return fmt.Errorf("refresh accounts: %w", err)
	}
	s.st.Accounts.Replace(accounts)
	return nil
}
