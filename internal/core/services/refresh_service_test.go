package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/hisabapp/hisab/internal/apperrors"
	"github.com/hisabapp/hisab/internal/core/domain"
	"github.com/hisabapp/hisab/internal/core/ports"
	"github.com/hisabapp/hisab/internal/core/services"
	"github.com/hisabapp/hisab/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RefresherServiceTestSuite struct {
	suite.Suite
	store            *store.Store
	mockMembers      *MockMemberGateway
	mockLoans        *MockLoanGateway
	mockAccounts     *MockAccountGateway
	mockCategories   *MockCategoryGateway
	mockTransactions *MockTransactionGateway
	mockStats        *MockStatisticsGateway
	service          *services.RefresherService
}

func (suite *RefresherServiceTestSuite) SetupTest() {
	suite.store = store.New(store.DefaultTTL)
	suite.mockMembers = new(MockMemberGateway)
	suite.mockLoans = new(MockLoanGateway)
	suite.mockAccounts = new(MockAccountGateway)
	suite.mockCategories = new(MockCategoryGateway)
	suite.mockTransactions = new(MockTransactionGateway)
	suite.mockStats = new(MockStatisticsGateway)
	suite.service = services.NewRefresherService(suite.store, ports.Gateway{
		Members:      suite.mockMembers,
		Loans:        suite.mockLoans,
		Accounts:     suite.mockAccounts,
		Categories:   suite.mockCategories,
		Transactions: suite.mockTransactions,
		Statistics:   suite.mockStats,
	})
}

func (suite *RefresherServiceTestSuite) expectFullFetch(ctx context.Context) {
	suite.mockMembers.On("List", ctx).Return([]domain.Member{{MemberID: "m-1", Name: "Asha"}}, nil).Once()
	suite.mockLoans.On("List", ctx).Return([]domain.Loan{
		{LoanID: "l-1", MemberID: "m-1", MemberName: "Asha", Amount: decimal.NewFromInt(100)},
	}, nil).Once()
	suite.mockAccounts.On("List", ctx).Return([]domain.Account{{AccountID: "a-1", Name: "Cash"}}, nil).Once()
	suite.mockCategories.On("List", ctx).Return([]domain.Category{{CategoryID: "c-1", Name: "Food"}}, nil).Once()
	suite.mockTransactions.On("List", ctx).Return([]domain.Transaction{{TransactionID: "t-1", AccountID: "a-1"}}, nil).Once()
	suite.mockStats.On("LoanStatistics", ctx).Return(domain.LoanStatistics{
		Totals: map[domain.Currency]domain.CurrencyTotals{
			domain.BDT: {
				Loaned:   decimal.NewFromInt(100),
				Returned: decimal.NewFromInt(40),
				Net:      decimal.NewFromInt(60),
			},
		},
	}, nil).Once()
	suite.mockStats.On("MoneyStatistics", ctx).Return(domain.MoneyStatistics{
		TotalIncome: decimal.NewFromInt(500),
	}, nil).Once()
}

func (suite *RefresherServiceTestSuite) TestEnsureFresh_SkipsWhenFresh() {
	ctx := context.Background()
	suite.store.Loans.Append(domain.Loan{LoanID: "l-1", MemberID: "m-1"})
	suite.store.MarkFetched(time.Now())

	err := suite.service.EnsureFresh(ctx)

	suite.Require().NoError(err)
	suite.mockMembers.AssertNotCalled(suite.T(), "List", ctx)
	suite.mockLoans.AssertNotCalled(suite.T(), "List", ctx)
	suite.mockStats.AssertNotCalled(suite.T(), "LoanStatistics", ctx)
}

func (suite *RefresherServiceTestSuite) TestEnsureFresh_RefreshesWhenNeverFetched() {
	ctx := context.Background()
	suite.expectFullFetch(ctx)

	err := suite.service.EnsureFresh(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, suite.store.Members.Len())
	suite.Equal(1, suite.store.Loans.Len())
	suite.Equal(1, suite.store.Accounts.Len())
	suite.Equal(1, suite.store.Categories.Len())
	suite.Equal(1, suite.store.Transactions.Len())

	// Server-computed aggregates are cached, never derived locally.
	totals := suite.store.LoanStats().Totals[domain.BDT]
	suite.True(totals.Net.Equal(decimal.NewFromInt(60)))
	suite.True(suite.store.MoneyStats().TotalIncome.Equal(decimal.NewFromInt(500)))

	meta := suite.service.Meta()
	suite.False(meta.IsError)
	suite.False(meta.IsLoading)
	suite.False(meta.LastFetched.IsZero())
	suite.mockStats.AssertExpectations(suite.T())
}

func (suite *RefresherServiceTestSuite) TestEnsureFresh_RefreshesWhenTTLElapsed() {
	ctx := context.Background()
	suite.store.Loans.Append(domain.Loan{LoanID: "stale", MemberID: "m-1"})
	suite.store.MarkFetched(time.Now().Add(-(store.DefaultTTL + time.Minute)))
	suite.expectFullFetch(ctx)

	err := suite.service.EnsureFresh(ctx)

	suite.Require().NoError(err)
	_, ok := suite.store.Loans.Get("stale")
	suite.False(ok)
	suite.Equal(1, suite.store.Loans.Len())
}

func (suite *RefresherServiceTestSuite) TestEnsureFresh_RefreshesWhenLoansEmpty() {
	ctx := context.Background()
	suite.store.MarkFetched(time.Now())
	suite.expectFullFetch(ctx)

	err := suite.service.EnsureFresh(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, suite.store.Loans.Len())
}

func (suite *RefresherServiceTestSuite) TestRefreshAll_FailureKeepsCollectionsAndSetsError() {
	ctx := context.Background()
	suite.store.Members.Append(domain.Member{MemberID: "m-old", Name: "Old"})
	suite.store.Loans.Append(domain.Loan{LoanID: "l-old", MemberID: "m-old"})

	suite.mockMembers.On("List", ctx).Return([]domain.Member{{MemberID: "m-new"}}, nil).Once()
	suite.mockLoans.On("List", ctx).
		Return(nil, fmt.Errorf("GET /loans: status 502: %w", apperrors.ErrGateway)).Once()

	err := suite.service.RefreshAll(ctx)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrGateway))

	// No partial replacement: the fetch aborted before any collection
	// was touched.
	_, ok := suite.store.Members.Get("m-old")
	suite.True(ok)
	_, ok = suite.store.Loans.Get("l-old")
	suite.True(ok)

	meta := suite.service.Meta()
	suite.True(meta.IsError)
	suite.False(meta.IsLoading)
	suite.True(meta.LastFetched.IsZero())
}

func (suite *RefresherServiceTestSuite) TestRefreshAll_ClearsPreviousError() {
	ctx := context.Background()
	suite.store.SetError(true)
	suite.expectFullFetch(ctx)

	err := suite.service.RefreshAll(ctx)

	suite.Require().NoError(err)
	suite.False(suite.service.Meta().IsError)
}

func (suite *RefresherServiceTestSuite) TestRefreshLoanStats_ReplacesSnapshotWholesale() {
	ctx := context.Background()
	suite.store.SetLoanStats(domain.LoanStatistics{
		Totals: map[domain.Currency]domain.CurrencyTotals{
			domain.BDT: {Net: decimal.NewFromInt(1)},
		},
	})

	suite.mockStats.On("LoanStatistics", ctx).Return(domain.LoanStatistics{
		Totals: map[domain.Currency]domain.CurrencyTotals{
			domain.USD: {Net: decimal.NewFromInt(42)},
		},
	}, nil).Once()

	err := suite.service.RefreshLoanStats(ctx)

	suite.Require().NoError(err)
	stats := suite.store.LoanStats()
	_, hasBDT := stats.Totals[domain.BDT]
	suite.False(hasBDT)
	suite.True(stats.Totals[domain.USD].Net.Equal(decimal.NewFromInt(42)))
}

func (suite *RefresherServiceTestSuite) TestRefreshLoanStats_RepeatedRefreshIsIdempotent() {
	// Refetching the same server payload twice leaves the cached snapshot
	// identical: wholesale replacement never accumulates state.
	ctx := context.Background()
	payload := domain.LoanStatistics{
		Totals: map[domain.Currency]domain.CurrencyTotals{
			domain.BDT: {
				Loaned:   decimal.NewFromInt(100),
				Returned: decimal.NewFromInt(40),
				Net:      decimal.NewFromInt(60),
			},
		},
	}
	suite.mockStats.On("LoanStatistics", ctx).Return(payload, nil).Twice()

	suite.Require().NoError(suite.service.RefreshLoanStats(ctx))
	first := suite.store.LoanStats()

	suite.Require().NoError(suite.service.RefreshLoanStats(ctx))
	second := suite.store.LoanStats()

	suite.Equal(first, second)
	suite.mockStats.AssertExpectations(suite.T())
}

func (suite *RefresherServiceTestSuite) TestRefreshAccounts_ReplacesCollection() {
	ctx := context.Background()
	suite.store.Accounts.Append(domain.Account{AccountID: "a-1", Balance: decimal.NewFromInt(500)})

	suite.mockAccounts.On("List", ctx).Return([]domain.Account{
		{AccountID: "a-1", Balance: decimal.NewFromInt(380)},
	}, nil).Once()

	err := suite.service.RefreshAccounts(ctx)

	suite.Require().NoError(err)
	account, _ := suite.store.Accounts.Get("a-1")
	suite.True(account.Balance.Equal(decimal.NewFromInt(380)))
}

func TestRefresherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RefresherServiceTestSuite))
}
