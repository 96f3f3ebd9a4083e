package services_test

import (
	"context"

	"github.com/hisabapp/hisab/internal/core/domain"
	"github.com/hisabapp/hisab/internal/core/ports"
	portssvc "github.com/hisabapp/hisab/internal/core/ports/services"
	"github.com/hisabapp/hisab/internal/store"
	"github.com/stretchr/testify/mock"
)

// --- Mock entity gateways ---

type MockMemberGateway struct {
	mock.Mock
}

func (m *MockMemberGateway) List(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberGateway) Create(ctx context.Context, member domain.Member) (domain.Member, error) {
	args := m.Called(ctx, member)
	return args.Get(0).(domain.Member), args.Error(1)
}

func (m *MockMemberGateway) Update(ctx context.Context, id string, member domain.Member) (domain.Member, error) {
	args := m.Called(ctx, id, member)
	return args.Get(0).(domain.Member), args.Error(1)
}

func (m *MockMemberGateway) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ ports.MemberGateway = (*MockMemberGateway)(nil)

type MockLoanGateway struct {
	mock.Mock
}

func (m *MockLoanGateway) List(ctx context.Context) ([]domain.Loan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanGateway) Create(ctx context.Context, loan domain.Loan) (domain.Loan, error) {
	args := m.Called(ctx, loan)
	return args.Get(0).(domain.Loan), args.Error(1)
}

func (m *MockLoanGateway) Update(ctx context.Context, id string, loan domain.Loan) (domain.Loan, error) {
	args := m.Called(ctx, id, loan)
	return args.Get(0).(domain.Loan), args.Error(1)
}

func (m *MockLoanGateway) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ ports.LoanGateway = (*MockLoanGateway)(nil)

type MockAccountGateway struct {
	mock.Mock
}

func (m *MockAccountGateway) List(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountGateway) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(domain.Account), args.Error(1)
}

func (m *MockAccountGateway) Update(ctx context.Context, id string, account domain.Account) (domain.Account, error) {
	args := m.Called(ctx, id, account)
	return args.Get(0).(domain.Account), args.Error(1)
}

func (m *MockAccountGateway) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ ports.AccountGateway = (*MockAccountGateway)(nil)

type MockCategoryGateway struct {
	mock.Mock
}

func (m *MockCategoryGateway) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryGateway) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryGateway) Update(ctx context.Context, id string, category domain.Category) (domain.Category, error) {
	args := m.Called(ctx, id, category)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryGateway) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ ports.CategoryGateway = (*MockCategoryGateway)(nil)

type MockTransactionGateway struct {
	mock.Mock
}

func (m *MockTransactionGateway) List(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionGateway) Create(ctx context.Context, txn domain.Transaction) (domain.Transaction, error) {
	args := m.Called(ctx, txn)
	return args.Get(0).(domain.Transaction), args.Error(1)
}

func (m *MockTransactionGateway) Update(ctx context.Context, id string, txn domain.Transaction) (domain.Transaction, error) {
	args := m.Called(ctx, id, txn)
	return args.Get(0).(domain.Transaction), args.Error(1)
}

func (m *MockTransactionGateway) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ ports.TransactionGateway = (*MockTransactionGateway)(nil)

type MockStatisticsGateway struct {
	mock.Mock
}

func (m *MockStatisticsGateway) LoanStatistics(ctx context.Context) (domain.LoanStatistics, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.LoanStatistics), args.Error(1)
}

func (m *MockStatisticsGateway) MoneyStatistics(ctx context.Context) (domain.MoneyStatistics, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.MoneyStatistics), args.Error(1)
}

var _ ports.StatisticsGateway = (*MockStatisticsGateway)(nil)

// --- Mock refresher ---

type MockRefresher struct {
	mock.Mock
}

func (m *MockRefresher) EnsureFresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRefresher) RefreshAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRefresher) RefreshLoanStats(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRefresher) RefreshMoneyStats(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRefresher) RefreshAccounts(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRefresher) Meta() store.Meta {
	args := m.Called()
	return args.Get(0).(store.Meta)
}

var _ portssvc.RefresherSvcFacade = (*MockRefresher)(nil)
