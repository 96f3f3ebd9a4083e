package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/hisabapp/hisab/internal/core/domain"
	"github.com/hisabapp/hisab/internal/core/ports"
	portssvc "github.com/hisabapp/hisab/internal/core/ports/services"
	"github.com/hisabapp/hisab/internal/dto"
	"github.com/hisabapp/hisab/internal/store"
)

// AccountService mutates the account collection. Renaming propagates to
// Transaction.AccountName; deleting cascades every transaction that
// references the account, including transfer legs.
type AccountService struct {
	BaseService
	st        *store.Store
	refresher portssvc.RefresherSvcFacade
	mut       mutator[domain.Account]
}

func NewAccountService(st *store.Store, gw ports.AccountGateway, refresher portssvc.RefresherSvcFacade) *AccountService {
	return &AccountService{
		st:        st,
		refresher: refresher,
		mut:       mutator[domain.Account]{entity: "account", coll: st.Accounts, gw: gw},
	}
}

var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

func (s *AccountService) ListAccounts(ctx context.Context) []domain.Account {
	return s.st.Accounts.Items()
}

func (s *AccountService) AddAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	placeholder := domain.Account{
		AccountID: tempID(),
		Name:      req.Name,
		Balance:   req.Balance,
		Currency:  req.Currency,
		CreatedAt: time.Now(),
	}

	account, err := s.mut.add(ctx, placeholder)
	if err != nil {
		s.LogError(ctx, err, "Failed to add account", slog.String("name", req.Name))
		return nil, err
	}

	if err := s.refresher.RefreshMoneyStats(ctx); err != nil {
		s.LogError(ctx, err, "Failed to refresh money statistics after account add")
	}

	s.LogInfo(ctx, "Account added", slog.String("account_id", account.AccountID))
	return account, nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	var prevName string
	account, err := s.mut.update(ctx, accountID, func(a domain.Account) domain.Account {
		prevName = a.Name
		if req.Name != nil {
			a.Name = *req.Name
		}
		if req.Currency != nil {
			a.Currency = *req.Currency
		}
		return a
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	if account.Name != prevName {
		updated := s.st.RenameAccountRefs(account.AccountID, account.Name)
		s.LogInfo(ctx, "Account rename propagated to transactions",
			slog.String("account_id", account.AccountID),
			slog.Int("transactions_updated", updated))
	}

	if err := s.refresher.RefreshMoneyStats(ctx); err != nil {
		s.LogError(ctx, err, "Failed to refresh money statistics after account update")
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", account.AccountID))
	return account, nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, accountID string) error {
	err := s.mut.delete(ctx, accountID, func() func() {
		snapshot := s.st.Transactions.Items()
		removed := s.st.Transactions.RemoveWhere(func(t domain.Transaction) bool {
			return t.AccountID == accountID || t.FromAccountID == accountID || t.ToAccountID == accountID
		})
		if removed > 0 {
			s.LogDebug(ctx, "Cascaded transaction removal", slog.Int("transactions_removed", removed))
		}
		return func() { s.st.Transactions.Replace(snapshot) }
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}

	if err := s.refresher.RefreshMoneyStats(ctx); err != nil {
		s.LogError(ctx, err, "Failed to refresh money statistics after account delete")
	}

	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}
