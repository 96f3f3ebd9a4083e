package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hisabapp/hisab/internal/apperrors"
	"github.com/hisabapp/hisab/internal/core/domain"
	"github.com/hisabapp/hisab/internal/core/ports"
	portssvc "github.com/hisabapp/hisab/internal/core/ports/services"
	"github.com/hisabapp/hisab/internal/dto"
	"github.com/hisabapp/hisab/internal/store"
)

// TransactionService mutates the transaction collection. Confirmed
// mutations schedule an account refetch (balances are server-maintained
// and must converge) plus a money-statistics refetch.
type TransactionService struct {
	BaseService
	st        *store.Store
	refresher portssvc.RefresherSvcFacade
	mut       mutator[domain.Transaction]
}

func NewTransactionService(st *store.Store, gw ports.TransactionGateway, refresher portssvc.RefresherSvcFacade) *TransactionService {
	return &TransactionService{
		st:        st,
		refresher: refresher,
		mut:       mutator[domain.Transaction]{entity: "transaction", coll: st.Transactions, gw: gw},
	}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

func (s *TransactionService) ListTransactions(ctx context.Context) []domain.Transaction {
	return s.st.Transactions.Items()
}

func (s *TransactionService) AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("transaction amount must be positive: %w", apperrors.ErrValidation)
	}

	account, ok := s.st.Accounts.Get(req.AccountID)
	if !ok {
		return nil, fmt.Errorf("account %q: %w", req.AccountID, apperrors.ErrNotFound)
	}

	placeholder := domain.Transaction{
		TransactionID: tempID(),
		AccountID:     account.AccountID,
		AccountName:   account.Name,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Type:          req.Type,
		Notes:         req.Notes,
		CreatedAt:     time.Now(),
	}

	if req.Type == domain.TxnTransfer {
		if req.FromAccountID == "" || req.ToAccountID == "" {
			return nil, fmt.Errorf("transfer requires fromAccountID and toAccountID: %w", apperrors.ErrValidation)
		}
		placeholder.FromAccountID = req.FromAccountID
		placeholder.ToAccountID = req.ToAccountID
	} else {
		if req.CategoryID == "" {
			return nil, fmt.Errorf("categoryID is required for %s transactions: %w", req.Type, apperrors.ErrValidation)
		}
		category, ok := s.st.Categories.Get(req.CategoryID)
		if !ok {
			return nil, fmt.Errorf("category %q: %w", req.CategoryID, apperrors.ErrNotFound)
		}
		placeholder.CategoryID = category.CategoryID
		placeholder.CategoryName = category.Name
	}

	txn, err := s.mut.add(ctx, placeholder)
	if err != nil {
		s.LogError(ctx, err, "Failed to add transaction", slog.String("account_id", req.AccountID))
		return nil, err
	}

	s.refreshDependents(ctx, "add")
	s.LogInfo(ctx, "Transaction added",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)))
	return txn, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount != nil && !req.Amount.IsPositive() {
		return nil, fmt.Errorf("transaction amount must be positive: %w", apperrors.ErrValidation)
	}
	// Resolve the category before the mutation; the merge runs inside the
	// collection's critical section and must not read other collections.
	var category domain.Category
	if req.CategoryID != nil {
		var ok bool
		category, ok = s.st.Categories.Get(*req.CategoryID)
		if !ok {
			return nil, fmt.Errorf("category %q: %w", *req.CategoryID, apperrors.ErrNotFound)
		}
	}

	txn, err := s.mut.update(ctx, transactionID, func(t domain.Transaction) domain.Transaction {
		if req.Amount != nil {
			t.Amount = *req.Amount
		}
		if req.CategoryID != nil {
			t.CategoryID = category.CategoryID
			t.CategoryName = category.Name
		}
		if req.Notes != nil {
			t.Notes = *req.Notes
		}
		return t
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.refreshDependents(ctx, "update")
	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", txn.TransactionID))
	return txn, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.mut.delete(ctx, transactionID, nil); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}

	s.refreshDependents(ctx, "delete")
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// refreshDependents pulls the server-maintained account balances and the
// money aggregates after a confirmed mutation. Failures here never undo
// the mutation; local state already matches server truth.
func (s *TransactionService) refreshDependents(ctx context.Context, op string) {
	if err := s.refresher.RefreshAccounts(ctx); err != nil {
		s.LogError(ctx, err, "Failed to refresh accounts after transaction "+op)
	}
	if err := s.refresher.RefreshMoneyStats(ctx); err != nil {
		s.LogError(ctx, err, "Failed to refresh money statistics after transaction "+op)
	}
}
