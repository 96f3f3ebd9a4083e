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

// LoanService mutates the loan collection. Every confirmed mutation
// schedules a loan-statistics refetch, since the aggregates are derived
// from this collection.
type LoanService struct {
	BaseService
	st        *store.Store
	refresher portssvc.RefresherSvcFacade
	mut       mutator[domain.Loan]
}

func NewLoanService(st *store.Store, gw ports.LoanGateway, refresher portssvc.RefresherSvcFacade) *LoanService {
	return &LoanService{
		st:        st,
		refresher: refresher,
		mut:       mutator[domain.Loan]{entity: "loan", coll: st.Loans, gw: gw},
	}
}

var _ portssvc.LoanSvcFacade = (*LoanService)(nil)

func (s *LoanService) ListLoans(ctx context.Context) []domain.Loan {
	return s.st.Loans.Items()
}

func (s *LoanService) AddLoan(ctx context.Context, req dto.CreateLoanRequest) (*domain.Loan, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("loan amount must be positive: %w", apperrors.ErrValidation)
	}
	member, ok := s.st.Members.Get(req.MemberID)
	if !ok {
		return nil, fmt.Errorf("member %q: %w", req.MemberID, apperrors.ErrNotFound)
	}

	placeholder := domain.Loan{
		LoanID:     tempID(),
		MemberID:   member.MemberID,
		MemberName: member.Name,
		Amount:     req.Amount,
		Currency:   req.Currency,
		Status:     req.Status,
		Notes:      req.Notes,
		CreatedAt:  time.Now(),
	}

	loan, err := s.mut.add(ctx, placeholder)
	if err != nil {
		s.LogError(ctx, err, "Failed to add loan", slog.String("member_id", req.MemberID))
		return nil, err
	}

	if err := s.refresher.RefreshLoanStats(ctx); err != nil {
		s.LogError(ctx, err, "Failed to refresh loan statistics after add")
	}

	s.LogInfo(ctx, "Loan added",
		slog.String("loan_id", loan.LoanID),
		slog.String("status", string(loan.Status)))
	return loan, nil
}

func (s *LoanService) UpdateLoan(ctx context.Context, loanID string, req dto.UpdateLoanRequest) (*domain.Loan, error) {
	if req.Amount != nil && !req.Amount.IsPositive() {
		return nil, fmt.Errorf("loan amount must be positive: %w", apperrors.ErrValidation)
	}

	loan, err := s.mut.update(ctx, loanID, func(l domain.Loan) domain.Loan {
		if req.Amount != nil {
			l.Amount = *req.Amount
		}
		if req.Currency != nil {
			l.Currency = *req.Currency
		}
		if req.Status != nil {
			l.Status = *req.Status
		}
		if req.Notes != nil {
			l.Notes = *req.Notes
		}
		return l
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update loan", slog.String("loan_id", loanID))
		return nil, err
	}

	if err := s.refresher.RefreshLoanStats(ctx); err != nil {
		s.LogError(ctx, err, "Failed to refresh loan statistics after update")
	}

	s.LogInfo(ctx, "Loan updated", slog.String("loan_id", loan.LoanID))
	return loan, nil
}

func (s *LoanService) DeleteLoan(ctx context.Context, loanID string) error {
	if err := s.mut.delete(ctx, loanID, nil); err != nil {
		s.LogError(ctx, err, "Failed to delete loan", slog.String("loan_id", loanID))
		return err
	}

	if err := s.refresher.RefreshLoanStats(ctx); err != nil {
		s.LogError(ctx, err, "Failed to refresh loan statistics after delete")
	}

	s.LogInfo(ctx, "Loan deleted", slog.String("loan_id", loanID))
	return nil
}
