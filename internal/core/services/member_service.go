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

// MemberService mutates the member collection. A member owns its loans:
// renaming propagates to Loan.MemberName, deleting cascades the loans.
type MemberService struct {
	BaseService
	st        *store.Store
	refresher portssvc.RefresherSvcFacade
	mut       mutator[domain.Member]
}

func NewMemberService(st *store.Store, gw ports.MemberGateway, refresher portssvc.RefresherSvcFacade) *MemberService {
	return &MemberService{
		st:        st,
		refresher: refresher,
		mut:       mutator[domain.Member]{entity: "member", coll: st.Members, gw: gw},
	}
}

var _ portssvc.MemberSvcFacade = (*MemberService)(nil)

func (s *MemberService) ListMembers(ctx context.Context) []domain.Member {
	return s.st.Members.Items()
}

func (s *MemberService) AddMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error) {
	placeholder := domain.Member{
		MemberID:     tempID(),
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Relationship: req.Relationship,
		CreatedAt:    time.Now(),
	}

	member, err := s.mut.add(ctx, placeholder)
	if err != nil {
		s.LogError(ctx, err, "Failed to add member", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Member added", slog.String("member_id", member.MemberID))
	return member, nil
}

func (s *MemberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error) {
	var prevName string
	member, err := s.mut.update(ctx, memberID, func(m domain.Member) domain.Member {
		prevName = m.Name
		if req.Name != nil {
			m.Name = *req.Name
		}
		if req.Phone != nil {
			m.Phone = *req.Phone
		}
		if req.Email != nil {
			m.Email = *req.Email
		}
		if req.Relationship != nil {
			m.Relationship = *req.Relationship
		}
		return m
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update member", slog.String("member_id", memberID))
		return nil, err
	}

	if member.Name != prevName {
		updated := s.st.RenameMemberRefs(member.MemberID, member.Name)
		s.LogInfo(ctx, "Member rename propagated to loans",
			slog.String("member_id", member.MemberID),
			slog.Int("loans_updated", updated))
		if err := s.refresher.RefreshLoanStats(ctx); err != nil {
			s.LogError(ctx, err, "Failed to refresh loan statistics after member rename")
		}
	}

	s.LogInfo(ctx, "Member updated", slog.String("member_id", member.MemberID))
	return member, nil
}

func (s *MemberService) DeleteMember(ctx context.Context, memberID string) error {
	err := s.mut.delete(ctx, memberID, func() func() {
		// The sheet backend cascades loan deletion itself; mirror it
		// locally so the UI never shows orphaned loans.
		snapshot := s.st.Loans.Items()
		removed := s.st.Loans.RemoveWhere(func(l domain.Loan) bool { return l.MemberID == memberID })
		if removed > 0 {
			s.LogDebug(ctx, "Cascaded loan removal", slog.Int("loans_removed", removed))
		}
		return func() { s.st.Loans.Replace(snapshot) }
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete member", slog.String("member_id", memberID))
		return err
	}

	if err := s.refresher.RefreshLoanStats(ctx); err != nil {
		s.LogError(ctx, err, "Failed to refresh loan statistics after member delete")
	}

	s.LogInfo(ctx, "Member deleted", slog.String("member_id", memberID))
	return nil
}
