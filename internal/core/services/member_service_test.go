package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/hisabapp/hisab/internal/apperrors"
	"github.com/hisabapp/hisab/internal/core/domain"
	"github.com/hisabapp/hisab/internal/core/services"
	"github.com/hisabapp/hisab/internal/dto"
	"github.com/hisabapp/hisab/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MemberServiceTestSuite struct {
	suite.Suite
	store         *store.Store
	mockGateway   *MockMemberGateway
	mockRefresher *MockRefresher
	service       *services.MemberService
}

func (suite *MemberServiceTestSuite) SetupTest() {
	suite.store = store.New(store.DefaultTTL)
	suite.mockGateway = new(MockMemberGateway)
	suite.mockRefresher = new(MockRefresher)
	suite.service = services.NewMemberService(suite.store, suite.mockGateway, suite.mockRefresher)
}

func (suite *MemberServiceTestSuite) seedMember(id, name string) {
	suite.store.Members.Append(domain.Member{MemberID: id, Name: name, CreatedAt: time.Now()})
}

func (suite *MemberServiceTestSuite) seedLoan(id, memberID, memberName string, amount int64) {
	suite.store.Loans.Append(domain.Loan{
		LoanID:     id,
		MemberID:   memberID,
		MemberName: memberName,
		Amount:     decimal.NewFromInt(amount),
		Currency:   domain.BDT,
		Status:     domain.StatusLoan,
		CreatedAt:  time.Now(),
	})
}

func (suite *MemberServiceTestSuite) TestAddMember_PlaceholderSubstitution() {
	ctx := context.Background()
	req := dto.CreateMemberRequest{Name: "Asha", Phone: "017xxxxxxxx"}

	confirmed := domain.Member{MemberID: "m-100", Name: "Asha", Phone: "017xxxxxxxx", CreatedAt: time.Now()}
	suite.mockGateway.On("Create", ctx, mock.AnythingOfType("domain.Member")).
		Run(func(args mock.Arguments) {
			// The optimistic insert is visible before the remote call returns.
			placeholder := args.Get(1).(domain.Member)
			suite.True(services.IsTempID(placeholder.MemberID))
			suite.Equal(1, suite.store.Members.Len())
		}).
		Return(confirmed, nil).Once()

	member, err := suite.service.AddMember(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("m-100", member.MemberID)

	items := suite.store.Members.Items()
	suite.Require().Len(items, 1)
	suite.Equal("m-100", items[0].MemberID)
	suite.False(services.IsTempID(items[0].MemberID))
	suite.mockGateway.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestAddMember_CreateFailureRemovesPlaceholder() {
	ctx := context.Background()
	gwErr := fmt.Errorf("POST /members: status 500: %w", apperrors.ErrGateway)
	suite.mockGateway.On("Create", ctx, mock.AnythingOfType("domain.Member")).
		Return(domain.Member{}, gwErr).Once()

	_, err := suite.service.AddMember(ctx, dto.CreateMemberRequest{Name: "Asha"})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrGateway))
	suite.Equal(0, suite.store.Members.Len())
}

func (suite *MemberServiceTestSuite) TestUpdateMember_RenamePropagatesToLoans() {
	ctx := context.Background()
	suite.seedMember("m-1", "Asha")
	suite.seedLoan("l-1", "m-1", "Asha", 100)
	suite.seedLoan("l-2", "m-2", "Badal", 200)
	suite.seedLoan("l-3", "m-1", "Asha", 300)

	newName := "Asha Rahman"
	confirmed := domain.Member{MemberID: "m-1", Name: newName}
	suite.mockGateway.On("Update", ctx, "m-1", mock.AnythingOfType("domain.Member")).
		Return(confirmed, nil).Once()
	suite.mockRefresher.On("RefreshLoanStats", ctx).Return(nil).Once()

	member, err := suite.service.UpdateMember(ctx, "m-1", dto.UpdateMemberRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, member.Name)

	// Cached copies were rewritten in place, not refetched.
	for _, l := range suite.store.Loans.Items() {
		if l.MemberID == "m-1" {
			suite.Equal(newName, l.MemberName)
		} else {
			suite.Equal("Badal", l.MemberName)
		}
	}
	suite.mockGateway.AssertExpectations(suite.T())
	suite.mockRefresher.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestUpdateMember_NoRenameSkipsPropagation() {
	ctx := context.Background()
	suite.seedMember("m-1", "Asha")
	suite.seedLoan("l-1", "m-1", "Asha", 100)

	phone := "018xxxxxxxx"
	confirmed := domain.Member{MemberID: "m-1", Name: "Asha", Phone: phone}
	suite.mockGateway.On("Update", ctx, "m-1", mock.AnythingOfType("domain.Member")).
		Return(confirmed, nil).Once()

	_, err := suite.service.UpdateMember(ctx, "m-1", dto.UpdateMemberRequest{Phone: &phone})

	suite.Require().NoError(err)
	suite.mockRefresher.AssertNotCalled(suite.T(), "RefreshLoanStats", ctx)
}

func (suite *MemberServiceTestSuite) TestUpdateMember_GatewayFailureRollsBack() {
	ctx := context.Background()
	suite.seedMember("m-1", "Asha")
	snapshot := suite.store.Members.Items()

	newName := "Renamed"
	suite.mockGateway.On("Update", ctx, "m-1", mock.AnythingOfType("domain.Member")).
		Return(domain.Member{}, fmt.Errorf("PUT /members/m-1: status 502: %w", apperrors.ErrGateway)).Once()

	_, err := suite.service.UpdateMember(ctx, "m-1", dto.UpdateMemberRequest{Name: &newName})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrGateway))
	suite.Equal(snapshot, suite.store.Members.Items())
	suite.mockRefresher.AssertNotCalled(suite.T(), "RefreshLoanStats", ctx)
}

func (suite *MemberServiceTestSuite) TestUpdateMember_NotFound() {
	ctx := context.Background()

	newName := "Ghost"
	_, err := suite.service.UpdateMember(ctx, "m-404", dto.UpdateMemberRequest{Name: &newName})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.mockGateway.AssertNotCalled(suite.T(), "Update", ctx, "m-404", mock.Anything)
}

func (suite *MemberServiceTestSuite) TestDeleteMember_CascadesLoans() {
	ctx := context.Background()
	suite.seedMember("m-1", "Asha")
	suite.seedMember("m-2", "Badal")
	suite.seedLoan("l-1", "m-1", "Asha", 100)
	suite.seedLoan("l-2", "m-2", "Badal", 200)
	suite.seedLoan("l-3", "m-1", "Asha", 300)

	suite.mockGateway.On("Delete", ctx, "m-1").Return(nil).Once()
	suite.mockRefresher.On("RefreshLoanStats", ctx).Return(nil).Once()

	err := suite.service.DeleteMember(ctx, "m-1")

	suite.Require().NoError(err)
	suite.Equal(1, suite.store.Members.Len())
	suite.Equal(1, suite.store.Loans.Len())
	_, ok := suite.store.Loans.Get("l-2")
	suite.True(ok)
	suite.mockGateway.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestDeleteMember_GatewayFailureRestoresMemberAndLoans() {
	ctx := context.Background()
	suite.seedMember("m-1", "Asha")
	suite.seedMember("m-2", "Badal")
	suite.seedLoan("l-1", "m-1", "Asha", 100)
	suite.seedLoan("l-2", "m-2", "Badal", 200)
	suite.seedLoan("l-3", "m-1", "Asha", 300)
	memberSnapshot := suite.store.Members.Items()
	loanSnapshot := suite.store.Loans.Items()

	suite.mockGateway.On("Delete", ctx, "m-1").
		Return(fmt.Errorf("DELETE /members/m-1: status 502: %w", apperrors.ErrGateway)).Once()

	err := suite.service.DeleteMember(ctx, "m-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrGateway))
	suite.Equal(memberSnapshot, suite.store.Members.Items())
	suite.Equal(loanSnapshot, suite.store.Loans.Items())
	suite.mockRefresher.AssertNotCalled(suite.T(), "RefreshLoanStats", ctx)
}

func (suite *MemberServiceTestSuite) TestDeleteMember_NotFound() {
	ctx := context.Background()

	err := suite.service.DeleteMember(ctx, "m-404")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.mockGateway.AssertNotCalled(suite.T(), "Delete", ctx, "m-404")
}

func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
