package sheetdb_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hisabapp/hisab/internal/apperrors"
	"github.com/hisabapp/hisab/internal/core/domain"
	"github.com/hisabapp/hisab/internal/gateway/sheetdb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SheetDBTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
}

func (suite *SheetDBTestSuite) SetupTest() {
	suite.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.handler(w, r)
	}))
}

func (suite *SheetDBTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *SheetDBTestSuite) TestList_SendsBearerTokenAndDecodes() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		suite.Equal(http.MethodGet, r.Method)
		suite.Equal("/members", r.URL.Path)
		suite.Equal("Bearer sekrit", r.Header.Get("Authorization"))
		suite.Equal("application/json", r.Header.Get("Accept"))
		_ = json.NewEncoder(w).Encode([]domain.Member{{MemberID: "m-1", Name: "Asha"}})
	}

	gw := sheetdb.NewGateway(suite.server.URL, "sekrit")
	members, err := gw.Members.List(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(members, 1)
	suite.Equal("m-1", members[0].MemberID)
}

func (suite *SheetDBTestSuite) TestCreate_StripsPlaceholderIDAndReturnsConfirmed() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		suite.Equal(http.MethodPost, r.Method)
		suite.Equal("/loans", r.URL.Path)
		suite.Equal("application/json", r.Header.Get("Content-Type"))

		var received domain.Loan
		suite.Require().NoError(json.NewDecoder(r.Body).Decode(&received))
		// The placeholder id never reaches the backend.
		suite.Empty(received.LoanID)
		suite.Equal("m-1", received.MemberID)

		received.LoanID = "l-100"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(received)
	}

	gw := sheetdb.NewGateway(suite.server.URL, "")
	confirmed, err := gw.Loans.Create(context.Background(), domain.Loan{
		LoanID:   "temp-123",
		MemberID: "m-1",
		Amount:   decimal.NewFromInt(100),
		Currency: domain.BDT,
		Status:   domain.StatusLoan,
	})

	suite.Require().NoError(err)
	suite.Equal("l-100", confirmed.LoanID)
}

func (suite *SheetDBTestSuite) TestUpdate_PutsToEntityPath() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		suite.Equal(http.MethodPut, r.Method)
		suite.Equal("/accounts/a-1", r.URL.Path)
		var received domain.Account
		suite.Require().NoError(json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(received)
	}

	gw := sheetdb.NewGateway(suite.server.URL, "")
	confirmed, err := gw.Accounts.Update(context.Background(), "a-1", domain.Account{
		AccountID: "a-1", Name: "Wallet", Currency: domain.BDT,
	})

	suite.Require().NoError(err)
	suite.Equal("Wallet", confirmed.Name)
}

func (suite *SheetDBTestSuite) TestDelete_AcceptsAck() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		suite.Equal(http.MethodDelete, r.Method)
		suite.Equal("/transactions/t-1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}

	gw := sheetdb.NewGateway(suite.server.URL, "")
	err := gw.Transactions.Delete(context.Background(), "t-1")

	suite.Require().NoError(err)
}

func (suite *SheetDBTestSuite) TestNon2xx_WrapsGatewayError() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "sheet quota exceeded", http.StatusServiceUnavailable)
	}

	gw := sheetdb.NewGateway(suite.server.URL, "")
	_, err := gw.Members.List(context.Background())

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrGateway))
	suite.Contains(err.Error(), "status 503")
	suite.Contains(err.Error(), "sheet quota exceeded")
}

func (suite *SheetDBTestSuite) TestTransportError_WrapsGatewayError() {
	gw := sheetdb.NewGateway("http://127.0.0.1:1", "")
	_, err := gw.Members.List(context.Background())

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrGateway))
}

func (suite *SheetDBTestSuite) TestStatistics_FetchesBothAggregates() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/statistics/loans":
			_ = json.NewEncoder(w).Encode(domain.LoanStatistics{
				Totals: map[domain.Currency]domain.CurrencyTotals{
					domain.BDT: {Net: decimal.NewFromInt(60)},
				},
			})
		case "/statistics/money":
			_ = json.NewEncoder(w).Encode(domain.MoneyStatistics{
				NetBalance: decimal.NewFromInt(1500),
			})
		default:
			http.NotFound(w, r)
		}
	}

	gw := sheetdb.NewGateway(suite.server.URL, "")

	loanStats, err := gw.Statistics.LoanStatistics(context.Background())
	suite.Require().NoError(err)
	suite.True(loanStats.Totals[domain.BDT].Net.Equal(decimal.NewFromInt(60)))

	moneyStats, err := gw.Statistics.MoneyStatistics(context.Background())
	suite.Require().NoError(err)
	suite.True(moneyStats.NetBalance.Equal(decimal.NewFromInt(1500)))
}

func TestSheetDBTestSuite(t *testing.T) {
	suite.Run(t, new(SheetDBTestSuite))
}
