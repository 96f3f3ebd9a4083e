package services

import (
	"github.com/hisabapp/hisab/internal/core/ports"
	portssvc "github.com/hisabapp/hisab/internal/core/ports/services"
	"github.com/hisabapp/hisab/internal/platform/config"
	"github.com/hisabapp/hisab/internal/store"
)

// ServiceContainer bundles every service facade for handler wiring.
type ServiceContainer struct {
	Members      portssvc.MemberSvcFacade
	Loans        portssvc.LoanSvcFacade
	Accounts     portssvc.AccountSvcFacade
	Categories   portssvc.CategorySvcFacade
	Transactions portssvc.TransactionSvcFacade
	Refresher    portssvc.RefresherSvcFacade
	Statistics   portssvc.StatisticsSvcFacade
	GoogleOAuth  portssvc.GoogleOAuthSvcFacade
	Token        portssvc.TokenSvcFacade
}

// NewServiceContainer wires the mutation engine over one shared store and
// gateway.
func NewServiceContainer(cfg *config.Config, st *store.Store, gw ports.Gateway) *ServiceContainer {
	refresher := NewRefresherService(st, gw)
	return &ServiceContainer{
		Members:      NewMemberService(st, gw.Members, refresher),
		Loans:        NewLoanService(st, gw.Loans, refresher),
		Accounts:     NewAccountService(st, gw.Accounts, refresher),
		Categories:   NewCategoryService(st, gw.Categories, refresher),
		Transactions: NewTransactionService(st, gw.Transactions, refresher),
		Refresher:    refresher,
		Statistics:   NewStatisticsService(st),
		GoogleOAuth:  NewGoogleOAuthService(cfg),
		Token:        NewTokenService(cfg),
	}
}
