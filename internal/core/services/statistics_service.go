package services

import (
	"context"

	"github.com/hisabapp/hisab/internal/core/domain"
	portssvc "github.com/hisabapp/hisab/internal/core/ports/services"
	"github.com/hisabapp/hisab/internal/store"
)

// StatisticsService reads the cached aggregates. Statistics are never
// computed client-side; mutations schedule refetches through the
// refresher and this service only ever observes the latest snapshot.
type StatisticsService struct {
	st *store.Store
}

func NewStatisticsService(st *store.Store) *StatisticsService {
	return &StatisticsService{st: st}
}

var _ portssvc.StatisticsSvcFacade = (*StatisticsService)(nil)

func (s *StatisticsService) LoanStatistics(ctx context.Context) domain.LoanStatistics {
	return s.st.LoanStats()
}

func (s *StatisticsService) MoneyStatistics(ctx context.Context) domain.MoneyStatistics {
	return s.st.MoneyStats()
}
