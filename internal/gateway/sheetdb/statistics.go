package sheetdb

import (
	"context"
	"net/http"

	"github.com/hisabapp/hisab/internal/core/domain"
)

// StatisticsGateway implements ports.StatisticsGateway. The aggregates
// are computed by the sheet backend, not here.
type StatisticsGateway struct {
	c *Client
}

func (g *StatisticsGateway) LoanStatistics(ctx context.Context) (domain.LoanStatistics, error) {
	var out domain.LoanStatistics
	if err := g.c.do(ctx, http.MethodGet, "/statistics/loans", nil, &out); err != nil {
		return domain.LoanStatistics{}, err
	}
	return out, nil
}

func (g *StatisticsGateway) MoneyStatistics(ctx context.Context) (domain.MoneyStatistics, error) {
	var out domain.MoneyStatistics
	if err := g.c.do(ctx, http.MethodGet, "/statistics/money", nil, &out); err != nil {
		return domain.MoneyStatistics{}, err
	}
	return out, nil
}
