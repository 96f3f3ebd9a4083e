package sheetdb

import (
	"context"
	"net/http"

	"github.com/hisabapp/hisab/internal/core/domain"
)

// LoanGateway implements ports.LoanGateway.
type LoanGateway struct {
	c *Client
}

func (g *LoanGateway) List(ctx context.Context) ([]domain.Loan, error) {
	var out []domain.Loan
	if err := g.c.do(ctx, http.MethodGet, "/loans", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *LoanGateway) Create(ctx context.Context, l domain.Loan) (domain.Loan, error) {
	l.LoanID = ""
	var out domain.Loan
	if err := g.c.do(ctx, http.MethodPost, "/loans", l, &out); err != nil {
		return domain.Loan{}, err
	}
	return out, nil
}

func (g *LoanGateway) Update(ctx context.Context, id string, l domain.Loan) (domain.Loan, error) {
	var out domain.Loan
	if err := g.c.do(ctx, http.MethodPut, "/loans/"+id, l, &out); err != nil {
		return domain.Loan{}, err
	}
	return out, nil
}

func (g *LoanGateway) Delete(ctx context.Context, id string) error {
	var ack deleteAck
	return g.c.do(ctx, http.MethodDelete, "/loans/"+id, nil, &ack)
}
