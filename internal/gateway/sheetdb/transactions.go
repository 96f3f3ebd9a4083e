package sheetdb

import (
	"context"
	"net/http"

	"github.com/hisabapp/hisab/internal/core/domain"
)

// TransactionGateway implements ports.TransactionGateway.
type TransactionGateway struct {
	c *Client
}

func (g *TransactionGateway) List(ctx context.Context) ([]domain.Transaction, error) {
	var out []domain.Transaction
	if err := g.c.do(ctx, http.MethodGet, "/transactions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *TransactionGateway) Create(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	t.TransactionID = ""
	var out domain.Transaction
	if err := g.c.do(ctx, http.MethodPost, "/transactions", t, &out); err != nil {
		return domain.Transaction{}, err
	}
	return out, nil
}

func (g *TransactionGateway) Update(ctx context.Context, id string, t domain.Transaction) (domain.Transaction, error) {
	var out domain.Transaction
	if err := g.c.do(ctx, http.MethodPut, "/transactions/"+id, t, &out); err != nil {
		return domain.Transaction{}, err
	}
	return out, nil
}

func (g *TransactionGateway) Delete(ctx context.Context, id string) error {
	var ack deleteAck
	return g.c.do(ctx, http.MethodDelete, "/transactions/"+id, nil, &ack)
}
