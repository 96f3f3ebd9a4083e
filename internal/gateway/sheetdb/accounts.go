package sheetdb

import (
	"context"
	"net/http"

	"github.com/hisabapp/hisab/internal/core/domain"
)

// AccountGateway implements ports.AccountGateway.
type AccountGateway struct {
	c *Client
}

func (g *AccountGateway) List(ctx context.Context) ([]domain.Account, error) {
	var out []domain.Account
	if err := g.c.do(ctx, http.MethodGet, "/accounts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *AccountGateway) Create(ctx context.Context, a domain.Account) (domain.Account, error) {
	a.AccountID = ""
	var out domain.Account
	if err := g.c.do(ctx, http.MethodPost, "/accounts", a, &out); err != nil {
		return domain.Account{}, err
	}
	return out, nil
}

func (g *AccountGateway) Update(ctx context.Context, id string, a domain.Account) (domain.Account, error) {
	var out domain.Account
	if err := g.c.do(ctx, http.MethodPut, "/accounts/"+id, a, &out); err != nil {
		return domain.Account{}, err
	}
	return out, nil
}

func (g *AccountGateway) Delete(ctx context.Context, id string) error {
	var ack deleteAck
	return g.c.do(ctx, http.MethodDelete, "/accounts/"+id, nil, &ack)
}
