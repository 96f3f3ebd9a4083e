package sheetdb

import (
	"context"
	"net/http"

	"github.com/hisabapp/hisab/internal/core/domain"
)

// CategoryGateway implements ports.CategoryGateway.
type CategoryGateway struct {
	c *Client
}

func (g *CategoryGateway) List(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := g.c.do(ctx, http.MethodGet, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *CategoryGateway) Create(ctx context.Context, cat domain.Category) (domain.Category, error) {
	cat.CategoryID = ""
	var out domain.Category
	if err := g.c.do(ctx, http.MethodPost, "/categories", cat, &out); err != nil {
		return domain.Category{}, err
	}
	return out, nil
}

func (g *CategoryGateway) Update(ctx context.Context, id string, cat domain.Category) (domain.Category, error) {
	var out domain.Category
	if err := g.c.do(ctx, http.MethodPut, "/categories/"+id, cat, &out); err != nil {
		return domain.Category{}, err
	}
	return out, nil
}

func (g *CategoryGateway) Delete(ctx context.Context, id string) error {
	var ack deleteAck
	return g.c.do(ctx, http.MethodDelete, "/categories/"+id, nil, &ack)
}
