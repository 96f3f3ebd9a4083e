package sheetdb

import (
	"context"
	"net/http"

	"github.com/hisabapp/hisab/internal/core/domain"
)

// MemberGateway implements ports.MemberGateway.
type MemberGateway struct {
	c *Client
}

func (g *MemberGateway) List(ctx context.Context) ([]domain.Member, error) {
	var out []domain.Member
	if err := g.c.do(ctx, http.MethodGet, "/members", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *MemberGateway) Create(ctx context.Context, m domain.Member) (domain.Member, error) {
	// The server assigns the real id and creation timestamp; the
	// placeholder id in m is ignored on its side.
	m.MemberID = ""
	var out domain.Member
	if err := g.c.do(ctx, http.MethodPost, "/members", m, &out); err != nil {
		return domain.Member{}, err
	}
	return out, nil
}

func (g *MemberGateway) Update(ctx context.Context, id string, m domain.Member) (domain.Member, error) {
	var out domain.Member
	if err := g.c.do(ctx, http.MethodPut, "/members/"+id, m, &out); err != nil {
		return domain.Member{}, err
	}
	return out, nil
}

func (g *MemberGateway) Delete(ctx context.Context, id string) error {
	var ack deleteAck
	return g.c.do(ctx, http.MethodDelete, "/members/"+id, nil, &ack)
}
