package rest

import (
	"context"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
)

// ManagedClientGateway lists client accounts on the admin surface. The
// backend rejects non-superusers; no role check happens on this side.
type ManagedClientGateway struct {
	client *Client
}

func NewManagedClientGateway(client *Client) *ManagedClientGateway {
	return &ManagedClientGateway{client: client}
}

func (g *ManagedClientGateway) List(ctx context.Context) ([]domain.ManagedClient, error) {
	var resp []managedClientResponse
	if err := g.client.getJSON(ctx, "/admin/clientes/", nil, &resp); err != nil {
		return nil, err
	}

	clients := make([]domain.ManagedClient, 0, len(resp))
	for _, item := range resp {
		clients = append(clients, domain.ManagedClient{ID: item.ID, CompanyName: item.NomeEmpresa})
	}
	return clients, nil
}
