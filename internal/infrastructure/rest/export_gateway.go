package rest

import (
	"context"
	"net/url"
)

// ExportGateway fetches server-generated binary reports.
type ExportGateway struct {
	client *Client
}

func NewExportGateway(client *Client) *ExportGateway {
	return &ExportGateway{client: client}
}

func (g *ExportGateway) Export(ctx context.Context, query url.Values) ([]byte, error) {
	return g.client.getBytes(ctx, "/pagamentos/exportar/", query)
}
