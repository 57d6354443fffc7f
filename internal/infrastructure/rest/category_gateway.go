package rest

import (
	"context"
	"net/http"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
	"github.com/alecrim/financeiro-cli/internal/core/ports"
)

// CategoryGateway talks to the /categorias/ collection.
type CategoryGateway struct {
	client *Client
}

func NewCategoryGateway(client *Client) *CategoryGateway {
	return &CategoryGateway{client: client}
}

func (g *CategoryGateway) List(ctx context.Context) ([]domain.Category, error) {
	var resp []categoryResponse
	if err := g.client.getJSON(ctx, "/categorias/", nil, &resp); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(resp))
	for _, item := range resp {
		categories = append(categories, item.toDomain())
	}
	return categories, nil
}

func (g *CategoryGateway) Create(ctx context.Context, in ports.SaveCategoryInput) (*domain.Category, error) {
	var resp categoryResponse
	body := saveCategoryRequest{Nome: in.Name, Descricao: in.Description}
	if err := g.client.sendJSON(ctx, http.MethodPost, "/categorias/", body, &resp); err != nil {
		return nil, err
	}
	c := resp.toDomain()
	return &c, nil
}

func (g *CategoryGateway) Update(ctx context.Context, id int64, in ports.SaveCategoryInput) (*domain.Category, error) {
	var resp categoryResponse
	body := saveCategoryRequest{Nome: in.Name, Descricao: in.Description}
	if err := g.client.sendJSON(ctx, http.MethodPut, idPath("categorias", id), body, &resp); err != nil {
		return nil, err
	}
	c := resp.toDomain()
	return &c, nil
}

func (g *CategoryGateway) Delete(ctx context.Context, id int64) error {
	return g.client.sendJSON(ctx, http.MethodDelete, idPath("categorias", id), nil, nil)
}
