package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
	"github.com/alecrim/financeiro-cli/internal/core/ports"
)

// PaymentGateway talks to the /pagamentos/ collection.
type PaymentGateway struct {
	client *Client
}

func NewPaymentGateway(client *Client) *PaymentGateway {
	return &PaymentGateway{client: client}
}

func (g *PaymentGateway) List(ctx context.Context, filter domain.PaymentFilter) (*ports.PaymentPage, error) {
	var resp paymentPageResponse
	if err := g.client.getJSON(ctx, "/pagamentos/", filter.Query(), &resp); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

func (g *PaymentGateway) Create(ctx context.Context, in ports.SavePaymentInput) (*domain.Payment, error) {
	body, err := savePaymentBody(in)
	if err != nil {
		return nil, err
	}

	var resp paymentResponse
	if err := g.client.sendJSON(ctx, http.MethodPost, "/pagamentos/", body, &resp); err != nil {
		return nil, err
	}
	p := resp.toDomain()
	return &p, nil
}

func (g *PaymentGateway) Update(ctx context.Context, id int64, in ports.SavePaymentInput) (*domain.Payment, error) {
	body, err := savePaymentBody(in)
	if err != nil {
		return nil, err
	}

	var resp paymentResponse
	if err := g.client.sendJSON(ctx, http.MethodPut, idPath("pagamentos", id), body, &resp); err != nil {
		return nil, err
	}
	p := resp.toDomain()
	return &p, nil
}

func (g *PaymentGateway) Delete(ctx context.Context, id int64) error {
	return g.client.sendJSON(ctx, http.MethodDelete, idPath("pagamentos", id), nil, nil)
}

// savePaymentBody maps the editor output onto the wire shape. Empty
// optional fields become JSON null.
func savePaymentBody(in ports.SavePaymentInput) (savePaymentRequest, error) {
	body := savePaymentRequest{
		Descricao:       in.Description,
		Valor:           in.Amount,
		DataCompetencia: in.AccrualDate,
		Status:          string(in.Status),
	}
	if in.DueDate != "" {
		due := in.DueDate
		body.DataVencimento = &due
	}
	if in.InvoiceNumber != "" {
		inv := in.InvoiceNumber
		body.NumeroNotaFiscal = &inv
	}
	if in.CategoryID != "" {
		id, err := strconv.ParseInt(in.CategoryID, 10, 64)
		if err != nil {
			return savePaymentRequest{}, &domain.ValidationError{Fields: map[string]string{
				"categoria": "must be a numeric category id",
			}}
		}
		body.Categoria = &id
	}
	return body, nil
}
