package rest

import (
	"github.com/alecrim/financeiro-cli/internal/core/domain"
	"github.com/alecrim/financeiro-cli/internal/core/ports"
)

// Wire types mirror the backend's JSON contract exactly, Portuguese field
// names included. They are deliberately separate from the domain types so
// the external contract is not coupled to internal changes.

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Access string `json:"access"`
}

type profileResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Superuser bool   `json:"is_superuser"`
	ClienteID *int64 `json:"cliente_id"`
}

type paymentResponse struct {
	ID               int64   `json:"id"`
	Descricao        string  `json:"descricao"`
	Valor            string  `json:"valor"`
	DataCompetencia  string  `json:"data_competencia"`
	DataVencimento   *string `json:"data_vencimento"`
	Categoria        *int64  `json:"categoria"`
	CategoriaNome    *string `json:"categoria_nome"`
	Status           string  `json:"status"`
	StatusDisplay    string  `json:"status_display"`
	NumeroNotaFiscal *string `json:"numero_nota_fiscal"`
}

type totaisResponse struct {
	Pago     float64 `json:"pago"`
	Pendente float64 `json:"pendente"`
	Atrasado float64 `json:"atrasado"`
}

type paymentPageResponse struct {
	Results  []paymentResponse `json:"results"`
	Totais   totaisResponse    `json:"totais"`
	Count    int64             `json:"count"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
}

// savePaymentRequest is the create/update payload. Nullable fields are
// pointers so an absent due date serializes as null, never "".
type savePaymentRequest struct {
	Descricao        string  `json:"descricao"`
	Valor            string  `json:"valor"`
	DataCompetencia  string  `json:"data_competencia"`
	DataVencimento   *string `json:"data_vencimento"`
	Status           string  `json:"status"`
	Categoria        *int64  `json:"categoria"`
	NumeroNotaFiscal *string `json:"numero_nota_fiscal"`
}

type categoryResponse struct {
	ID        int64   `json:"id"`
	Nome      string  `json:"nome"`
	Descricao *string `json:"descricao"`
}

type saveCategoryRequest struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
}

type managedClientResponse struct {
	ID          int64  `json:"id"`
	NomeEmpresa string `json:"nome_empresa"`
}

// --- wire → domain mapping ---

func (r paymentResponse) toDomain() domain.Payment {
	p := domain.Payment{
		ID:            r.ID,
		Description:   r.Descricao,
		Amount:        r.Valor,
		AccrualDate:   r.DataCompetencia,
		CategoryID:    r.Categoria,
		Status:        domain.PaymentStatus(r.Status),
		DisplayStatus: domain.PaymentStatus(r.StatusDisplay),
	}
	if r.DataVencimento != nil {
		p.DueDate = *r.DataVencimento
	}
	if r.CategoriaNome != nil {
		p.CategoryName = *r.CategoriaNome
	}
	if r.NumeroNotaFiscal != nil {
		p.InvoiceNumber = *r.NumeroNotaFiscal
	}
	return p
}

func (r paymentPageResponse) toDomain() *ports.PaymentPage {
	page := &ports.PaymentPage{
		Totals: domain.Totals{
			Settled: r.Totais.Pago,
			Pending: r.Totais.Pendente,
			Overdue: r.Totais.Atrasado,
		},
		Count: r.Count,
	}
	if r.Next != nil {
		page.Next = *r.Next
	}
	if r.Previous != nil {
		page.Previous = *r.Previous
	}
	// A missing results array stays nil so callers can tell "absent" from
	// "empty" and log accordingly.
	if r.Results != nil {
		page.Results = make([]domain.Payment, 0, len(r.Results))
		for _, item := range r.Results {
			page.Results = append(page.Results, item.toDomain())
		}
	}
	return page
}

func (r categoryResponse) toDomain() domain.Category {
	c := domain.Category{ID: r.ID, Name: r.Nome}
	if r.Descricao != nil {
		c.Description = *r.Descricao
	}
	return c
}
