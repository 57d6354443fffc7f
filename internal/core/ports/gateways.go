package ports

import (
	"context"
	"net/url"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
)

// SessionStore holds the two durable client-side entries: the access token
// and the impersonated client id. Implementations cache reads in memory so
// the HTTP transport can consult them on every outbound request.
type SessionStore interface {
	Token() string
	SetToken(token string) error
	ManagedClientID() string
	SetManagedClientID(id string) error
	ClearManagedClientID() error
	// Clear wipes both entries. Used by logout and by the failed-profile
	// side effect.
	Clear() error
}

// AuthGateway is the outbound edge for the credential exchange and profile
// lookup.
type AuthGateway interface {
	// ObtainToken exchanges a username/password pair for a bearer token.
	ObtainToken(ctx context.Context, username, password string) (string, error)
	// Profile retrieves the identity behind the current bearer token.
	Profile(ctx context.Context) (*domain.User, error)
}

// PaymentPage is a filtered page of payments plus the server-computed
// aggregate totals and pagination envelope.
type PaymentPage struct {
	Results  []domain.Payment
	Totals   domain.Totals
	Count    int64
	Next     string
	Previous string
}

// SavePaymentInput is the wire-bound payment payload after the editor has
// applied the capture-kind rules. Empty DueDate, CategoryID and
// InvoiceNumber serialize as null.
type SavePaymentInput struct {
	Description   string
	Amount        string
	AccrualDate   string
	DueDate       string
	Status        domain.PaymentStatus
	CategoryID    string
	InvoiceNumber string
}

// PaymentGateway is the outbound edge for the payments collection.
type PaymentGateway interface {
	List(ctx context.Context, filter domain.PaymentFilter) (*PaymentPage, error)
	Create(ctx context.Context, in SavePaymentInput) (*domain.Payment, error)
	Update(ctx context.Context, id int64, in SavePaymentInput) (*domain.Payment, error)
	Delete(ctx context.Context, id int64) error
}

// SaveCategoryInput carries a category create/update payload.
type SaveCategoryInput struct {
	Name        string
	Description string
}

// CategoryGateway is the outbound edge for the categories collection.
type CategoryGateway interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, in SaveCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id int64, in SaveCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

// ClientGateway lists managed client accounts. The backend enforces the
// superuser requirement, not this client.
type ClientGateway interface {
	List(ctx context.Context) ([]domain.ManagedClient, error)
}

// ExportGateway fetches a server-generated binary report for a query. The
// query is the active filter set plus the formato parameter.
type ExportGateway interface {
	Export(ctx context.Context, query url.Values) ([]byte, error)
}
