package cli

import (
	"strconv"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
	"github.com/alecrim/financeiro-cli/internal/core/ports"
)

// PaymentForm is the record editor input. Which fields are required depends
// on Kind: a payable needs a due date and stays pending, a settled-at-capture
// payment drops the due date and is forced to settled. The whole form is
// validated before anything is dispatched.
type PaymentForm struct {
	Kind          string `validate:"required,oneof=payable settled"`
	Description   string `validate:"required,max=255"`
	Amount        string `validate:"required"`
	AccrualDate   string `validate:"required,datetime=2006-01-02"`
	DueDate       string `validate:"omitempty,datetime=2006-01-02"`
	CategoryID    string `validate:"omitempty,numeric"`
	InvoiceNumber string
}

var paymentFieldNames = map[string]string{
	"Kind":          "tipo",
	"Description":   "descricao",
	"Amount":        "valor",
	"AccrualDate":   "data_competencia",
	"DueDate":       "data_vencimento",
	"CategoryID":    "categoria",
	"InvoiceNumber": "numero_nota_fiscal",
}

// InferKind resolves an omitted kind flag the same way the editor infers it
// when loading an existing record: a due date means payable.
func InferKind(dueDate string) string {
	if dueDate != "" {
		return string(domain.KindPayable)
	}
	return string(domain.KindSettledAtCapture)
}

// Build validates the form and maps it onto the wire-bound input, applying
// the capture-kind rules. It returns a ValidationError listing every failed
// field so the user can fix the whole submission at once.
func (f PaymentForm) Build() (*ports.SavePaymentInput, error) {
	fields := validateStruct(f, paymentFieldNames)

	if f.Amount != "" {
		amount, err := strconv.ParseFloat(f.Amount, 64)
		if err != nil || amount <= 0 {
			fields["valor"] = "must be a positive number"
		}
	}

	kind := domain.PaymentKind(f.Kind)
	if kind == domain.KindPayable && f.DueDate == "" {
		if _, seen := fields["data_vencimento"]; !seen {
			fields["data_vencimento"] = "is required for payables"
		}
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	in := &ports.SavePaymentInput{
		Description:   f.Description,
		Amount:        f.Amount,
		AccrualDate:   f.AccrualDate,
		CategoryID:    f.CategoryID,
		InvoiceNumber: f.InvoiceNumber,
	}
	switch kind {
	case domain.KindPayable:
		in.DueDate = f.DueDate
		in.Status = domain.StatusPending
	default:
		// Settled at capture: whatever due date was typed is discarded and
		// the status is forced, regardless of any prior stored value.
		in.DueDate = ""
		in.Status = domain.StatusSettled
	}
	return in, nil
}
