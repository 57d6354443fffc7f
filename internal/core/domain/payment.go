package domain

// PaymentStatus is the stored settlement status. Values match the backend's
// exact casing and round-trip unchanged.
type PaymentStatus string

const (
	StatusPending PaymentStatus = "Pendente"
	StatusSettled PaymentStatus = "Pago"
	// StatusOverdue only ever appears in the server-computed display status,
	// never in the stored one.
	StatusOverdue PaymentStatus = "Atrasado"
)

// PaymentKind discriminates how a payment is captured. A payable carries a
// due date and stays pending; a settled-at-capture payment (card, PIX) has
// no due date and is settled immediately.
type PaymentKind string

const (
	KindPayable          PaymentKind = "payable"
	KindSettledAtCapture PaymentKind = "settled"
)

// Payment is a single payable or point-of-sale expense. Amount is kept as
// the decimal string the backend serves; DisplayStatus is computed
// server-side from the stored status and the due date versus today, and is
// treated as opaque everywhere it is shown.
type Payment struct {
	ID            int64
	Description   string
	Amount        string
	AccrualDate   string // YYYY-MM-DD
	DueDate       string // YYYY-MM-DD, empty when none
	CategoryID    *int64
	CategoryName  string
	Status        PaymentStatus
	DisplayStatus PaymentStatus
	InvoiceNumber string
}

// Kind infers the capture kind from due-date presence, mirroring how an
// existing record is loaded back into the editor.
func (p Payment) Kind() PaymentKind {
	if p.DueDate != "" {
		return KindPayable
	}
	return KindSettledAtCapture
}

// Totals is the aggregate envelope the backend returns alongside a filtered
// page of payments.
type Totals struct {
	Settled float64
	Pending float64
	Overdue float64
}

// Balance is derived client-side and never persisted.
func (t Totals) Balance() float64 {
	return t.Settled - (t.Pending + t.Overdue)
}
