package domain

import "net/url"

// SortField names a sortable payment column using the backend's ordering
// vocabulary.
type SortField string

const (
	SortByDescription SortField = "descricao"
	SortByAccrualDate SortField = "data_competencia"
	SortByDueDate     SortField = "data_vencimento"
	SortByAmount      SortField = "valor"
	SortByCategory    SortField = "categoria"
)

// SortState is the single active sort field and direction.
//
// Transition on Toggle(f): if f is the current field the direction flips,
// otherwise f becomes the field and direction resets to ascending.
type SortState struct {
	Field      SortField
	Descending bool
}

// DefaultSort matches the payments view's initial ordering.
func DefaultSort() SortState {
	return SortState{Field: SortByAccrualDate, Descending: true}
}

// Toggle advances the sort state machine for a click on field f.
func (s *SortState) Toggle(f SortField) {
	if s.Field == f {
		s.Descending = !s.Descending
		return
	}
	s.Field = f
	s.Descending = false
}

// Ordering renders the state as the backend's ±field ordering parameter.
func (s SortState) Ordering() string {
	if s.Descending {
		return "-" + string(s.Field)
	}
	return string(s.Field)
}

// PaymentFilter is the ephemeral filter set driving list fetches. It is
// re-derived on every edit and never persisted. Dates are YYYY-MM-DD.
type PaymentFilter struct {
	Description string
	Status      PaymentStatus
	CategoryID  string
	AccrualFrom string
	AccrualTo   string
	Sort        SortState
}

// Query serializes the filter for the list endpoint. Empty fields are
// omitted entirely, never sent as empty strings; ordering is always present.
func (f PaymentFilter) Query() url.Values {
	v := f.exportQuery()
	v.Set("ordering", f.Sort.Ordering())
	return v
}

// exportQuery is the filter portion shared with the export endpoint, which
// takes the same parameters minus ordering.
func (f PaymentFilter) exportQuery() url.Values {
	v := url.Values{}
	if f.Description != "" {
		v.Set("descricao", f.Description)
	}
	if f.Status != "" {
		v.Set("status", string(f.Status))
	}
	if f.CategoryID != "" {
		v.Set("categoria", f.CategoryID)
	}
	if f.AccrualFrom != "" {
		v.Set("data_competencia_inicio", f.AccrualFrom)
	}
	if f.AccrualTo != "" {
		v.Set("data_competencia_fim", f.AccrualTo)
	}
	return v
}

// ExportQuery serializes the filter plus the requested format for the
// export endpoint.
func (f PaymentFilter) ExportQuery(format ExportFormat) url.Values {
	v := f.exportQuery()
	v.Set("formato", string(format))
	return v
}

// ExportFormat selects the server-generated report format.
type ExportFormat string

const (
	FormatExcel ExportFormat = "excel"
	FormatPDF   ExportFormat = "pdf"
)

// Extension is the local file extension for a downloaded export.
func (f ExportFormat) Extension() string {
	if f == FormatPDF {
		return "pdf"
	}
	return "xlsx"
}

// Valid reports whether the format is one the backend understands.
func (f ExportFormat) Valid() bool {
	return f == FormatExcel || f == FormatPDF
}
