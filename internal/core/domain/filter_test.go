package domain

import "testing"

func TestPaymentFilter_QueryOmitsEmptyFields(t *testing.T) {
	f := PaymentFilter{Sort: DefaultSort()}

	q := f.Query()
	if len(q) != 1 {
		t.Fatalf("expected only ordering, got %v", q)
	}
	if got := q.Get("ordering"); got != "-data_competencia" {
		t.Fatalf("expected default ordering -data_competencia, got %q", got)
	}
}

func TestPaymentFilter_QueryIncludesNonEmptyFields(t *testing.T) {
	f := PaymentFilter{
		Description: "aluguel",
		Status:      StatusOverdue,
		CategoryID:  "3",
		AccrualFrom: "2025-01-01",
		AccrualTo:   "2025-01-31",
		Sort:        SortState{Field: SortByAmount},
	}

	q := f.Query()
	want := map[string]string{
		"descricao":               "aluguel",
		"status":                  "Atrasado",
		"categoria":               "3",
		"data_competencia_inicio": "2025-01-01",
		"data_competencia_fim":    "2025-01-31",
		"ordering":                "valor",
	}
	if len(q) != len(want) {
		t.Fatalf("expected %d params, got %v", len(want), q)
	}
	for k, v := range want {
		if got := q.Get(k); got != v {
			t.Errorf("param %s: expected %q, got %q", k, v, got)
		}
	}
}

func TestPaymentFilter_ExportQuery(t *testing.T) {
	f := PaymentFilter{Description: "luz", Sort: DefaultSort()}

	q := f.ExportQuery(FormatPDF)
	if got := q.Get("formato"); got != "pdf" {
		t.Fatalf("expected formato=pdf, got %q", got)
	}
	if got := q.Get("descricao"); got != "luz" {
		t.Fatalf("expected descricao=luz, got %q", got)
	}
	if q.Has("ordering") {
		t.Fatalf("export query must not carry ordering, got %v", q)
	}
}

func TestSortState_ToggleSameFieldFlipsDirection(t *testing.T) {
	s := SortState{Field: SortByAmount, Descending: false}

	s.Toggle(SortByAmount)
	if !s.Descending {
		t.Fatal("toggling the active field should flip to descending")
	}
	s.Toggle(SortByAmount)
	if s.Descending {
		t.Fatal("toggling again should flip back to ascending")
	}
}

func TestSortState_ToggleNewFieldResetsToAscending(t *testing.T) {
	s := SortState{Field: SortByAccrualDate, Descending: true}

	s.Toggle(SortByDescription)
	if s.Field != SortByDescription {
		t.Fatalf("expected field descricao, got %s", s.Field)
	}
	if s.Descending {
		t.Fatal("selecting a new field should reset direction to ascending")
	}
	if got := s.Ordering(); got != "descricao" {
		t.Fatalf("expected ordering descricao, got %q", got)
	}
}

func TestExportFormat_Extension(t *testing.T) {
	if got := FormatExcel.Extension(); got != "xlsx" {
		t.Fatalf("excel extension: got %q", got)
	}
	if got := FormatPDF.Extension(); got != "pdf" {
		t.Fatalf("pdf extension: got %q", got)
	}
}
