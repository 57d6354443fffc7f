package service

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
)

type stubExportGateway struct {
	data      []byte
	err       error
	lastQuery url.Values
	calls     int
}

func (g *stubExportGateway) Export(_ context.Context, query url.Values) ([]byte, error) {
	g.calls++
	g.lastQuery = query
	if g.err != nil {
		return nil, g.err
	}
	return g.data, nil
}

func TestExportFiltered_SavesFileWithFormatExtension(t *testing.T) {
	dir := t.TempDir()
	gw := &stubExportGateway{data: []byte("%PDF-1.4 fake")}
	svc := NewExportService(gw, dir, zerolog.Nop())

	filter := domain.PaymentFilter{Description: "aluguel", Status: domain.StatusSettled}
	res, err := svc.ExportFiltered(context.Background(), filter, domain.FormatPDF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Path != filepath.Join(dir, "pagamentos.pdf") {
		t.Fatalf("unexpected path: %s", res.Path)
	}
	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatalf("saved file unreadable: %v", err)
	}
	if string(data) != "%PDF-1.4 fake" {
		t.Fatalf("unexpected content: %q", data)
	}

	// Query must be the union of the active filters and the format.
	if got := gw.lastQuery.Get("formato"); got != "pdf" {
		t.Fatalf("expected formato=pdf, got %q", got)
	}
	if got := gw.lastQuery.Get("descricao"); got != "aluguel" {
		t.Fatalf("expected descricao filter, got %q", got)
	}
	if got := gw.lastQuery.Get("status"); got != "Pago" {
		t.Fatalf("expected status filter, got %q", got)
	}
}

func TestExportFiltered_ExcelUsesXlsxExtension(t *testing.T) {
	dir := t.TempDir()
	gw := &stubExportGateway{data: []byte("PK fake xlsx")}
	svc := NewExportService(gw, dir, zerolog.Nop())

	res, err := svc.ExportFiltered(context.Background(), domain.PaymentFilter{}, domain.FormatExcel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(res.Path) != "pagamentos.xlsx" {
		t.Fatalf("unexpected filename: %s", res.Path)
	}
}

func TestExportFiltered_InvalidFormatRejectedBeforeDispatch(t *testing.T) {
	gw := &stubExportGateway{}
	svc := NewExportService(gw, t.TempDir(), zerolog.Nop())

	_, err := svc.ExportFiltered(context.Background(), domain.PaymentFilter{}, "csv")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if gw.calls != 0 {
		t.Fatal("nothing should be dispatched for an invalid format")
	}
}

func TestExportReport_RequiresBothDates(t *testing.T) {
	gw := &stubExportGateway{}
	svc := NewExportService(gw, t.TempDir(), zerolog.Nop())

	_, err := svc.ExportReport(context.Background(), "2025-01-01", "", domain.FormatExcel)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["data_fim"]; !ok {
		t.Fatalf("expected data_fim error, got %v", ve.Fields)
	}
	if gw.calls != 0 {
		t.Fatal("nothing should be dispatched without both dates")
	}
}

func TestExportReport_SavesReportFilename(t *testing.T) {
	dir := t.TempDir()
	gw := &stubExportGateway{data: []byte("bytes")}
	svc := NewExportService(gw, dir, zerolog.Nop())

	res, err := svc.ExportReport(context.Background(), "2025-01-01", "2025-01-31", domain.FormatPDF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(res.Path) != "relatorio_pagamentos.pdf" {
		t.Fatalf("unexpected filename: %s", res.Path)
	}
	if gw.lastQuery.Get("data_inicio") != "2025-01-01" || gw.lastQuery.Get("data_fim") != "2025-01-31" {
		t.Fatalf("date range not forwarded: %v", gw.lastQuery)
	}
}

func TestExportFiltered_GatewayFailureSurfacesOnce(t *testing.T) {
	dir := t.TempDir()
	gw := &stubExportGateway{err: errors.New("boom")}
	svc := NewExportService(gw, dir, zerolog.Nop())

	if _, err := svc.ExportFiltered(context.Background(), domain.PaymentFilter{}, domain.FormatPDF); err == nil {
		t.Fatal("expected error")
	}
	if gw.calls != 1 {
		t.Fatalf("no retries expected, got %d calls", gw.calls)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("no partial file expected, found %v", entries)
	}
}
