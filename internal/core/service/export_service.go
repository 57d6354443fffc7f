package service

import (
	"context"
	"net/url"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
	"github.com/alecrim/financeiro-cli/internal/core/ports"
)

// ExportService downloads server-generated reports and saves them under a
// fixed filename pattern in outDir. The operation is fire and forget: a
// failure is surfaced once and nothing is retried or cleaned up.
type ExportService struct {
	gateway ports.ExportGateway
	outDir  string
	logger  zerolog.Logger
}

func NewExportService(gateway ports.ExportGateway, outDir string, logger zerolog.Logger) *ExportService {
	if outDir == "" {
		outDir = "."
	}
	return &ExportService{gateway: gateway, outDir: outDir, logger: logger}
}

// ExportFiltered requests the current filter set in the given format and
// saves it as pagamentos.<ext>.
func (s *ExportService) ExportFiltered(ctx context.Context, filter domain.PaymentFilter, format domain.ExportFormat) (*ports.ExportResult, error) {
	if !format.Valid() {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"formato": "must be one of: excel, pdf",
		}}
	}
	return s.download(ctx, filter.ExportQuery(format), "pagamentos."+format.Extension())
}

// ExportReport requests a date-range report and saves it as
// relatorio_pagamentos.<ext>. Both dates are required before dispatch.
func (s *ExportService) ExportReport(ctx context.Context, from, to string, format domain.ExportFormat) (*ports.ExportResult, error) {
	fields := map[string]string{}
	if from == "" {
		fields["data_inicio"] = "start date is required"
	}
	if to == "" {
		fields["data_fim"] = "end date is required"
	}
	if !format.Valid() {
		fields["formato"] = "must be one of: excel, pdf"
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	q := url.Values{}
	q.Set("data_inicio", from)
	q.Set("data_fim", to)
	q.Set("formato", string(format))
	return s.download(ctx, q, "relatorio_pagamentos."+format.Extension())
}

func (s *ExportService) download(ctx context.Context, query url.Values, filename string) (*ports.ExportResult, error) {
	data, err := s.gateway.Export(ctx, query)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(s.outDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, err
	}

	s.logger.Info().Str("path", path).Int("bytes", len(data)).Msg("export saved")
	return &ports.ExportResult{Path: path, Size: len(data)}, nil
}
