package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
)

func (a *App) runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	filter := filterFlags(fs)
	format := fs.String("formato", "excel", "export format (excel or pdf)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.Exports.ExportFiltered(ctx, *filter, domain.ExportFormat(*format))
	if err != nil {
		return err
	}
	a.notify(fmt.Sprintf("Exportação salva em %s (%d bytes).", result.Path, result.Size))
	return nil
}

func (a *App) runReport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	from := fs.String("de", "", "report start date (YYYY-MM-DD)")
	to := fs.String("ate", "", "report end date (YYYY-MM-DD)")
	format := fs.String("formato", "excel", "report format (excel or pdf)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.Exports.ExportReport(ctx, *from, *to, domain.ExportFormat(*format))
	if err != nil {
		return err
	}
	a.notify(fmt.Sprintf("Relatório salvo em %s (%d bytes).", result.Path, result.Size))
	return nil
}
