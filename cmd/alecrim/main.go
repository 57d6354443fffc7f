package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/alecrim/financeiro-cli/internal/cli"
	"github.com/alecrim/financeiro-cli/internal/core/domain"
	"github.com/alecrim/financeiro-cli/internal/core/service"
	"github.com/alecrim/financeiro-cli/internal/infrastructure/rest"
	"github.com/alecrim/financeiro-cli/internal/infrastructure/store"
	"github.com/alecrim/financeiro-cli/internal/pkg/config"
	"github.com/alecrim/financeiro-cli/pkg/logger"
)

func main() {
	// A missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: !cfg.Production()})
	log := logger.Get()

	dbPath, err := cfg.SessionDBPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	sessionStore, err := store.Open(dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer sessionStore.Close()

	client := rest.NewClient(cfg.BaseURL(), sessionStore, log)

	app := &cli.App{
		Auth:       service.NewAuthService(rest.NewAuthGateway(client), sessionStore, log),
		Payments:   service.NewPaymentService(rest.NewPaymentGateway(client), log),
		Categories: service.NewCategoryService(rest.NewCategoryGateway(client), log),
		Clients:    service.NewClientService(rest.NewManagedClientGateway(client), sessionStore, log),
		Dashboard:  service.NewDashboardService(rest.NewPaymentGateway(client), log),
		Exports:    service.NewExportService(rest.NewExportGateway(client), cfg.ExportDir, log),
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Logger:     log,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError translates domain errors into the messages the interface shows
// instead of raw error chains.
func reportError(w *os.File, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		fmt.Fprintln(w, "Dados inválidos:")
		fields := make([]string, 0, len(ve.Fields))
		for field := range ve.Fields {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(w, "  %s: %s\n", field, ve.Fields[field])
		}
	case errors.Is(err, domain.ErrInvalidCredentials):
		fmt.Fprintln(w, "Usuário ou senha inválidos.")
	case errors.Is(err, domain.ErrSessionExpired):
		fmt.Fprintln(w, "Sessão expirada. Faça login novamente.")
	case errors.Is(err, domain.ErrNotAuthenticated):
		fmt.Fprintln(w, "Não autenticado. Use 'alecrim login'.")
	case errors.Is(err, domain.ErrForbidden):
		fmt.Fprintln(w, "Acesso negado.")
	default:
		fmt.Fprintln(w, err)
	}
}
