// Package cli is the command edge of the Alecrim Financeiro client. Each
// command parses flags, validates input and delegates to a core service;
// user-facing notifications go to stdout, structured logs to stderr.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/alecrim/financeiro-cli/internal/core/ports"
)

type App struct {
	Auth       ports.AuthService
	Payments   ports.PaymentService
	Categories ports.CategoryService
	Clients    ports.ClientService
	Dashboard  ports.DashboardService
	Exports    ports.ExportService

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger zerolog.Logger
}

const usageText = `Alecrim Financeiro

Usage:
  alecrim <command> [flags]

Commands:
  login        authenticate and start a session
  logout       end the session
  whoami       show the current session
  payments     list, add, edit and remove payments
  categories   list, add, edit and remove categories
  dashboard    spending by category (settled payments)
  clients      list managed clients, start/stop impersonation
  export       export the filtered payment list (excel or pdf)
  report       export a date-range report (excel or pdf)

Run 'alecrim <command> -h' for command flags.
`

func (a *App) usage() {
	fmt.Fprint(a.Stderr, usageText)
}

// Run dispatches a single command invocation.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return fmt.Errorf("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.runLogin(ctx, rest)
	case "logout":
		return a.runLogout()
	case "whoami":
		return a.runWhoami(ctx)
	case "payments":
		return a.runPayments(ctx, rest)
	case "categories":
		return a.runCategories(ctx, rest)
	case "dashboard":
		return a.runDashboard(ctx)
	case "clients":
		return a.runClients(ctx, rest)
	case "export":
		return a.runExport(ctx, rest)
	case "report":
		return a.runReport(ctx, rest)
	case "help", "-h", "--help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// notify prints a one-shot user-facing message, mirroring the transient
// notifications of the original interface.
func (a *App) notify(msg string) {
	fmt.Fprintln(a.Stdout, msg)
}
