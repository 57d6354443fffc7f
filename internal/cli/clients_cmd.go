package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
)

const clientsUsage = `Usage:
  alecrim clients list
  alecrim clients manage -id N
  alecrim clients stop
`

func (a *App) runClients(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.Stderr, clientsUsage)
		return fmt.Errorf("missing clients subcommand")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		clients, err := a.Clients.List(ctx)
		if err != nil {
			return err
		}
		renderClients(a.Stdout, clients, a.Clients.ManagedClientID())
		return nil
	case "manage":
		fs := flag.NewFlagSet("clients manage", flag.ContinueOnError)
		fs.SetOutput(a.Stderr)
		id := fs.Int64("id", 0, "client id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id <= 0 {
			return &domain.ValidationError{Fields: map[string]string{"id": "is required"}}
		}
		if err := a.Clients.Manage(*id); err != nil {
			return err
		}
		a.notify(fmt.Sprintf("Gerenciando cliente %d.", *id))
		return nil
	case "stop":
		if err := a.Clients.StopManaging(); err != nil {
			return err
		}
		a.notify("Visão de administrador restaurada.")
		return nil
	default:
		fmt.Fprint(a.Stderr, clientsUsage)
		return fmt.Errorf("unknown clients subcommand %q", sub)
	}
}
