package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

func (a *App) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	username := fs.String("user", "", "username")
	password := fs.String("password", "", "password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *username == "" {
		fmt.Fprint(a.Stderr, "Usuário: ")
		line, err := bufio.NewReader(a.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading username: %w", err)
		}
		*username = strings.TrimSpace(line)
	}
	if *password == "" {
		pw, err := a.readPassword("Senha: ")
		if err != nil {
			return err
		}
		*password = pw
	}

	user, err := a.Auth.Login(ctx, *username, *password)
	if err != nil {
		return err
	}

	a.notify(fmt.Sprintf("Bem-vindo, %s!", user.Username))
	return nil
}

// readPassword reads without echo when stdin is a terminal, otherwise falls
// back to a plain line read so piped input keeps working.
func (a *App) readPassword(prompt string) (string, error) {
	fmt.Fprint(a.Stderr, prompt)
	if f, ok := a.Stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(raw), nil
	}
	line, err := bufio.NewReader(a.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (a *App) runLogout() error {
	if err := a.Auth.Logout(); err != nil {
		return err
	}
	a.notify("Sessão encerrada.")
	return nil
}

func (a *App) runWhoami(ctx context.Context) error {
	session := a.Auth.Session()
	if !session.Authenticated() {
		a.notify("Não autenticado. Use 'alecrim login'.")
		return nil
	}

	user, err := a.Auth.FetchProfile(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Stdout, "Usuário: %s (id %d)\n", user.Username, user.ID)
	if user.Superuser {
		fmt.Fprintln(a.Stdout, "Perfil: administrador")
	}
	if id := a.Clients.ManagedClientID(); id != "" {
		fmt.Fprintf(a.Stdout, "Gerenciando cliente: %s\n", id)
	}
	if exp := a.Auth.TokenExpiry(); !exp.IsZero() {
		fmt.Fprintf(a.Stdout, "Sessão expira em: %s\n", exp.Local().Format("02/01/2006 15:04"))
	}
	return nil
}
