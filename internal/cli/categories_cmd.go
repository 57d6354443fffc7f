package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
	"github.com/alecrim/financeiro-cli/internal/core/ports"
)

const categoriesUsage = `Usage:
  alecrim categories list
  alecrim categories add  -nome S [-descricao S]
  alecrim categories edit -id N -nome S [-descricao S]
  alecrim categories rm   -id N
`

func (a *App) runCategories(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.Stderr, categoriesUsage)
		return fmt.Errorf("missing categories subcommand")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		categories, err := a.Categories.List(ctx)
		if err != nil {
			return err
		}
		renderCategories(a.Stdout, categories)
		return nil
	case "add":
		return a.runCategoriesAdd(ctx, rest)
	case "edit":
		return a.runCategoriesEdit(ctx, rest)
	case "rm":
		return a.runCategoriesRemove(ctx, rest)
	default:
		fmt.Fprint(a.Stderr, categoriesUsage)
		return fmt.Errorf("unknown categories subcommand %q", sub)
	}
}

func categoryFlags(fs *flag.FlagSet) *ports.SaveCategoryInput {
	in := &ports.SaveCategoryInput{}
	fs.StringVar(&in.Name, "nome", "", "category name")
	fs.StringVar(&in.Description, "descricao", "", "category description")
	return in
}

func (a *App) runCategoriesAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("categories add", flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	in := categoryFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := a.Categories.Create(ctx, *in); err != nil {
		return err
	}
	a.notify("Categoria criada!")
	return nil
}

func (a *App) runCategoriesEdit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("categories edit", flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	id := fs.Int64("id", 0, "category id")
	in := categoryFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return &domain.ValidationError{Fields: map[string]string{"id": "is required"}}
	}

	if _, err := a.Categories.Update(ctx, *id, *in); err != nil {
		return err
	}
	a.notify("Categoria atualizada!")
	return nil
}

func (a *App) runCategoriesRemove(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("categories rm", flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	id := fs.Int64("id", 0, "category id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return &domain.ValidationError{Fields: map[string]string{"id": "is required"}}
	}

	if err := a.Categories.Delete(ctx, *id); err != nil {
		return err
	}
	a.notify("Categoria excluída!")
	return nil
}
