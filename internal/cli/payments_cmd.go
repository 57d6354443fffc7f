package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
)

const paymentsUsage = `Usage:
  alecrim payments list [-descricao S] [-status Pendente|Pago|Atrasado] [-categoria ID] [-de YYYY-MM-DD] [-ate YYYY-MM-DD] [-sort CAMPO] [-desc]
  alecrim payments add  -tipo payable|settled -descricao S -valor N -competencia YYYY-MM-DD [-vencimento YYYY-MM-DD] [-categoria ID] [-nota S]
  alecrim payments edit -id N [mesmas flags de add]
  alecrim payments rm   -id N
`

func (a *App) runPayments(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.Stderr, paymentsUsage)
		return fmt.Errorf("missing payments subcommand")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		return a.runPaymentsList(ctx, rest)
	case "add":
		return a.runPaymentsAdd(ctx, rest)
	case "edit":
		return a.runPaymentsEdit(ctx, rest)
	case "rm":
		return a.runPaymentsRemove(ctx, rest)
	default:
		fmt.Fprint(a.Stderr, paymentsUsage)
		return fmt.Errorf("unknown payments subcommand %q", sub)
	}
}

func filterFlags(fs *flag.FlagSet) *domain.PaymentFilter {
	filter := &domain.PaymentFilter{Sort: domain.DefaultSort()}
	fs.StringVar(&filter.Description, "descricao", "", "filter by description substring")
	fs.StringVar((*string)(&filter.Status), "status", "", "filter by status (Pendente, Pago, Atrasado)")
	fs.StringVar(&filter.CategoryID, "categoria", "", "filter by category id")
	fs.StringVar(&filter.AccrualFrom, "de", "", "accrual date from (YYYY-MM-DD)")
	fs.StringVar(&filter.AccrualTo, "ate", "", "accrual date to (YYYY-MM-DD)")
	return filter
}

func (a *App) runPaymentsList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("payments list", flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	filter := filterFlags(fs)
	sortField := fs.String("sort", "", "sort field (descricao, data_competencia, data_vencimento, valor, categoria)")
	descending := fs.Bool("desc", false, "sort descending")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *sortField != "" {
		filter.Sort = domain.SortState{Field: domain.SortField(*sortField), Descending: *descending}
	}

	page, err := a.Payments.List(ctx, *filter)
	if err != nil {
		return err
	}
	renderPayments(a.Stdout, page)
	return nil
}

func paymentFormFlags(fs *flag.FlagSet) *PaymentForm {
	form := &PaymentForm{}
	fs.StringVar(&form.Kind, "tipo", "", "payable or settled (inferred from -vencimento when omitted)")
	fs.StringVar(&form.Description, "descricao", "", "description")
	fs.StringVar(&form.Amount, "valor", "", "amount, e.g. 150.00")
	fs.StringVar(&form.AccrualDate, "competencia", "", "accrual date (YYYY-MM-DD)")
	fs.StringVar(&form.DueDate, "vencimento", "", "due date (YYYY-MM-DD, payables only)")
	fs.StringVar(&form.CategoryID, "categoria", "", "category id")
	fs.StringVar(&form.InvoiceNumber, "nota", "", "invoice number")
	return form
}

func (a *App) runPaymentsAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("payments add", flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	form := paymentFormFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if form.Kind == "" {
		form.Kind = InferKind(form.DueDate)
	}

	in, err := form.Build()
	if err != nil {
		return err
	}
	if _, err := a.Payments.Create(ctx, *in); err != nil {
		return err
	}
	a.notify("Pagamento criado!")
	return nil
}

func (a *App) runPaymentsEdit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("payments edit", flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	id := fs.Int64("id", 0, "payment id")
	form := paymentFormFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return &domain.ValidationError{Fields: map[string]string{"id": "is required"}}
	}
	if form.Kind == "" {
		form.Kind = InferKind(form.DueDate)
	}

	in, err := form.Build()
	if err != nil {
		return err
	}
	if _, err := a.Payments.Update(ctx, *id, *in); err != nil {
		return err
	}
	a.notify("Pagamento atualizado!")
	return nil
}

func (a *App) runPaymentsRemove(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("payments rm", flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	id := fs.Int64("id", 0, "payment id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return &domain.ValidationError{Fields: map[string]string{"id": "is required"}}
	}

	if err := a.Payments.Delete(ctx, *id); err != nil {
		return err
	}
	a.notify("Pagamento excluído!")
	return nil
}
