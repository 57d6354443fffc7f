package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
	"github.com/alecrim/financeiro-cli/internal/core/ports"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// renderPayments prints the filtered page plus the aggregate footer the way
// the payments view lays them out.
func renderPayments(w io.Writer, page *ports.PaymentPage) {
	if len(page.Results) == 0 {
		fmt.Fprintln(w, "Nenhum pagamento encontrado.")
	} else {
		tw := newTable(w)
		fmt.Fprintln(tw, "ID\tDESCRIÇÃO\tCOMPETÊNCIA\tVENCIMENTO\tVALOR\tCATEGORIA\tSTATUS\tNOTA FISCAL")
		for _, p := range page.Results {
			due := p.DueDate
			if due == "" {
				due = "N/A"
			}
			category := p.CategoryName
			if category == "" {
				category = domain.UncategorizedLabel
			}
			invoice := p.InvoiceNumber
			if invoice == "" {
				invoice = "Pendente"
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\tR$ %s\t%s\t%s\t%s\n",
				p.ID, p.Description, p.AccrualDate, due, p.Amount, category, p.DisplayStatus, invoice)
		}
		tw.Flush()
	}

	fmt.Fprintf(w, "\nTotal Pago:\tR$ %.2f\n", page.Totals.Settled)
	fmt.Fprintf(w, "Total Pendente:\tR$ %.2f\n", page.Totals.Pending)
	fmt.Fprintf(w, "Total Atrasado:\tR$ %.2f\n", page.Totals.Overdue)
	fmt.Fprintf(w, "Saldo:\tR$ %.2f\n", page.Totals.Balance())
	fmt.Fprintf(w, "%d pagamento(s) no total\n", page.Count)
}

func renderCategories(w io.Writer, categories []domain.Category) {
	if len(categories) == 0 {
		fmt.Fprintln(w, "Nenhuma categoria cadastrada.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNOME\tDESCRIÇÃO")
	for _, c := range categories {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.Name, c.Description)
	}
	tw.Flush()
}

func renderSummary(w io.Writer, summary domain.SpendSummary) {
	if summary.Empty() {
		fmt.Fprintln(w, "Nenhum gasto pago para exibir.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "CATEGORIA\tTOTAL\t%")
	for i, g := range summary.Groups {
		fmt.Fprintf(tw, "%s\tR$ %.2f\t%.1f%%\n", g.Label, g.Total, summary.Percent(i))
	}
	fmt.Fprintf(tw, "TOTAL\tR$ %.2f\t\n", summary.Total)
	tw.Flush()
}

func renderClients(w io.Writer, clients []domain.ManagedClient, managedID string) {
	if len(clients) == 0 {
		fmt.Fprintln(w, "Nenhum cliente encontrado.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tEMPRESA\t")
	for _, c := range clients {
		marker := ""
		if fmt.Sprintf("%d", c.ID) == managedID {
			marker = "(gerenciando)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.CompanyName, marker)
	}
	tw.Flush()
}
