package cli

import "context"

func (a *App) runDashboard(ctx context.Context) error {
	summary, err := a.Dashboard.Summary(ctx)
	if err != nil {
		return err
	}
	renderSummary(a.Stdout, summary)
	return nil
}
