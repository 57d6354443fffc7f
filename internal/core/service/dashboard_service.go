package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
	"github.com/alecrim/financeiro-cli/internal/core/ports"
)

// DashboardService derives the spend-by-category summary. The reduction is
// pure and runs over a fresh fetch every time; nothing is cached.
type DashboardService struct {
	gateway ports.PaymentGateway
	logger  zerolog.Logger
}

func NewDashboardService(gateway ports.PaymentGateway, logger zerolog.Logger) *DashboardService {
	return &DashboardService{gateway: gateway, logger: logger}
}

// Summary fetches the unfiltered payment collection and groups settled
// spend by category. A response without a results array is treated as an
// empty list with a logged warning, not a user-facing error.
func (s *DashboardService) Summary(ctx context.Context) (domain.SpendSummary, error) {
	page, err := s.gateway.List(ctx, domain.PaymentFilter{Sort: domain.DefaultSort()})
	if err != nil {
		return domain.SpendSummary{}, err
	}

	if page.Results == nil {
		s.logger.Warn().Msg("payments response carried no results array, treating as empty")
	}

	return domain.SpendingByCategory(page.Results), nil
}
