package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
	"github.com/alecrim/financeiro-cli/internal/core/ports"
)

// PaymentService is the payments list controller. It holds the last fetched
// page and re-fetches the full list after every successful mutation so that
// server-computed fields (display status, totals) stay authoritative.
//
// Each List dispatch is tagged with a generation number; a response only
// replaces the held page when no newer List has been dispatched since. That
// closes the last-response-wins race between overlapping filter changes.
type PaymentService struct {
	gateway ports.PaymentGateway
	logger  zerolog.Logger

	mu         sync.Mutex
	generation uint64
	page       *ports.PaymentPage
	lastFilter domain.PaymentFilter
}

func NewPaymentService(gateway ports.PaymentGateway, logger zerolog.Logger) *PaymentService {
	return &PaymentService{
		gateway:    gateway,
		logger:     logger,
		lastFilter: domain.PaymentFilter{Sort: domain.DefaultSort()},
	}
}

// List fetches a filtered page and replaces the held collection and totals
// wholesale, unless a newer List was dispatched while this one was in
// flight. The fetched page is returned either way.
func (s *PaymentService) List(ctx context.Context, filter domain.PaymentFilter) (*ports.PaymentPage, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.lastFilter = filter
	s.mu.Unlock()

	page, err := s.gateway.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.logger.Debug().Uint64("generation", gen).Msg("stale list response discarded")
		return page, nil
	}
	s.page = page
	return page, nil
}

// Current returns the last page applied by List, or nil before any fetch.
func (s *PaymentService) Current() *ports.PaymentPage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

func (s *PaymentService) Create(ctx context.Context, in ports.SavePaymentInput) (*domain.Payment, error) {
	p, err := s.gateway.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("id", p.ID).Msg("payment created")
	s.refresh(ctx)
	return p, nil
}

func (s *PaymentService) Update(ctx context.Context, id int64, in ports.SavePaymentInput) (*domain.Payment, error) {
	p, err := s.gateway.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("id", id).Msg("payment updated")
	s.refresh(ctx)
	return p, nil
}

func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	if err := s.gateway.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("id", id).Msg("payment deleted")
	s.refresh(ctx)
	return nil
}

// refresh re-fetches with the last active filter after a mutation. The
// mutation already succeeded, so a failed refresh is only logged.
func (s *PaymentService) refresh(ctx context.Context) {
	s.mu.Lock()
	filter := s.lastFilter
	s.mu.Unlock()

	if _, err := s.List(ctx, filter); err != nil {
		s.logger.Warn().Err(err).Msg("list refresh after mutation failed")
	}
}
