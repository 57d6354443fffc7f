package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
	"github.com/alecrim/financeiro-cli/internal/core/ports"
)

// CategoryService is the categories list controller. Same contract as
// payments: mutations re-fetch the full list on success, no local patching.
type CategoryService struct {
	gateway ports.CategoryGateway
	logger  zerolog.Logger

	mu         sync.Mutex
	categories []domain.Category
}

func NewCategoryService(gateway ports.CategoryGateway, logger zerolog.Logger) *CategoryService {
	return &CategoryService{gateway: gateway, logger: logger}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.gateway.List(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()
	return categories, nil
}

func (s *CategoryService) Create(ctx context.Context, in ports.SaveCategoryInput) (*domain.Category, error) {
	if in.Name == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"nome": "name is required"}}
	}

	c, err := s.gateway.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("id", c.ID).Str("name", c.Name).Msg("category created")
	s.refresh(ctx)
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, in ports.SaveCategoryInput) (*domain.Category, error) {
	if in.Name == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"nome": "name is required"}}
	}

	c, err := s.gateway.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("id", id).Msg("category updated")
	s.refresh(ctx)
	return c, nil
}

// Delete removes a category. Payments referencing it keep existing and show
// up uncategorised on the next fetch; that label is server-driven and never
// fabricated here.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.gateway.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("id", id).Msg("category deleted")
	s.refresh(ctx)
	return nil
}

func (s *CategoryService) refresh(ctx context.Context) {
	if _, err := s.List(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("category refresh after mutation failed")
	}
}
