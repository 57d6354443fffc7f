package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
	"github.com/alecrim/financeiro-cli/internal/core/ports"
)

// ClientService lists managed client accounts and toggles impersonation.
// Authorization is enforced by the backend; a non-superuser simply gets
// ErrForbidden back from List.
type ClientService struct {
	gateway ports.ClientGateway
	store   ports.SessionStore
	logger  zerolog.Logger
}

func NewClientService(gateway ports.ClientGateway, store ports.SessionStore, logger zerolog.Logger) *ClientService {
	return &ClientService{gateway: gateway, store: store, logger: logger}
}

func (s *ClientService) List(ctx context.Context) ([]domain.ManagedClient, error) {
	return s.gateway.List(ctx)
}

// Manage scopes every subsequent request to the given client via the
// impersonation header, until StopManaging.
func (s *ClientService) Manage(id int64) error {
	if err := s.store.SetManagedClientID(strconv.FormatInt(id, 10)); err != nil {
		return err
	}
	s.logger.Info().Int64("client_id", id).Msg("impersonation started")
	return nil
}

func (s *ClientService) StopManaging() error {
	if err := s.store.ClearManagedClientID(); err != nil {
		return err
	}
	s.logger.Info().Msg("impersonation stopped")
	return nil
}

func (s *ClientService) ManagedClientID() string {
	return s.store.ManagedClientID()
}
