package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
	"github.com/alecrim/financeiro-cli/internal/core/ports"
)

// AuthService implements the session lifecycle: credential exchange,
// profile fetch and logout. It is the only writer of the token entry in
// the session store.
type AuthService struct {
	gateway ports.AuthGateway
	store   ports.SessionStore
	logger  zerolog.Logger

	// user is cached identity for the current process only; it is never
	// persisted.
	user *domain.User
}

func NewAuthService(gateway ports.AuthGateway, store ports.SessionStore, logger zerolog.Logger) *AuthService {
	return &AuthService{gateway: gateway, store: store, logger: logger}
}

// Login exchanges credentials for a bearer token, stores it, then fetches
// the profile right away. A rejected exchange leaves no partial state.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.gateway.ObtainToken(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetToken(token); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("username", username).Msg("token obtained")
	return s.FetchProfile(ctx)
}

// FetchProfile resolves the identity behind the stored token. Any failure
// is terminal for the session: the token and impersonation id are cleared
// before the error is returned.
func (s *AuthService) FetchProfile(ctx context.Context) (*domain.User, error) {
	if s.store.Token() == "" {
		return nil, domain.ErrNotAuthenticated
	}

	user, err := s.gateway.Profile(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("profile fetch failed, clearing session")
		if clearErr := s.Logout(); clearErr != nil {
			s.logger.Error().Err(clearErr).Msg("failed to clear session")
		}
		return nil, err
	}

	s.user = user
	return user, nil
}

// Logout clears the token, the impersonation id and the cached identity.
// Subsequent requests carry no credential.
func (s *AuthService) Logout() error {
	s.user = nil
	return s.store.Clear()
}

// Session snapshots the current client-side state. A non-empty token does
// not guarantee User is populated.
func (s *AuthService) Session() domain.Session {
	return domain.Session{
		Token:           s.store.Token(),
		ManagedClientID: s.store.ManagedClientID(),
		User:            s.user,
	}
}

// TokenExpiry decodes the exp claim from the stored token without verifying
// the signature. Display-only: no request logic keys off it.
func (s *AuthService) TokenExpiry() time.Time {
	token := s.store.Token()
	if token == "" {
		return time.Time{}
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
