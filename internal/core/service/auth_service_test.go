package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type memStore struct {
	token   string
	managed string
}

func (m *memStore) Token() string                      { return m.token }
func (m *memStore) SetToken(t string) error            { m.token = t; return nil }
func (m *memStore) ManagedClientID() string            { return m.managed }
func (m *memStore) SetManagedClientID(id string) error { m.managed = id; return nil }
func (m *memStore) ClearManagedClientID() error        { m.managed = ""; return nil }
func (m *memStore) Clear() error                       { m.token = ""; m.managed = ""; return nil }

type stubAuthGateway struct {
	token      string
	tokenErr   error
	user       *domain.User
	profileErr error
}

func (g *stubAuthGateway) ObtainToken(_ context.Context, username, password string) (string, error) {
	if g.tokenErr != nil {
		return "", g.tokenErr
	}
	return g.token, nil
}

func (g *stubAuthGateway) Profile(_ context.Context) (*domain.User, error) {
	if g.profileErr != nil {
		return nil, g.profileErr
	}
	return g.user, nil
}

func TestLogin_StoresTokenAndFetchesProfile(t *testing.T) {
	store := &memStore{}
	gw := &stubAuthGateway{token: "tok123", user: &domain.User{ID: 7, Username: "maria"}}
	svc := NewAuthService(gw, store, zerolog.Nop())

	user, err := svc.Login(context.Background(), "maria", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "maria" {
		t.Fatalf("expected maria, got %s", user.Username)
	}
	if store.token != "tok123" {
		t.Fatalf("token not stored: %q", store.token)
	}

	sess := svc.Session()
	if !sess.Authenticated() || sess.User == nil || sess.User.ID != 7 {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestLogin_EmptyCredentialsRejectedBeforeDispatch(t *testing.T) {
	store := &memStore{}
	svc := NewAuthService(&stubAuthGateway{}, store, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if store.token != "" {
		t.Fatal("no token should be stored")
	}
}

func TestLogin_RejectedExchangeDiscardsPartialState(t *testing.T) {
	store := &memStore{}
	gw := &stubAuthGateway{tokenErr: domain.ErrInvalidCredentials}
	svc := NewAuthService(gw, store, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "maria", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if store.token != "" {
		t.Fatalf("partial state left behind: %q", store.token)
	}
}

func TestFetchProfile_FailureLogsOut(t *testing.T) {
	store := &memStore{token: "expired", managed: "42"}
	gw := &stubAuthGateway{profileErr: domain.ErrSessionExpired}
	svc := NewAuthService(gw, store, zerolog.Nop())

	if _, err := svc.FetchProfile(context.Background()); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if store.token != "" || store.managed != "" {
		t.Fatalf("session not fully cleared: token=%q managed=%q", store.token, store.managed)
	}

	sess := svc.Session()
	if sess.Authenticated() || sess.User != nil {
		t.Fatalf("expected empty session, got %+v", sess)
	}
}

func TestFetchProfile_WithoutToken(t *testing.T) {
	svc := NewAuthService(&stubAuthGateway{}, &memStore{}, zerolog.Nop())

	if _, err := svc.FetchProfile(context.Background()); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestTokenExpiry_DecodedFromClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 7,
		"exp":     exp.Unix(),
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	store := &memStore{token: signed}
	svc := NewAuthService(&stubAuthGateway{}, store, zerolog.Nop())

	if got := svc.TokenExpiry(); !got.Equal(exp) {
		t.Fatalf("expected expiry %v, got %v", exp, got)
	}
}

func TestTokenExpiry_OpaqueTokenYieldsZero(t *testing.T) {
	store := &memStore{token: "not-a-jwt"}
	svc := NewAuthService(&stubAuthGateway{}, store, zerolog.Nop())

	if got := svc.TokenExpiry(); !got.IsZero() {
		t.Fatalf("expected zero time, got %v", got)
	}
}
