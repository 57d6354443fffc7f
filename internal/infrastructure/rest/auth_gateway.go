package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
)

// AuthGateway exchanges credentials and fetches the profile.
type AuthGateway struct {
	client *Client
}

func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

// ObtainToken performs the credential exchange. A 401 here means the
// credentials were rejected, not that a session expired.
func (g *AuthGateway) ObtainToken(ctx context.Context, username, password string) (string, error) {
	var resp tokenResponse
	err := g.client.sendJSON(ctx, http.MethodPost, "/token/", tokenRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if resp.Access == "" {
		return "", &domain.RequestError{Status: http.StatusOK, Message: "token response carried no access token"}
	}
	return resp.Access, nil
}

func (g *AuthGateway) Profile(ctx context.Context) (*domain.User, error) {
	var resp profileResponse
	if err := g.client.getJSON(ctx, "/profile/", nil, &resp); err != nil {
		return nil, err
	}
	return &domain.User{
		ID:        resp.ID,
		Username:  resp.Username,
		Superuser: resp.Superuser,
		ClientID:  resp.ClienteID,
	}, nil
}
