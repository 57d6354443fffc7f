// Package rest implements the outbound gateways against the Alecrim
// Financeiro backend. A single Client owns base-URL selection and header
// injection; every gateway goes through it, so no request can skip the
// bearer or impersonation headers.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
	"github.com/alecrim/financeiro-cli/internal/core/ports"
)

const defaultTimeout = 30 * time.Second

// maxErrorBody caps how much of an error response is read for the message.
const maxErrorBody = 4 << 10

type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient builds the shared HTTP gateway. The session store is consulted
// on every request by the transport, so tokens stored after construction
// are picked up without rebuilding anything.
func NewClient(baseURL string, store ports.SessionStore, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: defaultTimeout,
			Transport: &sessionTransport{
				store: store,
				base:  http.DefaultTransport,
			},
		},
		logger: logger,
	}
}

// sessionTransport attaches the bearer token and the impersonation header
// to every outbound request. There is no per-endpoint opt-out.
type sessionTransport struct {
	store ports.SessionStore
	base  http.RoundTripper
}

func (t *sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if token := t.store.Token(); token != "" {
		clone.Header.Set("Authorization", "Bearer "+token)
	}
	if id := t.store.ManagedClientID(); id != "" {
		clone.Header.Set("X-Cliente-Gerenciado-Id", id)
	}
	return t.base.RoundTrip(clone)
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// getJSON issues a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, query), nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// sendJSON issues a request with a JSON body. out may be nil when the
// response body is irrelevant (e.g. DELETE).
func (c *Client) sendJSON(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, nil), payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

// getBytes issues a GET and returns the raw response body. Used for the
// binary export endpoint.
func (c *Client) getBytes(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, query), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		c.logger.Debug().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("status", resp.StatusCode).
			Msg("request rejected")
		return err
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// checkStatus maps HTTP failures onto the domain error taxonomy. A 401 is
// ErrSessionExpired here; the auth gateway downgrades it to
// ErrInvalidCredentials for the login exchange only.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	msg := errorMessage(resp.Body)
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrSessionExpired
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return &domain.RequestError{Status: resp.StatusCode, Message: msg}
	}
}

// errorMessage extracts a human-readable message from an error body. The
// backend uses {"detail": ...}; {"error": ...} is accepted for symmetry.
func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var envelope struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if json.Unmarshal(raw, &envelope) == nil {
		if envelope.Detail != "" {
			return envelope.Detail
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	return strings.TrimSpace(string(raw))
}

func idPath(collection string, id int64) string {
	return fmt.Sprintf("/%s/%d/", collection, id)
}
