// Package identity adapts the external identity provider behind the
// ports.IdentityProvider interface. The HTTP client is the production
// adapter; the in-memory provider backs development mode and tests.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"touchline/internal/admission/ports"
	id "touchline/pkg/domain"
	"touchline/pkg/platform/sentinel"
)

const (
	defaultHTTPTimeout  = 10 * time.Second
	serviceTokenTTL     = 2 * time.Minute
	serviceTokenIssuer  = "touchline"
	serviceTokenSubject = "admission-pipeline"
)

// Client talks to the identity provider's account API. Every request
// carries a short-lived HS256 service token; account creation carries an
// idempotency key so a retried attempt cannot mint a second account.
type Client struct {
	baseURL    string
	serviceKey []byte
	httpClient *http.Client
	keys       *KeyRegistry
	logger     *slog.Logger
}

type ClientOption func(*Client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithKeyRegistry records issued idempotency keys so operators can
// correlate provisioning attempts with provider-side records.
func WithKeyRegistry(keys *KeyRegistry) ClientOption {
	return func(c *Client) {
		c.keys = keys
	}
}

func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(baseURL, serviceKey string, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("identity provider base URL is required")
	}
	if serviceKey == "" {
		return nil, fmt.Errorf("identity service key is required")
	}
	c := &Client{
		baseURL:    baseURL,
		serviceKey: []byte(serviceKey),
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

var _ ports.IdentityProvider = (*Client)(nil)

type createAccountRequest struct {
	Username string `json:"username"`
	Secret   string `json:"secret"`
	Profile  struct {
		DisplayName string `json:"display_name"`
		Email       string `json:"email"`
	} `json:"profile"`
}

type createAccountResponse struct {
	AccountID string `json:"account_id"`
}

func (c *Client) CreateAccount(ctx context.Context, account ports.NewAccount) (id.ExternalAccountID, error) {
	if account.Username == "" || account.Secret == "" {
		return "", fmt.Errorf("username and secret are required")
	}

	var reqBody createAccountRequest
	reqBody.Username = account.Username
	reqBody.Secret = account.Secret
	reqBody.Profile.DisplayName = account.Profile.DisplayName
	reqBody.Profile.Email = account.Profile.Email

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encode account request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/accounts", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}

	attemptKey := uuid.NewString()
	token, err := c.serviceToken()
	if err != nil {
		return "", fmt.Errorf("sign service token: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Idempotency-Key", attemptKey)

	if c.keys != nil {
		// Best effort; a failed record never blocks provisioning.
		if err := c.keys.Record(ctx, attemptKey, account.Username); err != nil && c.logger != nil {
			c.logger.WarnContext(ctx, "failed to record provisioning attempt key",
				"error", err, "username", account.Username)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var out createAccountResponse
		if err := json.Unmarshal(body, &out); err != nil {
			return "", fmt.Errorf("decode account response: %w", err)
		}
		if out.AccountID == "" {
			return "", errors.New("identity provider returned an empty account ID")
		}
		return id.ExternalAccountID(out.AccountID), nil
	case http.StatusConflict:
		return "", fmt.Errorf("account username already taken: %w", sentinel.ErrConflict)
	default:
		return "", fmt.Errorf("identity provider returned %d: %s", resp.StatusCode, string(body))
	}
}

// DeleteAccount removes an account. A 404 or 410 means the account is
// already gone and counts as success, so retried compensation stays safe.
func (c *Client) DeleteAccount(ctx context.Context, accountID id.ExternalAccountID) error {
	if accountID.IsEmpty() {
		return fmt.Errorf("account ID is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/accounts/"+accountID.String(), nil)
	if err != nil {
		return err
	}
	token, err := c.serviceToken()
	if err != nil {
		return fmt.Errorf("sign service token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body) //nolint:errcheck

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound, http.StatusGone:
		return nil
	default:
		return fmt.Errorf("identity provider returned %d deleting account %s", resp.StatusCode, accountID)
	}
}

func (c *Client) serviceToken() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": serviceTokenIssuer,
		"sub": serviceTokenSubject,
		"iat": now.Unix(),
		"exp": now.Add(serviceTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.serviceKey)
}
