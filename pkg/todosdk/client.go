package todosdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to the public endpoints and creates authenticated Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", req)
	if err != nil {
		return nil, err
	}

	var out UserResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Login exchanges credentials for a Session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &Session{
		client:    c,
		token:     out.Data.Token,
		expiresAt: out.Data.ExpiresAt,
		user:      out.Data.User,
	}, nil
}

// NewSessionFromToken wraps a token obtained elsewhere.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service can reach its dependencies.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
