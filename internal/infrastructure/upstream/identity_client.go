package upstream

import (
	"context"
	"net/http"
	"time"

	"github.com/shopnexus/storefront/internal/core/domain"
)

// IdentityClient talks to the identity service for registration, login, and
// profile lookup.
type IdentityClient struct {
	client
}

// NewIdentityClient creates an IdentityClient for the given base URL
// (e.g. http://localhost:5001). A timeout <= 0 falls back to 10s.
func NewIdentityClient(baseURL string, timeout time.Duration) *IdentityClient {
	return &IdentityClient{client: newClient("identity", baseURL, timeout)}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for an opaque session token.
func (c *IdentityClient) Login(ctx context.Context, username, password string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/users/login", loginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", err
	}

	var resp loginResponse
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// Register creates a new account. The success body is unused.
func (c *IdentityClient) Register(ctx context.Context, username, email, password string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/users/register", registerRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// Profile resolves the user behind token, sent as a bearer credential.
func (c *IdentityClient) Profile(ctx context.Context, token string) (*domain.User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/users/profile", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var user domain.User
	if err := c.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
