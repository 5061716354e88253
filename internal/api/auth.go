package api

import (
	"context"
	"net/http"

	"driverapp/internal/domain"
	"driverapp/internal/domain/models"
)

type loginResponse struct {
	Token string `json:"token"`
}

// Signup registers a new driver account.
func (c *Client) Signup(ctx context.Context, req models.SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/api/driver/signup", req, nil, false)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (string, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/driver/login", creds, &resp, false); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", domain.ProviderError{Provider: "backend", Msg: "login response carried no token"}
	}
	return resp.Token, nil
}

// Profile fetches the authenticated driver's profile.
func (c *Client) Profile(ctx context.Context) (models.DriverProfile, error) {
	var profile models.DriverProfile
	err := c.do(ctx, http.MethodGet, "/api/driver/profile", nil, &profile, true)
	return profile, err
}
