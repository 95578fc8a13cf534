package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dtroode/repairctl/internal/model"
)

var _ model.LogoutNotifier = (*Client)(nil)

// Login exchanges credentials for a token and profile.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (model.LoginResult, error) {
	var res model.LoginResult
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, creds, &res); err != nil {
		return model.LoginResult{}, err
	}
	if res.Token == "" {
		return model.LoginResult{}, fmt.Errorf("no token received from server")
	}
	return res, nil
}

// Logout tells the backend that token is abandoned.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.doJSON(withToken(ctx, token), http.MethodPost, "/auth/logout", nil, nil, nil)
}

// Register creates a customer account.
func (c *Client) Register(ctx context.Context, reg model.Registration) (model.Profile, error) {
	var p model.Profile
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register/user", nil, reg, &p); err != nil {
		return model.Profile{}, err
	}
	return p, nil
}

// VerifyEmail confirms an email address with the token from the verification mail.
func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	return c.doJSON(ctx, http.MethodGet, "/auth/verify-email", url.Values{"token": {token}}, nil, nil)
}

func (c *Client) ResendVerification(ctx context.Context, email string) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/resend-verification", url.Values{"email": {email}}, nil, nil)
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/forgot-password", url.Values{"email": {email}}, nil, nil)
}

func (c *Client) ResetPassword(ctx context.Context, reset model.PasswordReset) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/reset-password", nil, reset, nil)
}

func (c *Client) ChangePassword(ctx context.Context, change model.PasswordChange) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/change-password", nil, change, nil)
}
