// Package authprovider talks to the managed identity service: token
// introspection for the session middleware and email-verification links.
package authprovider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"homezy-service/config"
	"homezy-service/internal/pkg/errors"
	"homezy-service/internal/pkg/httpclient"
	"homezy-service/internal/pkg/session"

	circuit "github.com/rubyist/circuitbreaker"
)

type TokenInfo struct {
	IsValid bool   `json:"is_valid"`
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}

type Client interface {
	ValidateToken(ctx context.Context, token string) (session.Session, error)
	GenerateVerificationLink(ctx context.Context, email string) (string, error)
}

type client struct {
	cfg        *config.AuthProviderConfig
	httpClient *circuit.HTTPClient
}

func New(cfg *config.AuthProviderConfig, httpClient *circuit.HTTPClient) Client {
	return &client{cfg: cfg, httpClient: httpClient}
}

func (c *client) ValidateToken(ctx context.Context, token string) (session.Session, error) {
	endpoint := fmt.Sprintf("%s/api/private/token/validate?token=%s", c.cfg.BaseURL, url.QueryEscape(token))

	var info TokenInfo
	err := httpclient.DoJSON(ctx, c.httpClient, httpclient.Request{
		Method: http.MethodGet,
		URL:    endpoint,
	}, &info)
	if err != nil {
		return session.Session{}, errors.UnauthorizedError("invalid token")
	}

	if !info.IsValid || info.UserID == "" {
		return session.Session{}, errors.UnauthorizedError("invalid token")
	}

	role := session.Role(info.Role)
	if role == "" {
		role = session.RoleGuest
	}

	return session.Session{
		UserID: info.UserID,
		Email:  info.Email,
		Name:   info.Name,
		Role:   role,
	}, nil
}

func (c *client) GenerateVerificationLink(ctx context.Context, email string) (string, error) {
	var resp struct {
		Link string `json:"link"`
	}
	err := httpclient.DoJSON(ctx, c.httpClient, httpclient.Request{
		Method: http.MethodPost,
		URL:    c.cfg.BaseURL + "/api/private/verification-link",
		Body: map[string]string{
			"email":        email,
			"continue_url": c.cfg.ContinueURL,
		},
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Link == "" {
		return "", fmt.Errorf("auth provider returned an empty verification link for %s", email)
	}
	return resp.Link, nil
}
