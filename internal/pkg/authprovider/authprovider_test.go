package authprovider_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homezy-service/config"
	"homezy-service/internal/pkg/authprovider"
	"homezy-service/internal/pkg/errors"
	"homezy-service/internal/pkg/httpclient"
	"homezy-service/internal/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(baseURL string) authprovider.Client {
	cfg := &config.HttpClientConfig{Timeout: 2 * time.Second, ConsecutiveFailures: 5}
	hc := httpclient.InitHttpClient(cfg, httpclient.InitCircuitBreaker(cfg, httpclient.BreakerConsecutive))
	return authprovider.New(&config.AuthProviderConfig{BaseURL: baseURL, ContinueURL: "http://app/login"}, hc)
}

func TestValidateToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("token") {
		case "good":
			_, _ = w.Write([]byte(`{"is_valid":true,"user_id":"h1","email":"host@homezy.app","role":"host"}`))
		case "norole":
			_, _ = w.Write([]byte(`{"is_valid":true,"user_id":"u1"}`))
		case "invalid":
			_, _ = w.Write([]byte(`{"is_valid":false}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	t.Run("valid host token", func(t *testing.T) {
		s, err := c.ValidateToken(context.Background(), "good")
		require.NoError(t, err)
		assert.Equal(t, session.Session{UserID: "h1", Email: "host@homezy.app", Role: session.RoleHost}, s)
	})

	t.Run("role defaults to guest", func(t *testing.T) {
		s, err := c.ValidateToken(context.Background(), "norole")
		require.NoError(t, err)
		assert.Equal(t, session.RoleGuest, s.Role)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := c.ValidateToken(context.Background(), "invalid")
		assert.True(t, errors.Is(err, http.StatusUnauthorized))
	})

	t.Run("upstream rejects", func(t *testing.T) {
		_, err := c.ValidateToken(context.Background(), "other")
		assert.True(t, errors.Is(err, http.StatusUnauthorized))
	})
}

func TestGenerateVerificationLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/private/verification-link", r.URL.Path)
		_, _ = w.Write([]byte(`{"link":"https://auth.homezy.app/verify?oob=abc"}`))
	}))
	defer srv.Close()

	link, err := newClient(srv.URL).GenerateVerificationLink(context.Background(), "guest@homezy.app")
	require.NoError(t, err)
	assert.Equal(t, "https://auth.homezy.app/verify?oob=abc", link)
}
