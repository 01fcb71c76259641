package repositories_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homezy-service/config"
	"homezy-service/internal/module/mailer/models/entity"
	"homezy-service/internal/module/mailer/repositories"
	"homezy-service/internal/pkg/httpclient"
	log_internal "homezy-service/internal/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(baseURL, apiKey string) repositories.Repositories {
	hcCfg := &config.HttpClientConfig{Timeout: 2 * time.Second, ConsecutiveFailures: 5}
	hc := httpclient.InitHttpClient(hcCfg, httpclient.InitCircuitBreaker(hcCfg, httpclient.BreakerConsecutive))
	cfg := &config.MailConfig{BaseURL: baseURL, APIKey: apiKey, SenderName: "Homezy", SenderEmail: "no-reply@homezy.app"}
	return repositories.New(cfg, log_internal.Setup(), hc, nil)
}

var email = entity.Email{
	Sender:      entity.Address{Name: "Homezy", Email: "no-reply@homezy.app"},
	To:          []entity.Address{{Name: "Juan", Email: "guest@homezy.app"}},
	Subject:     "Booking receipt: Cozy Loft",
	HTMLContent: "<p>hi</p>",
}

func TestSendEmail(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v3/smtp/email", r.URL.Path)
			assert.Equal(t, "secret", r.Header.Get("api-key"))
			body, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(body), `"subject":"Booking receipt: Cozy Loft"`)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"messageId":"<m1@relay>"}`))
		}))
		defer srv.Close()

		require.NoError(t, newRepo(srv.URL, "secret").SendEmail(context.Background(), email))
	})

	t.Run("missing api key", func(t *testing.T) {
		err := newRepo("http://unused", "").SendEmail(context.Background(), email)
		assert.EqualError(t, err, "MAIL_API_KEY is not configured")
	})

	t.Run("upstream rejects", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":"invalid_parameter","message":"email is not valid"}`))
		}))
		defer srv.Close()

		err := newRepo(srv.URL, "secret").SendEmail(context.Background(), email)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email is not valid")
	})
}

func TestSender(t *testing.T) {
	assert.Equal(t, entity.Address{Name: "Homezy", Email: "no-reply@homezy.app"}, newRepo("x", "y").Sender())
}
