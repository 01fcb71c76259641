package httpclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homezy-service/config"
	"homezy-service/internal/pkg/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON(t *testing.T) {
	t.Run("decodes success body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "key", r.Header.Get("api-key"))
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"name":"homezy"}`, string(body))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"messageId":"m-1"}`))
		}))
		defer srv.Close()

		cfg := &config.HttpClientConfig{Timeout: 2 * time.Second, ConsecutiveFailures: 5}
		client := httpclient.InitHttpClient(cfg, httpclient.InitCircuitBreaker(cfg, httpclient.BreakerConsecutive))

		var out struct {
			MessageID string `json:"messageId"`
		}
		err := httpclient.DoJSON(context.Background(), client, httpclient.Request{
			Method: http.MethodPost,
			URL:    srv.URL,
			Header: http.Header{"Api-Key": []string{"key"}},
			Body:   map[string]string{"name": "homezy"},
		}, &out)

		require.NoError(t, err)
		assert.Equal(t, "m-1", out.MessageID)
	})

	t.Run("keeps upstream error body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Key not found"}`))
		}))
		defer srv.Close()

		cfg := &config.HttpClientConfig{Timeout: 2 * time.Second, Threshold: 10}
		client := httpclient.InitHttpClient(cfg, httpclient.InitCircuitBreaker(cfg, httpclient.BreakerThreshold))

		err := httpclient.DoJSON(context.Background(), client, httpclient.Request{
			Method: http.MethodGet,
			URL:    srv.URL,
		}, nil)

		var upstream *httpclient.UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
		assert.Contains(t, upstream.Error(), "Key not found")
	})
}
