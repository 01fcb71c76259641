package config_test

import (
	"testing"
	"time"

	"homezy-service/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.HttpServer.Port)
		assert.Equal(t, "consecutive", cfg.HttpClient.Type)
		assert.Equal(t, 3*time.Second, cfg.Scheduler.MarkReadDelay)
		assert.Equal(t, "@every 1m", cfg.Scheduler.OutboxRedispatch)
		assert.Equal(t, 5, cfg.Scheduler.OutboxMaxAttempts)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("HTTP_SERVER_PORT", "9999")
		t.Setenv("MAIL_API_KEY", "secret")
		t.Setenv("SCHEDULER_MARK_READ_DELAY", "5s")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, "9999", cfg.HttpServer.Port)
		assert.Equal(t, "secret", cfg.Mail.APIKey)
		assert.Equal(t, 5*time.Second, cfg.Scheduler.MarkReadDelay)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("REDIS_DB", "not-a-number")

		_, err := config.Load()
		assert.Error(t, err)
	})
}
