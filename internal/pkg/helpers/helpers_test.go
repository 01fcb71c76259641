package helpers_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"homezy-service/internal/pkg/errors"
	"homezy-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespError(t *testing.T) {
	app := fiber.New()
	app.Get("/bad", func(c *fiber.Ctx) error {
		return helpers.RespError(c, nil, errors.BadRequest("Missing required fields"))
	})
	app.Get("/ok", func(c *fiber.Ctx) error {
		return helpers.RespSuccess(c, nil, nil, "Email sent")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/bad", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"success":false,"error":"Missing required fields"}`, string(body))

	resp, err = app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true,"message":"Email sent"}`, string(body))
}

func TestDayKey(t *testing.T) {
	loc := time.FixedZone("PHT", 8*3600)
	assert.Equal(t, "2024-03-30", helpers.DayKey(time.Date(2024, 3, 30, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-29", helpers.DayKey(time.Date(2024, 3, 30, 1, 0, 0, 0, loc)))
}

func TestParseDate(t *testing.T) {
	d, err := helpers.ParseDate("2024-04-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), d)

	d, err = helpers.ParseDate("2024-04-02T14:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 14, d.Hour())

	_, err = helpers.ParseDate("April 2")
	assert.Error(t, err)
}
