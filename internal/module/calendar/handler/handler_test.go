package handler_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"homezy-service/internal/module/calendar/handler"
	"homezy-service/internal/module/calendar/mocks"
	"homezy-service/internal/module/calendar/models/response"
	customErrors "homezy-service/internal/pkg/errors"
	log_internal "homezy-service/internal/pkg/log"
	"homezy-service/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShowCalendar(t *testing.T) {
	host := session.Session{UserID: "h1", Role: session.RoleHost}

	setup := func(t *testing.T) (*fiber.App, *mocks.Usecase) {
		ucm := mocks.NewUsecase(t)
		h := &handler.CalendarHandler{Log: log_internal.Setup(), Usecase: ucm}
		app := fiber.New()
		app.Use(func(ctx *fiber.Ctx) error {
			session.Set(ctx, host)
			return ctx.Next()
		})
		app.Get("/host/calendar", h.ShowCalendar)
		return app, ucm
	}

	t.Run("success", func(t *testing.T) {
		app, ucm := setup(t)
		ucm.On("ShowCalendar", mock.Anything, host, "2024-03").
			Return(response.Calendar{Month: "2024-03", LifetimeWithdrawn: 1000, MonthRevenue: 5000}, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/host/calendar?month=2024-03", nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), `"month_revenue":5000`)
		assert.Contains(t, string(body), `"lifetime_withdrawn":1000`)
	})

	t.Run("bad month", func(t *testing.T) {
		app, ucm := setup(t)
		ucm.On("ShowCalendar", mock.Anything, host, "nope").
			Return(response.Calendar{}, customErrors.BadRequest("invalid month, expected YYYY-MM"))

		resp, err := app.Test(httptest.NewRequest("GET", "/host/calendar?month=nope", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
