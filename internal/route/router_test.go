package router_test

import (
	"io"
	"net/http/httptest"
	"testing"

	bookingHandler "homezy-service/internal/module/booking/handler"
	bookingMocks "homezy-service/internal/module/booking/mocks"
	calendarHandler "homezy-service/internal/module/calendar/handler"
	calendarMocks "homezy-service/internal/module/calendar/mocks"
	"homezy-service/internal/module/calendar/models/response"
	mailerHandler "homezy-service/internal/module/mailer/handler"
	mailerMocks "homezy-service/internal/module/mailer/mocks"
	payoutHandler "homezy-service/internal/module/payout/handler"
	payoutMocks "homezy-service/internal/module/payout/mocks"
	authMocks "homezy-service/internal/pkg/authprovider/mocks"
	log_internal "homezy-service/internal/pkg/log"
	"homezy-service/internal/pkg/middleware"
	"homezy-service/internal/pkg/session"
	router "homezy-service/internal/route"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	app      *fiber.App
	auth     *authMocks.Client
	calendar *calendarMocks.Usecase
}

func setup(t *testing.T) fixture {
	logger := log_internal.Setup()
	v := validator.New()
	auth := authMocks.NewClient(t)
	cal := calendarMocks.NewUsecase(t)

	h := router.Handlers{
		Booking:  &bookingHandler.BookingHandler{Log: logger, Validator: v, Usecase: bookingMocks.NewUsecase(t)},
		Calendar: &calendarHandler.CalendarHandler{Log: logger, Usecase: cal},
		Mailer:   &mailerHandler.MailHandler{Log: logger, Validator: v, Usecase: mailerMocks.NewUsecase(t)},
		Payout:   &payoutHandler.PayoutHandler{Log: logger, Validator: v, Usecase: payoutMocks.NewUsecase(t)},
	}
	app := router.Initialize(fiber.New(), h, &middleware.Middleware{Log: logger, Auth: auth})
	return fixture{app: app, auth: auth, calendar: cal}
}

func do(t *testing.T, app *fiber.App, method, path, token string) (int, string) {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestHealth(t *testing.T) {
	f := setup(t)
	code, body := do(t, f.app, "GET", "/health", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "OK", body)
}

func TestRelayEndpoints(t *testing.T) {
	f := setup(t)
	for _, path := range []string{"/send-verification", "/send-receipt", "/send-cancellation", "/api/withdraw"} {
		req := httptest.NewRequest("OPTIONS", path, nil)
		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"), path)

		for _, method := range []string{"GET", "PUT", "DELETE"} {
			code, body := do(t, f.app, method, path, "")
			assert.Equal(t, fiber.StatusMethodNotAllowed, code, method+" "+path)
			assert.JSONEq(t, `{"success":false,"error":"Method not allowed"}`, body)
		}
	}
}

func TestApiRequiresToken(t *testing.T) {
	f := setup(t)
	code, _ := do(t, f.app, "GET", "/api/v1/guest/bookings", "")
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestWithdrawRequiresHost(t *testing.T) {
	f := setup(t)
	code, _ := do(t, f.app, "POST", "/api/withdraw", "")
	assert.Equal(t, fiber.StatusUnauthorized, code)

	f.auth.On("ValidateToken", mock.Anything, "guest-token").
		Return(session.Session{UserID: "u1", Role: session.RoleGuest}, nil)
	code, _ = do(t, f.app, "POST", "/api/withdraw", "guest-token")
	assert.Equal(t, fiber.StatusForbidden, code)

	f.auth.On("ValidateToken", mock.Anything, "host-token").
		Return(session.Session{UserID: "h1", Role: session.RoleHost}, nil)
	code, body := do(t, f.app, "POST", "/api/withdraw", "host-token")
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.JSONEq(t, `{"success":false,"error":"Missing required fields"}`, body)
}

func TestHostRoutesRejectGuests(t *testing.T) {
	f := setup(t)
	f.auth.On("ValidateToken", mock.Anything, "guest-token").
		Return(session.Session{UserID: "u1", Role: session.RoleGuest}, nil)

	code, _ := do(t, f.app, "GET", "/api/v1/host/calendar", "guest-token")
	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestHostCalendarRoute(t *testing.T) {
	f := setup(t)
	host := session.Session{UserID: "h1", Role: session.RoleHost}
	f.auth.On("ValidateToken", mock.Anything, "host-token").Return(host, nil)
	f.calendar.On("ShowCalendar", mock.Anything, host, "2024-03").Return(response.Calendar{Month: "2024-03"}, nil)

	code, body := do(t, f.app, "GET", "/api/v1/host/calendar?month=2024-03", "host-token")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, `"month":"2024-03"`)
}
