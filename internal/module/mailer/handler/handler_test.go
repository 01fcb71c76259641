package handler_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"homezy-service/internal/module/mailer/handler"
	"homezy-service/internal/module/mailer/mocks"
	"homezy-service/internal/module/mailer/models/request"
	log_internal "homezy-service/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*fiber.App, *mocks.Usecase) {
	ucm := mocks.NewUsecase(t)
	h := &handler.MailHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
	}
	app := fiber.New()
	app.Post("/send-verification", h.SendVerification)
	app.Post("/send-receipt", h.SendReceipt)
	app.Post("/send-cancellation", h.SendCancellation)
	return app, ucm
}

func post(t *testing.T, app *fiber.App, path, body string) (int, string) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

const receiptBody = `{"email":"guest@homezy.app","fullName":"Juan","listingTitle":"Cozy Loft","checkIn":"2024-03-30","checkOut":"2024-04-02","guests":2,"price":5000}`

func TestSendVerification(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, ucm := setup(t)
		ucm.On("SendVerification", mock.Anything, &request.Verification{Email: "guest@homezy.app", FullName: "Juan"}).Return(nil)

		code, body := post(t, app, "/send-verification", `{"email":"guest@homezy.app","fullName":"Juan"}`)
		assert.Equal(t, fiber.StatusOK, code)
		assert.JSONEq(t, `{"success":true,"message":"Verification email sent"}`, body)
	})

	t.Run("upstream failure is passed through", func(t *testing.T) {
		app, ucm := setup(t)
		ucm.On("SendVerification", mock.Anything, mock.Anything).Return(errors.New("EMAIL_NOT_FOUND"))

		code, body := post(t, app, "/send-verification", `{"email":"guest@homezy.app","fullName":"Juan"}`)
		assert.Equal(t, fiber.StatusInternalServerError, code)
		assert.JSONEq(t, `{"success":false,"error":"EMAIL_NOT_FOUND"}`, body)
	})

	t.Run("invalid email", func(t *testing.T) {
		app, _ := setup(t)
		code, _ := post(t, app, "/send-verification", `{"email":"nope","fullName":"Juan"}`)
		assert.Equal(t, fiber.StatusBadRequest, code)
	})
}

func TestSendReceipt(t *testing.T) {
	app, ucm := setup(t)
	expected := &request.BookingEmail{
		Email:        "guest@homezy.app",
		FullName:     "Juan",
		ListingTitle: "Cozy Loft",
		CheckIn:      "2024-03-30",
		CheckOut:     "2024-04-02",
		Guests:       2,
		Price:        5000,
	}
	ucm.On("SendReceipt", mock.Anything, expected).Return(nil)

	code, body := post(t, app, "/send-receipt", receiptBody)
	assert.Equal(t, fiber.StatusOK, code)
	assert.JSONEq(t, `{"success":true,"message":"Receipt email sent"}`, body)
}

func TestSendCancellation(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, ucm := setup(t)
		ucm.On("SendCancellation", mock.Anything, mock.Anything).Return(nil)

		code, _ := post(t, app, "/send-cancellation", receiptBody)
		assert.Equal(t, fiber.StatusOK, code)
	})

	t.Run("missing api key", func(t *testing.T) {
		app, ucm := setup(t)
		ucm.On("SendCancellation", mock.Anything, mock.Anything).Return(errors.New("MAIL_API_KEY is not configured"))

		code, body := post(t, app, "/send-cancellation", receiptBody)
		assert.Equal(t, fiber.StatusInternalServerError, code)
		assert.JSONEq(t, `{"success":false,"error":"MAIL_API_KEY is not configured"}`, body)
	})
}
