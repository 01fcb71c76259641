package router

import (
	bookingHandler "homezy-service/internal/module/booking/handler"
	calendarHandler "homezy-service/internal/module/calendar/handler"
	mailerHandler "homezy-service/internal/module/mailer/handler"
	payoutHandler "homezy-service/internal/module/payout/handler"
	"homezy-service/internal/pkg/middleware"
	"homezy-service/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Booking  *bookingHandler.BookingHandler
	Calendar *calendarHandler.CalendarHandler
	Mailer   *mailerHandler.MailHandler
	Payout   *payoutHandler.PayoutHandler
}

func Initialize(app *fiber.App, h Handlers, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	// relay endpoints, open to every origin; preflight and 405 stay public
	relay(app, m, "/send-verification", h.Mailer.SendVerification)
	relay(app, m, "/send-receipt", h.Mailer.SendReceipt)
	relay(app, m, "/send-cancellation", h.Mailer.SendCancellation)

	Api := app.Group("/api")
	relay(Api, m, "/withdraw", m.ValidateToken, m.RequireRole(session.RoleHost), h.Payout.Withdraw)

	v1 := Api.Group("/v1", m.ValidateToken)

	guest := m.RequireRole(session.RoleGuest)
	v1.Post("/bookings", guest, h.Booking.BookListing)
	v1.Get("/guest/bookings", guest, h.Booking.ShowGuestBookings)
	v1.Post("/guest/bookings/:id/cancellation", guest, h.Booking.RequestCancellation)
	v1.Get("/guest/notifications", guest, h.Booking.ShowGuestNotifications)
	v1.Delete("/guest/notifications/:id", guest, h.Booking.DeleteGuestNotification)

	host := m.RequireRole(session.RoleHost)
	v1.Get("/host/notifications", host, h.Booking.ShowHostNotifications)
	v1.Post("/host/notifications/:id/decision", host, h.Booking.DecideNotification)
	v1.Get("/host/transactions", host, h.Booking.ShowHostTransactions)
	v1.Get("/host/calendar", host, h.Calendar.ShowCalendar)

	return app

}

func relay(r fiber.Router, m *middleware.Middleware, path string, handlers ...fiber.Handler) {
	r.Options(path, m.CORS)
	r.Post(path, append([]fiber.Handler{m.CORS}, handlers...)...)
	r.All(path, m.CORS, m.MethodNotAllowed)
}
