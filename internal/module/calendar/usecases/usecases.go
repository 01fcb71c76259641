package usecases

import (
	"context"
	"database/sql"
	"time"

	"homezy-service/internal/module/booking/models/entity"
	calendarEntity "homezy-service/internal/module/calendar/models/entity"
	"homezy-service/internal/module/calendar/models/response"
	"homezy-service/internal/module/calendar/repositories"
	"homezy-service/internal/pkg/errors"
	"homezy-service/internal/pkg/helpers"
	"homezy-service/internal/pkg/session"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const monthLayout = "2006-01"

type usecase struct {
	repo repositories.Repositories
	log  *otelzap.Logger
	now  func() time.Time
}

type Usecase interface {
	ShowCalendar(ctx context.Context, sess session.Session, month string) (response.Calendar, error)
}

func New(repo repositories.Repositories, log *otelzap.Logger, now func() time.Time) Usecase {
	if now == nil {
		now = time.Now
	}
	return &usecase{
		repo: repo,
		log:  log,
		now:  now,
	}
}

// ShowCalendar answers for the given YYYY-MM, or the current month when empty.
func (u *usecase) ShowCalendar(ctx context.Context, sess session.Session, month string) (response.Calendar, error) {
	shown := u.now().UTC()
	if month != "" {
		t, err := time.Parse(monthLayout, month)
		if err != nil {
			return response.Calendar{}, errors.BadRequest("invalid month, expected YYYY-MM")
		}
		shown = t
	}

	all, err := u.repo.FindBookingsByHostID(ctx, sess.UserID)
	if err != nil {
		return response.Calendar{}, err
	}

	bookings := make([]calendarEntity.Booking, 0, len(all))
	for _, b := range all {
		if entity.ParseBookingStatus(b.Status) == entity.StatusRejected {
			continue
		}
		bookings = append(bookings, b)
	}

	withdrawn, err := u.repo.SumWithdrawnByHostID(ctx, sess.UserID)
	if err != nil {
		return response.Calendar{}, err
	}

	cal := Aggregate(bookings, shown.Year(), shown.Month(), withdrawn)
	return toResponse(cal), nil
}

func formatDate(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return helpers.DayKey(t.Time)
}

func toResponse(cal calendarEntity.Calendar) response.Calendar {
	resp := response.Calendar{
		Month:             time.Date(cal.Year, cal.Month, 1, 0, 0, 0, 0, time.UTC).Format(monthLayout),
		RawRevenue:        cal.RawRevenue,
		LifetimeWithdrawn: cal.Withdrawn,
		MonthRevenue:      cal.MonthRevenue,
	}

	for _, key := range DaysIn(cal.Year, cal.Month) {
		d := response.Day{
			Date:      key,
			Bookings:  []response.Booking{},
			CheckIns:  cal.CheckIns[key],
			CheckOuts: cal.CheckOuts[key],
			Revenue:   cal.Revenue[key],
		}
		for _, b := range cal.Occupancy[key] {
			d.Bookings = append(d.Bookings, response.Booking{
				ID:           b.ID,
				GuestName:    b.GuestName,
				ListingTitle: b.ListingTitle,
				CheckIn:      formatDate(b.CheckIn),
				CheckOut:     formatDate(b.CheckOut),
			})
		}
		resp.Days = append(resp.Days, d)
	}
	return resp
}
