package repositories

import (
	"context"

	"homezy-service/internal/module/calendar/models/entity"
	"homezy-service/internal/pkg/errors"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

type repositories struct {
	db  *sqlx.DB
	log *otelzap.Logger
}

type Repositories interface {
	FindBookingsByHostID(ctx context.Context, hostID string) ([]entity.Booking, error)
	SumWithdrawnByHostID(ctx context.Context, hostID string) (float64, error)
}

func New(db *sqlx.DB, log *otelzap.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

func (r *repositories) FindBookingsByHostID(ctx context.Context, hostID string) ([]entity.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "FindBookingsByHostID", "db.postgresql.query")
	defer span.End()

	bookings := []entity.Booking{}
	err := r.db.SelectContext(ctx, &bookings, `SELECT id, guest_name, listing_title, check_in, check_out, price, final_price, status
		FROM bookings WHERE host_id = $1`, hostID)
	if err != nil {
		r.log.Ctx(ctx).Error("error find bookings by host id", zap.Error(err))
		return nil, errors.InternalServerError("error find bookings by host id")
	}
	return bookings, nil
}

func (r *repositories) SumWithdrawnByHostID(ctx context.Context, hostID string) (float64, error) {
	span, ctx := apm.StartSpan(ctx, "SumWithdrawnByHostID", "db.postgresql.query")
	defer span.End()

	var total float64
	err := r.db.GetContext(ctx, &total, `SELECT COALESCE(SUM(amount), 0) FROM payouts WHERE host_uid = $1`, hostID)
	if err != nil {
		r.log.Ctx(ctx).Error("error sum withdrawn payouts", zap.Error(err))
		return 0, errors.InternalServerError("error sum withdrawn payouts")
	}
	return total, nil
}
