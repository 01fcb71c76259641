package repositories

import (
	"context"
	"database/sql"
	"time"

	"homezy-service/internal/module/booking/models/entity"
	"homezy-service/internal/pkg/errors"
	"homezy-service/internal/pkg/redis"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

const spanType = "db.postgresql.query"

const bookingColumns = `id, listing_id, listing_title, host_id, user_id, guest_name, guest_email,
	check_in, check_out, adults, children, infants, pets, price, final_price, discount, coupon_used,
	payment_status, status, cancellation_requested, cancellation_status, cancellation_requested_at,
	cancellation_rejected_at, approved_at, rejected_at, created_at`

const notificationColumns = `id, host_id, type, booking_id, guest_name, guest_email, listing_title,
	check_in, check_out, guests, price, read, processed, status, timestamp`

const guestNotificationColumns = `id, user_id, type, title, message, booking_id, read, timestamp`

const transactionColumns = `id, user_id, host_id, booking_id, amount, listing_title, check_in, check_out,
	guest_name, type, status, created_at`

const outboxColumns = `id, booking_id, kind, payload, dispatched, attempts, last_error, created_at, dispatched_at`

const insertNotification = `INSERT INTO notifications (` + notificationColumns + `)
	VALUES (:id, :host_id, :type, :booking_id, :guest_name, :guest_email, :listing_title,
	:check_in, :check_out, :guests, :price, :read, :processed, :status, :timestamp)`

type repositories struct {
	db     *sqlx.DB
	log    *otelzap.Logger
	locker redis.Locker
}

type Repositories interface {
	// redis
	Lock(ctx context.Context, key string) (func(), error)
	// db
	InsertBookingRequest(ctx context.Context, booking entity.Booking, notification entity.Notification) error
	FindBookingByID(ctx context.Context, id string) (entity.Booking, error)
	FindBookingsByUserID(ctx context.Context, userID string) ([]entity.Booking, error)
	SaveCancellationRequest(ctx context.Context, booking entity.Booking, notification entity.Notification) error
	FindNotificationByID(ctx context.Context, id string) (entity.Notification, error)
	FindNotificationsByHostID(ctx context.Context, hostID string) ([]entity.Notification, error)
	ApplyDecision(ctx context.Context, decision entity.Decision) error
	FindGuestNotificationsByUserID(ctx context.Context, userID string) ([]entity.GuestNotification, error)
	MarkGuestNotificationsRead(ctx context.Context, userID string, ids []string) (int64, error)
	DeleteGuestNotification(ctx context.Context, userID string, id string) error
	FindTransactionsByHostID(ctx context.Context, hostID string) ([]entity.Transaction, error)
	FindOutboxByID(ctx context.Context, id string) (entity.Outbox, error)
	FindPendingOutbox(ctx context.Context, createdBefore time.Time, maxAttempts int, limit int) ([]entity.Outbox, error)
	MarkOutboxDispatched(ctx context.Context, id string, at time.Time) error
	MarkOutboxFailed(ctx context.Context, id string, reason string) error
}

func New(db *sqlx.DB, log *otelzap.Logger, locker redis.Locker) Repositories {
	return &repositories{
		db:     db,
		log:    log,
		locker: locker,
	}
}

func (r *repositories) Lock(ctx context.Context, key string) (func(), error) {
	unlock, err := r.locker.Lock(ctx, key)
	if err != nil {
		r.log.Ctx(ctx).Error("error acquire lock", zap.String("key", key), zap.Error(err))
		return nil, errors.Conflict("resource is busy, try again")
	}
	return unlock, nil
}

func (r *repositories) rollback(ctx context.Context, tx *sqlx.Tx) {
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		r.log.Ctx(ctx).Error("error rollback transaction", zap.Error(err))
	}
}

// InsertBookingRequest stores a new pending booking with the host notification that announces it.
func (r *repositories) InsertBookingRequest(ctx context.Context, booking entity.Booking, notification entity.Notification) error {
	span, ctx := apm.StartSpan(ctx, "InsertBookingRequest", spanType)
	defer span.End()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}
	defer r.rollback(ctx, tx)

	_, err = tx.NamedExecContext(ctx, `INSERT INTO bookings (`+bookingColumns+`)
		VALUES (:id, :listing_id, :listing_title, :host_id, :user_id, :guest_name, :guest_email,
		:check_in, :check_out, :adults, :children, :infants, :pets, :price, :final_price, :discount, :coupon_used,
		:payment_status, :status, :cancellation_requested, :cancellation_status, :cancellation_requested_at,
		:cancellation_rejected_at, :approved_at, :rejected_at, :created_at)`, booking)
	if err != nil {
		r.log.Ctx(ctx).Error("error insert booking", zap.Error(err))
		return errors.InternalServerError("error insert booking")
	}

	if _, err = tx.NamedExecContext(ctx, insertNotification, notification); err != nil {
		r.log.Ctx(ctx).Error("error insert notification", zap.Error(err))
		return errors.InternalServerError("error insert notification")
	}

	if err = tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}
	return nil
}

func (r *repositories) FindBookingByID(ctx context.Context, id string) (entity.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "FindBookingByID", spanType)
	defer span.End()

	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error("error find booking by id", zap.Error(err))
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

func (r *repositories) FindBookingsByUserID(ctx context.Context, userID string) ([]entity.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "FindBookingsByUserID", spanType)
	defer span.End()

	bookings := []entity.Booking{}
	err := r.db.SelectContext(ctx, &bookings,
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY check_in DESC NULLS LAST`, userID)
	if err != nil {
		r.log.Ctx(ctx).Error("error find bookings by user id", zap.Error(err))
		return nil, errors.InternalServerError("error find bookings by user id")
	}
	return bookings, nil
}

// SaveCancellationRequest flips the booking to a pending cancellation and
// notifies the host. The WHERE clause refuses bookings whose cancellation is
// already pending or approved.
func (r *repositories) SaveCancellationRequest(ctx context.Context, booking entity.Booking, notification entity.Notification) error {
	span, ctx := apm.StartSpan(ctx, "SaveCancellationRequest", spanType)
	defer span.End()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}
	defer r.rollback(ctx, tx)

	res, err := tx.ExecContext(ctx, `UPDATE bookings
		SET cancellation_requested = TRUE, cancellation_status = 'pending', cancellation_requested_at = $2
		WHERE id = $1 AND cancellation_status NOT IN ('pending', 'approved')`,
		booking.ID, booking.CancellationRequestedAt)
	if err != nil {
		r.log.Ctx(ctx).Error("error update booking cancellation", zap.Error(err))
		return errors.InternalServerError("error update booking cancellation")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.Conflict("cancellation already requested, awaiting host approval")
	}

	if _, err = tx.NamedExecContext(ctx, insertNotification, notification); err != nil {
		r.log.Ctx(ctx).Error("error insert notification", zap.Error(err))
		return errors.InternalServerError("error insert notification")
	}

	if err = tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}
	return nil
}

func (r *repositories) FindNotificationByID(ctx context.Context, id string) (entity.Notification, error) {
	span, ctx := apm.StartSpan(ctx, "FindNotificationByID", spanType)
	defer span.End()

	var n entity.Notification
	err := r.db.GetContext(ctx, &n, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return entity.Notification{}, errors.NotFound("notification not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error("error find notification by id", zap.Error(err))
		return entity.Notification{}, errors.InternalServerError("error find notification by id")
	}
	return n, nil
}

func (r *repositories) FindNotificationsByHostID(ctx context.Context, hostID string) ([]entity.Notification, error) {
	span, ctx := apm.StartSpan(ctx, "FindNotificationsByHostID", spanType)
	defer span.End()

	notifications := []entity.Notification{}
	err := r.db.SelectContext(ctx, &notifications,
		`SELECT `+notificationColumns+` FROM notifications WHERE host_id = $1 ORDER BY timestamp DESC`, hostID)
	if err != nil {
		r.log.Ctx(ctx).Error("error find notifications by host id", zap.Error(err))
		return nil, errors.InternalServerError("error find notifications by host id")
	}
	return notifications, nil
}

// ApplyDecision commits a host decision and all of its fan-out rows at once.
// Claiming the notification is a conditional update, so only one caller can
// ever get past the first statement for a given notification.
func (r *repositories) ApplyDecision(ctx context.Context, d entity.Decision) error {
	span, ctx := apm.StartSpan(ctx, "ApplyDecision", spanType)
	defer span.End()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}
	defer r.rollback(ctx, tx)

	res, err := tx.ExecContext(ctx, `UPDATE notifications SET processed = TRUE, read = TRUE, status = $2
		WHERE id = $1 AND processed = FALSE`, d.NotificationID, d.Outcome)
	if err != nil {
		r.log.Ctx(ctx).Error("error claim notification", zap.Error(err))
		return errors.InternalServerError("error claim notification")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.Conflict("notification already processed")
	}

	switch {
	case d.DeleteBookingID != "":
		res, err = tx.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, d.DeleteBookingID)
	case d.Booking != nil:
		res, err = tx.NamedExecContext(ctx, `UPDATE bookings SET
			status = :status,
			cancellation_requested = :cancellation_requested,
			cancellation_status = :cancellation_status,
			cancellation_rejected_at = :cancellation_rejected_at,
			approved_at = :approved_at,
			rejected_at = :rejected_at
			WHERE id = :id`, d.Booking)
	}
	if err != nil {
		r.log.Ctx(ctx).Error("error write booking decision", zap.Error(err))
		return errors.InternalServerError("error write booking decision")
	}
	if res != nil {
		if n, _ := res.RowsAffected(); n == 0 {
			return errors.NotFound("booking not found")
		}
	}

	_, err = tx.NamedExecContext(ctx, `INSERT INTO guest_notifications (`+guestNotificationColumns+`)
		VALUES (:id, :user_id, :type, :title, :message, :booking_id, :read, :timestamp)`, d.GuestNotification)
	if err != nil {
		r.log.Ctx(ctx).Error("error insert guest notification", zap.Error(err))
		return errors.InternalServerError("error insert guest notification")
	}

	if d.Transaction != nil {
		_, err = tx.NamedExecContext(ctx, `INSERT INTO transactions (`+transactionColumns+`)
			VALUES (:id, :user_id, :host_id, :booking_id, :amount, :listing_title, :check_in, :check_out,
			:guest_name, :type, :status, :created_at)`, d.Transaction)
		if err != nil {
			r.log.Ctx(ctx).Error("error insert transaction", zap.Error(err))
			return errors.InternalServerError("error insert transaction")
		}
	}

	if d.Outbox != nil {
		_, err = tx.NamedExecContext(ctx, `INSERT INTO outbox (`+outboxColumns+`)
			VALUES (:id, :booking_id, :kind, :payload, :dispatched, :attempts, :last_error, :created_at, :dispatched_at)`, d.Outbox)
		if err != nil {
			r.log.Ctx(ctx).Error("error insert outbox", zap.Error(err))
			return errors.InternalServerError("error insert outbox")
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}
	return nil
}

func (r *repositories) FindGuestNotificationsByUserID(ctx context.Context, userID string) ([]entity.GuestNotification, error) {
	span, ctx := apm.StartSpan(ctx, "FindGuestNotificationsByUserID", spanType)
	defer span.End()

	notifications := []entity.GuestNotification{}
	err := r.db.SelectContext(ctx, &notifications,
		`SELECT `+guestNotificationColumns+` FROM guest_notifications WHERE user_id = $1 ORDER BY timestamp DESC`, userID)
	if err != nil {
		r.log.Ctx(ctx).Error("error find guest notifications", zap.Error(err))
		return nil, errors.InternalServerError("error find guest notifications")
	}
	return notifications, nil
}

func (r *repositories) MarkGuestNotificationsRead(ctx context.Context, userID string, ids []string) (int64, error) {
	span, ctx := apm.StartSpan(ctx, "MarkGuestNotificationsRead", spanType)
	defer span.End()

	res, err := r.db.ExecContext(ctx, `UPDATE guest_notifications SET read = TRUE
		WHERE user_id = $1 AND id = ANY($2) AND read = FALSE`, userID, pq.Array(ids))
	if err != nil {
		r.log.Ctx(ctx).Error("error mark guest notifications read", zap.Error(err))
		return 0, errors.InternalServerError("error mark guest notifications read")
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (r *repositories) DeleteGuestNotification(ctx context.Context, userID string, id string) error {
	span, ctx := apm.StartSpan(ctx, "DeleteGuestNotification", spanType)
	defer span.End()

	res, err := r.db.ExecContext(ctx, `DELETE FROM guest_notifications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		r.log.Ctx(ctx).Error("error delete guest notification", zap.Error(err))
		return errors.InternalServerError("error delete guest notification")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("notification not found")
	}
	return nil
}

func (r *repositories) FindTransactionsByHostID(ctx context.Context, hostID string) ([]entity.Transaction, error) {
	span, ctx := apm.StartSpan(ctx, "FindTransactionsByHostID", spanType)
	defer span.End()

	transactions := []entity.Transaction{}
	err := r.db.SelectContext(ctx, &transactions,
		`SELECT `+transactionColumns+` FROM transactions WHERE host_id = $1 ORDER BY created_at DESC`, hostID)
	if err != nil {
		r.log.Ctx(ctx).Error("error find transactions by host id", zap.Error(err))
		return nil, errors.InternalServerError("error find transactions by host id")
	}
	return transactions, nil
}

func (r *repositories) FindOutboxByID(ctx context.Context, id string) (entity.Outbox, error) {
	span, ctx := apm.StartSpan(ctx, "FindOutboxByID", spanType)
	defer span.End()

	var o entity.Outbox
	err := r.db.GetContext(ctx, &o, `SELECT `+outboxColumns+` FROM outbox WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return entity.Outbox{}, errors.NotFound("outbox entry not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error("error find outbox by id", zap.Error(err))
		return entity.Outbox{}, errors.InternalServerError("error find outbox by id")
	}
	return o, nil
}

func (r *repositories) FindPendingOutbox(ctx context.Context, createdBefore time.Time, maxAttempts int, limit int) ([]entity.Outbox, error) {
	span, ctx := apm.StartSpan(ctx, "FindPendingOutbox", spanType)
	defer span.End()

	entries := []entity.Outbox{}
	err := r.db.SelectContext(ctx, &entries, `SELECT `+outboxColumns+` FROM outbox
		WHERE dispatched = FALSE AND created_at < $1 AND attempts < $2 ORDER BY created_at LIMIT $3`, createdBefore, maxAttempts, limit)
	if err != nil {
		r.log.Ctx(ctx).Error("error find pending outbox", zap.Error(err))
		return nil, errors.InternalServerError("error find pending outbox")
	}
	return entries, nil
}

func (r *repositories) MarkOutboxDispatched(ctx context.Context, id string, at time.Time) error {
	span, ctx := apm.StartSpan(ctx, "MarkOutboxDispatched", spanType)
	defer span.End()

	_, err := r.db.ExecContext(ctx, `UPDATE outbox SET dispatched = TRUE, dispatched_at = $2, attempts = attempts + 1, last_error = ''
		WHERE id = $1`, id, at)
	if err != nil {
		r.log.Ctx(ctx).Error("error mark outbox dispatched", zap.Error(err))
		return errors.InternalServerError("error mark outbox dispatched")
	}
	return nil
}

func (r *repositories) MarkOutboxFailed(ctx context.Context, id string, reason string) error {
	span, ctx := apm.StartSpan(ctx, "MarkOutboxFailed", spanType)
	defer span.End()

	_, err := r.db.ExecContext(ctx, `UPDATE outbox SET attempts = attempts + 1, last_error = $2 WHERE id = $1`, id, reason)
	if err != nil {
		r.log.Ctx(ctx).Error("error mark outbox failed", zap.Error(err))
		return errors.InternalServerError("error mark outbox failed")
	}
	return nil
}
