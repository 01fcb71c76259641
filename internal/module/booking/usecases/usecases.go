package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"homezy-service/internal/module/booking/models/entity"
	"homezy-service/internal/module/booking/models/request"
	"homezy-service/internal/module/booking/models/response"
	"homezy-service/internal/module/booking/repositories"
	mailer "homezy-service/internal/module/mailer/usecases"
	"homezy-service/internal/pkg/errors"
	"homezy-service/internal/pkg/helpers"
	"homezy-service/internal/pkg/messagestream"
	"homezy-service/internal/pkg/scheduler"
	"homezy-service/internal/pkg/session"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const (
	// redispatchAfter is how long an outbox row may sit undelivered before the
	// periodic sweep publishes it again.
	redispatchAfter = time.Minute
	redispatchBatch = 100
	maxStayNights   = 365

	// defaultOutboxMaxAttempts bounds sends per row; exhausted rows stay with
	// their last_error for manual follow-up.
	defaultOutboxMaxAttempts = 5
)

type usecase struct {
	repo          repositories.Repositories
	log           *otelzap.Logger
	publisher     message.Publisher
	enqueuer      scheduler.Enqueuer
	mailer        mailer.Usecase
	markReadDelay time.Duration
	maxAttempts   int
	now           func() time.Time
	newID         func() string
}

type Usecase interface {
	// http
	BookListing(ctx context.Context, sess session.Session, payload *request.BookListing) error
	ShowGuestBookings(ctx context.Context, sess session.Session) ([]response.GuestBooking, error)
	RequestCancellation(ctx context.Context, sess session.Session, bookingID string) error
	ShowHostNotifications(ctx context.Context, sess session.Session) ([]response.HostNotification, error)
	DecideNotification(ctx context.Context, sess session.Session, notificationID string, payload *request.Decision) (response.Decision, error)
	ShowGuestNotifications(ctx context.Context, sess session.Session) ([]response.GuestNotification, error)
	DeleteGuestNotification(ctx context.Context, sess session.Session, id string) error
	ShowHostTransactions(ctx context.Context, sess session.Session) ([]response.Transaction, error)
	// queue
	ConsumeBookListingQueue(ctx context.Context, payload *request.BookListing) error
	DeliverOutbox(ctx context.Context, payload *request.OutboxDispatch) error
	// scheduler
	MarkGuestNotificationsRead(ctx context.Context, payload *request.MarkRead) error
	RedispatchOutbox(ctx context.Context) error
}

type Option func(*usecase)

func WithClock(now func() time.Time) Option {
	return func(u *usecase) { u.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(u *usecase) { u.newID = newID }
}

// WithOutboxMaxAttempts caps delivery attempts per outbox row. Non-positive
// values keep the default.
func WithOutboxMaxAttempts(n int) Option {
	return func(u *usecase) {
		if n > 0 {
			u.maxAttempts = n
		}
	}
}

func New(repo repositories.Repositories, log *otelzap.Logger, publisher message.Publisher, enqueuer scheduler.Enqueuer, mailUsecase mailer.Usecase, markReadDelay time.Duration, opts ...Option) Usecase {
	u := &usecase{
		repo:          repo,
		log:           log,
		publisher:     publisher,
		enqueuer:      enqueuer,
		mailer:        mailUsecase,
		markReadDelay: markReadDelay,
		maxAttempts:   defaultOutboxMaxAttempts,
		now:           time.Now,
		newID:         uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func stayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := helpers.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, errors.BadRequest("invalid check_in date")
	}
	out, err := helpers.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, errors.BadRequest("invalid check_out date")
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, errors.BadRequest("check_out must be after check_in")
	}
	if out.After(in.AddDate(0, 0, maxStayNights)) {
		return time.Time{}, time.Time{}, errors.BadRequest(fmt.Sprintf("stay cannot exceed %d nights", maxStayNights))
	}
	return in, out, nil
}

func (u *usecase) BookListing(ctx context.Context, sess session.Session, payload *request.BookListing) error {
	if _, _, err := stayDates(payload.CheckIn, payload.CheckOut); err != nil {
		return err
	}

	payload.UserID = sess.UserID
	payload.GuestEmail = sess.Email

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.InternalServerError("error marshal booking request")
	}

	if err := u.publisher.Publish(messagestream.TopicBookListing, message.NewMessage(watermill.NewUUID(), body)); err != nil {
		u.log.Ctx(ctx).Error("error publish booking request", zap.Error(err))
		return errors.InternalServerError("error queue booking request")
	}
	return nil
}

func (u *usecase) ConsumeBookListingQueue(ctx context.Context, payload *request.BookListing) error {
	in, out, err := stayDates(payload.CheckIn, payload.CheckOut)
	if err != nil {
		return err
	}

	now := u.now()
	finalPrice := payload.Price - payload.Discount
	if finalPrice < 0 {
		finalPrice = 0
	}
	paymentStatus := payload.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = "pending"
	}

	booking := entity.Booking{
		ID:            u.newID(),
		ListingID:     payload.ListingID,
		ListingTitle:  payload.ListingTitle,
		HostID:        payload.HostID,
		UserID:        payload.UserID,
		GuestName:     payload.GuestName,
		GuestEmail:    payload.GuestEmail,
		CheckIn:       sql.NullTime{Time: in, Valid: true},
		CheckOut:      sql.NullTime{Time: out, Valid: true},
		Adults:        payload.Adults,
		Children:      payload.Children,
		Infants:       payload.Infants,
		Pets:          payload.Pets,
		Price:         payload.Price,
		FinalPrice:    finalPrice,
		Discount:      payload.Discount,
		CouponUsed:    payload.CouponUsed,
		PaymentStatus: paymentStatus,
		Status:        entity.StatusPending,
		CreatedAt:     now,
	}

	if err := u.repo.InsertBookingRequest(ctx, booking, u.hostNotification(booking, entity.NotificationBookingRequest, now)); err != nil {
		return err
	}

	u.log.Ctx(ctx).Info("booking request stored",
		zap.String("booking_id", booking.ID),
		zap.String("host_id", booking.HostID),
	)
	return nil
}

func (u *usecase) hostNotification(b entity.Booking, kind entity.NotificationType, now time.Time) entity.Notification {
	return entity.Notification{
		ID:           u.newID(),
		HostID:       b.HostID,
		Type:         kind,
		BookingID:    b.ID,
		GuestName:    b.GuestName,
		GuestEmail:   b.GuestEmail,
		ListingTitle: b.ListingTitle,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		Guests:       b.TotalGuests(),
		Price:        b.Amount(),
		Status:       entity.NotificationUndecided,
		Timestamp:    now,
	}
}

func (u *usecase) ShowGuestBookings(ctx context.Context, sess session.Session) ([]response.GuestBooking, error) {
	bookings, err := u.repo.FindBookingsByUserID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.GuestBooking, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, toGuestBooking(b))
	}
	return resp, nil
}

// RequestCancellation opens a cancellation on a pending or confirmed booking and
// asks the host to decide. Nothing is written when the transition is refused.
func (u *usecase) RequestCancellation(ctx context.Context, sess session.Session, bookingID string) error {
	unlock, err := u.repo.Lock(ctx, "booking:"+bookingID)
	if err != nil {
		return err
	}
	defer unlock()

	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != sess.UserID && sess.Role != session.RoleAdmin {
		return errors.ForbiddenError("booking belongs to another guest")
	}

	now := u.now()
	if err := booking.RequestCancellation(now); err != nil {
		return err
	}

	return u.repo.SaveCancellationRequest(ctx, booking, u.hostNotification(booking, entity.NotificationCancellationRequest, now))
}

func (u *usecase) ShowHostNotifications(ctx context.Context, sess session.Session) ([]response.HostNotification, error) {
	notifications, err := u.repo.FindNotificationsByHostID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.HostNotification, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, toHostNotification(n))
	}
	return resp, nil
}

// ShowGuestNotifications lists the guest's notifications and schedules the
// unread ones to be marked read shortly after.
func (u *usecase) ShowGuestNotifications(ctx context.Context, sess session.Session) ([]response.GuestNotification, error) {
	notifications, err := u.repo.FindGuestNotificationsByUserID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.GuestNotification, 0, len(notifications))
	var unread []string
	for _, n := range notifications {
		resp = append(resp, toGuestNotification(n))
		if !n.Read {
			unread = append(unread, n.ID)
		}
	}

	if len(unread) > 0 {
		payload, _ := json.Marshal(request.MarkRead{UserID: sess.UserID, IDs: unread})
		if err := u.enqueuer.EnqueueIn(ctx, scheduler.TypeMarkGuestNotificationsRead, payload, u.markReadDelay); err != nil {
			// listing still succeeds, the ids stay unread until the next visit
			u.log.Ctx(ctx).Error("error enqueue mark read", zap.String("user_id", sess.UserID), zap.Error(err))
		}
	}

	return resp, nil
}

func (u *usecase) MarkGuestNotificationsRead(ctx context.Context, payload *request.MarkRead) error {
	n, err := u.repo.MarkGuestNotificationsRead(ctx, payload.UserID, payload.IDs)
	if err != nil {
		return err
	}
	u.log.Ctx(ctx).Debug("guest notifications marked read", zap.String("user_id", payload.UserID), zap.Int64("count", n))
	return nil
}

func (u *usecase) DeleteGuestNotification(ctx context.Context, sess session.Session, id string) error {
	return u.repo.DeleteGuestNotification(ctx, sess.UserID, id)
}

func (u *usecase) ShowHostTransactions(ctx context.Context, sess session.Session) ([]response.Transaction, error) {
	transactions, err := u.repo.FindTransactionsByHostID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Transaction, 0, len(transactions))
	for _, t := range transactions {
		resp = append(resp, toTransaction(t))
	}
	return resp, nil
}

func (u *usecase) publishOutbox(id string) error {
	body, err := json.Marshal(request.OutboxDispatch{OutboxID: id})
	if err != nil {
		return err
	}
	return u.publisher.Publish(messagestream.TopicSendEmail, message.NewMessage(watermill.NewUUID(), body))
}

// DeliverOutbox sends one outbox email. Already dispatched rows are skipped,
// so redelivered messages are harmless.
func (u *usecase) DeliverOutbox(ctx context.Context, payload *request.OutboxDispatch) error {
	unlock, err := u.repo.Lock(ctx, "outbox:"+payload.OutboxID)
	if err != nil {
		return err
	}
	defer unlock()

	entry, err := u.repo.FindOutboxByID(ctx, payload.OutboxID)
	if err != nil {
		if errors.Is(err, http.StatusNotFound) {
			u.log.Ctx(ctx).Warn("outbox entry gone, dropping", zap.String("outbox_id", payload.OutboxID))
			return nil
		}
		return err
	}
	if entry.Dispatched {
		return nil
	}
	if entry.Attempts >= u.maxAttempts {
		u.log.Ctx(ctx).Warn("outbox attempts exhausted, dropping", zap.String("outbox_id", entry.ID), zap.Int("attempts", entry.Attempts), zap.String("last_error", entry.LastError))
		return nil
	}

	email, err := decodeEmail(entry)
	if err != nil {
		u.log.Ctx(ctx).Error("error decode outbox payload", zap.String("outbox_id", entry.ID), zap.Error(err))
		if markErr := u.repo.MarkOutboxFailed(ctx, entry.ID, err.Error()); markErr != nil {
			u.log.Ctx(ctx).Error("error record outbox failure", zap.Error(markErr))
		}
		return nil
	}

	switch entry.Kind {
	case entity.OutboxReceipt:
		err = u.mailer.SendReceipt(ctx, email)
	case entity.OutboxCancellation:
		err = u.mailer.SendCancellation(ctx, email)
	default:
		err = fmt.Errorf("unknown outbox kind %q", entry.Kind)
	}
	if err != nil {
		if markErr := u.repo.MarkOutboxFailed(ctx, entry.ID, err.Error()); markErr != nil {
			u.log.Ctx(ctx).Error("error record outbox failure", zap.Error(markErr))
		}
		return err
	}

	return u.repo.MarkOutboxDispatched(ctx, entry.ID, u.now())
}

// RedispatchOutbox publishes rows that never got delivered, covering a crash
// between commit and publish as well as failed sends. Rows that used up their
// attempts are left alone.
func (u *usecase) RedispatchOutbox(ctx context.Context) error {
	entries, err := u.repo.FindPendingOutbox(ctx, u.now().Add(-redispatchAfter), u.maxAttempts, redispatchBatch)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if err := u.publishOutbox(e.ID); err != nil {
			u.log.Ctx(ctx).Error("error publish outbox", zap.String("outbox_id", e.ID), zap.Error(err))
			return errors.InternalServerError("error redispatch outbox")
		}
	}
	if len(entries) > 0 {
		u.log.Ctx(ctx).Info("outbox redispatched", zap.Int("count", len(entries)))
	}
	return nil
}
