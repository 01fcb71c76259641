package usecases

import (
	"context"
	"fmt"

	"homezy-service/internal/module/booking/models/entity"
	"homezy-service/internal/module/booking/models/request"
	"homezy-service/internal/module/booking/models/response"
	mailerRequest "homezy-service/internal/module/mailer/models/request"
	"homezy-service/internal/pkg/errors"
	"homezy-service/internal/pkg/session"

	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx/types"
	"go.uber.org/zap"
)

// DecideNotification applies a host's approve/reject on a booking or
// cancellation request. The repository commits every write of the decision
// together or not at all, and a notification can be decided only once.
func (u *usecase) DecideNotification(ctx context.Context, sess session.Session, notificationID string, payload *request.Decision) (response.Decision, error) {
	notification, err := u.repo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		return response.Decision{}, err
	}
	if notification.HostID != sess.UserID && sess.Role != session.RoleAdmin {
		return response.Decision{}, errors.ForbiddenError("notification belongs to another host")
	}
	if notification.Processed {
		return response.Decision{}, errors.Conflict("notification already processed")
	}

	unlock, err := u.repo.Lock(ctx, "booking:"+notification.BookingID)
	if err != nil {
		return response.Decision{}, err
	}
	defer unlock()

	booking, err := u.repo.FindBookingByID(ctx, notification.BookingID)
	if err != nil {
		return response.Decision{}, err
	}

	decision, err := u.buildDecision(notification, booking, payload.Approve())
	if err != nil {
		return response.Decision{}, err
	}

	if err := u.repo.ApplyDecision(ctx, decision); err != nil {
		return response.Decision{}, err
	}

	if decision.Outbox != nil {
		if err := u.publishOutbox(decision.Outbox.ID); err != nil {
			u.log.Ctx(ctx).Warn("outbox publish failed, left for redispatch", zap.String("outbox_id", decision.Outbox.ID), zap.Error(err))
		}
	}

	u.log.Ctx(ctx).Info("host decision applied",
		zap.String("notification_id", notification.ID),
		zap.String("booking_id", booking.ID),
		zap.String("type", string(notification.Kind())),
		zap.String("outcome", string(decision.Outcome)),
	)

	return response.Decision{
		NotificationID: notification.ID,
		BookingID:      booking.ID,
		Status:         string(decision.Outcome),
		BookingDeleted: decision.DeleteBookingID != "",
	}, nil
}

func (u *usecase) buildDecision(n entity.Notification, b entity.Booking, approve bool) (entity.Decision, error) {
	now := u.now()
	d := entity.Decision{
		NotificationID: n.ID,
		Outcome:        entity.NotificationRejected,
	}
	if approve {
		d.Outcome = entity.NotificationApproved
	}

	var (
		kind    entity.GuestNotificationType
		title   string
		message string
		outbox  entity.OutboxKind
	)

	switch n.Kind() {
	case entity.NotificationBookingRequest:
		if approve {
			if err := b.Approve(now); err != nil {
				return entity.Decision{}, err
			}
			kind, title = entity.GuestBookingApproved, "Booking Approved"
			message = fmt.Sprintf("Your booking for %s has been approved by the host.", b.ListingTitle)
			outbox = entity.OutboxReceipt
			d.Transaction = &entity.Transaction{
				ID:           u.newID(),
				UserID:       b.UserID,
				HostID:       b.HostID,
				BookingID:    b.ID,
				Amount:       b.Amount(),
				ListingTitle: b.ListingTitle,
				CheckIn:      b.CheckIn,
				CheckOut:     b.CheckOut,
				GuestName:    b.GuestName,
				Type:         entity.TransactionTypeBooking,
				Status:       entity.TransactionStatusComplete,
				CreatedAt:    now,
			}
		} else {
			if err := b.Reject(now); err != nil {
				return entity.Decision{}, err
			}
			kind, title = entity.GuestBookingCancelled, "Booking Declined"
			message = fmt.Sprintf("Your booking request for %s was declined by the host.", b.ListingTitle)
		}
		d.Booking = &b

	case entity.NotificationCancellationRequest:
		if approve {
			if err := b.ApproveCancellation(); err != nil {
				return entity.Decision{}, err
			}
			kind, title = entity.GuestCancellationApproved, "Cancellation Approved"
			message = fmt.Sprintf("Your cancellation request for %s has been approved.", b.ListingTitle)
			outbox = entity.OutboxCancellation
			d.DeleteBookingID = b.ID
		} else {
			if err := b.DenyCancellation(now); err != nil {
				return entity.Decision{}, err
			}
			kind, title = entity.GuestCancellationRejected, "Cancellation Rejected"
			message = fmt.Sprintf("Your cancellation request for %s was rejected. Your booking remains confirmed.", b.ListingTitle)
			d.Booking = &b
		}

	default:
		return entity.Decision{}, errors.BadRequest(fmt.Sprintf("unknown notification type %s", n.Type))
	}

	d.GuestNotification = entity.GuestNotification{
		ID:        u.newID(),
		UserID:    b.UserID,
		Type:      kind,
		Title:     title,
		Message:   message,
		BookingID: b.ID,
		Timestamp: now,
	}

	if outbox != "" && b.GuestEmail != "" {
		payload, err := json.Marshal(bookingEmail(b))
		if err != nil {
			return entity.Decision{}, errors.InternalServerError("error marshal email payload")
		}
		d.Outbox = &entity.Outbox{
			ID:        u.newID(),
			BookingID: b.ID,
			Kind:      outbox,
			Payload:   types.JSONText(payload),
			CreatedAt: now,
		}
	}

	return d, nil
}

func bookingEmail(b entity.Booking) mailerRequest.BookingEmail {
	return mailerRequest.BookingEmail{
		Email:        b.GuestEmail,
		FullName:     b.GuestName,
		ListingTitle: b.ListingTitle,
		CheckIn:      formatDate(b.CheckIn),
		CheckOut:     formatDate(b.CheckOut),
		Guests:       b.TotalGuests(),
		Price:        b.Amount(),
	}
}

func decodeEmail(o entity.Outbox) (*mailerRequest.BookingEmail, error) {
	var email mailerRequest.BookingEmail
	if err := json.Unmarshal(o.Payload, &email); err != nil {
		return nil, fmt.Errorf("decode outbox payload: %w", err)
	}
	return &email, nil
}
