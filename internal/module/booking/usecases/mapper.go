package usecases

import (
	"database/sql"
	"time"

	"homezy-service/internal/module/booking/models/entity"
	"homezy-service/internal/module/booking/models/response"
	"homezy-service/internal/pkg/helpers"
)

var statusLabels = map[entity.State]string{
	entity.StatePending:              "Awaiting Host Approval",
	entity.StateConfirmed:            "Confirmed",
	entity.StateRejected:             "Declined",
	entity.StateCancellationPending:  "Cancellation Requested",
	entity.StateCancellationRejected: "Cancellation Rejected",
	entity.StateCancellationApproved: "Cancelled",
}

func formatDate(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return helpers.DayKey(t.Time)
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func toGuestBooking(b entity.Booking) response.GuestBooking {
	state := b.State()
	return response.GuestBooking{
		ID:           b.ID,
		ListingID:    b.ListingID,
		ListingTitle: b.ListingTitle,
		CheckIn:      formatDate(b.CheckIn),
		CheckOut:     formatDate(b.CheckOut),
		Guests: response.Guests{
			Adults:   b.Adults,
			Children: b.Children,
			Infants:  b.Infants,
			Pets:     b.Pets,
		},
		Price:                  b.Price,
		FinalPrice:             b.Amount(),
		PaymentStatus:          b.PaymentStatus,
		Status:                 string(entity.ParseBookingStatus(string(b.Status))),
		CancellationStatus:     string(entity.ParseCancellationStatus(string(b.CancellationStatus))),
		State:                  string(state),
		CanRequestCancellation: b.CanRequestCancellation(),
		StatusLabel:            statusLabels[state],
	}
}

func toHostNotification(n entity.Notification) response.HostNotification {
	return response.HostNotification{
		ID:           n.ID,
		Type:         string(n.Kind()),
		BookingID:    n.BookingID,
		GuestName:    n.GuestName,
		GuestEmail:   n.GuestEmail,
		ListingTitle: n.ListingTitle,
		CheckIn:      formatDate(n.CheckIn),
		CheckOut:     formatDate(n.CheckOut),
		Guests:       n.Guests,
		Price:        n.Price,
		Read:         n.Read,
		Processed:    n.Processed,
		Status:       string(n.Status),
		Timestamp:    formatTimestamp(n.Timestamp),
	}
}

func toGuestNotification(n entity.GuestNotification) response.GuestNotification {
	return response.GuestNotification{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		BookingID: n.BookingID,
		Read:      n.Read,
		Timestamp: formatTimestamp(n.Timestamp),
	}
}

func toTransaction(t entity.Transaction) response.Transaction {
	return response.Transaction{
		ID:           t.ID,
		BookingID:    t.BookingID,
		Amount:       t.Amount,
		ListingTitle: t.ListingTitle,
		GuestName:    t.GuestName,
		CheckIn:      formatDate(t.CheckIn),
		CheckOut:     formatDate(t.CheckOut),
		Type:         t.Type,
		Status:       t.Status,
		CreatedAt:    formatTimestamp(t.CreatedAt),
	}
}
