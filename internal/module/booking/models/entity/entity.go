package entity

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx/types"
)

type Booking struct {
	ID                      string             `db:"id"`
	ListingID               string             `db:"listing_id"`
	ListingTitle            string             `db:"listing_title"`
	HostID                  string             `db:"host_id"`
	UserID                  string             `db:"user_id"`
	GuestName               string             `db:"guest_name"`
	GuestEmail              string             `db:"guest_email"`
	CheckIn                 sql.NullTime       `db:"check_in"`
	CheckOut                sql.NullTime       `db:"check_out"`
	Adults                  int                `db:"adults"`
	Children                int                `db:"children"`
	Infants                 int                `db:"infants"`
	Pets                    int                `db:"pets"`
	Price                   float64            `db:"price"`
	FinalPrice              float64            `db:"final_price"`
	Discount                float64            `db:"discount"`
	CouponUsed              string             `db:"coupon_used"`
	PaymentStatus           string             `db:"payment_status"`
	Status                  BookingStatus      `db:"status"`
	CancellationRequested   bool               `db:"cancellation_requested"`
	CancellationStatus      CancellationStatus `db:"cancellation_status"`
	CancellationRequestedAt sql.NullTime       `db:"cancellation_requested_at"`
	CancellationRejectedAt  sql.NullTime       `db:"cancellation_rejected_at"`
	ApprovedAt              sql.NullTime       `db:"approved_at"`
	RejectedAt              sql.NullTime       `db:"rejected_at"`
	CreatedAt               time.Time          `db:"created_at"`
}

// TotalGuests counts people; pets are not guests.
func (b Booking) TotalGuests() int {
	return b.Adults + b.Children + b.Infants
}

// Amount is what the guest pays: the final price, or the list price when no
// final price was recorded.
func (b Booking) Amount() float64 {
	if b.FinalPrice > 0 {
		return b.FinalPrice
	}
	return b.Price
}

type NotificationType string

const (
	NotificationBookingRequest      NotificationType = "booking_request"
	NotificationCancellationRequest NotificationType = "cancellation_request"
)

type NotificationStatus string

const (
	NotificationUndecided NotificationStatus = ""
	NotificationApproved  NotificationStatus = "approved"
	NotificationRejected  NotificationStatus = "rejected"
)

// Notification is addressed to a host and asks for a decision.
type Notification struct {
	ID           string             `db:"id"`
	HostID       string             `db:"host_id"`
	Type         NotificationType   `db:"type"`
	BookingID    string             `db:"booking_id"`
	GuestName    string             `db:"guest_name"`
	GuestEmail   string             `db:"guest_email"`
	ListingTitle string             `db:"listing_title"`
	CheckIn      sql.NullTime       `db:"check_in"`
	CheckOut     sql.NullTime       `db:"check_out"`
	Guests       int                `db:"guests"`
	Price        float64            `db:"price"`
	Read         bool               `db:"read"`
	Processed    bool               `db:"processed"`
	Status       NotificationStatus `db:"status"`
	Timestamp    time.Time          `db:"timestamp"`
}

// Kind treats an empty type as a booking request, as older records do.
func (n Notification) Kind() NotificationType {
	if n.Type == "" {
		return NotificationBookingRequest
	}
	return n.Type
}

type GuestNotificationType string

const (
	GuestBookingApproved      GuestNotificationType = "booking_approved"
	GuestBookingCancelled     GuestNotificationType = "booking_cancelled"
	GuestCancellationApproved GuestNotificationType = "cancellation_approved"
	GuestCancellationRejected GuestNotificationType = "cancellation_rejected"
)

type GuestNotification struct {
	ID        string                `db:"id"`
	UserID    string                `db:"user_id"`
	Type      GuestNotificationType `db:"type"`
	Title     string                `db:"title"`
	Message   string                `db:"message"`
	BookingID string                `db:"booking_id"`
	Read      bool                  `db:"read"`
	Timestamp time.Time             `db:"timestamp"`
}

const (
	TransactionTypeBooking    = "booking"
	TransactionStatusComplete = "completed"
)

// Transaction is an append-only ledger row written when a booking is approved.
type Transaction struct {
	ID           string       `db:"id"`
	UserID       string       `db:"user_id"`
	HostID       string       `db:"host_id"`
	BookingID    string       `db:"booking_id"`
	Amount       float64      `db:"amount"`
	ListingTitle string       `db:"listing_title"`
	CheckIn      sql.NullTime `db:"check_in"`
	CheckOut     sql.NullTime `db:"check_out"`
	GuestName    string       `db:"guest_name"`
	Type         string       `db:"type"`
	Status       string       `db:"status"`
	CreatedAt    time.Time    `db:"created_at"`
}

type OutboxKind string

const (
	OutboxReceipt      OutboxKind = "receipt"
	OutboxCancellation OutboxKind = "cancellation"
)

// Outbox holds an email that must go out because a decision committed.
type Outbox struct {
	ID           string         `db:"id"`
	BookingID    string         `db:"booking_id"`
	Kind         OutboxKind     `db:"kind"`
	Payload      types.JSONText `db:"payload"`
	Dispatched   bool           `db:"dispatched"`
	Attempts     int            `db:"attempts"`
	LastError    string         `db:"last_error"`
	CreatedAt    time.Time      `db:"created_at"`
	DispatchedAt sql.NullTime   `db:"dispatched_at"`
}

// Decision is every write a host decision makes. Repositories apply it in a
// single transaction guarded by the notification's processed flag.
type Decision struct {
	NotificationID    string
	Outcome           NotificationStatus
	Booking           *Booking
	DeleteBookingID   string
	GuestNotification GuestNotification
	Transaction       *Transaction
	Outbox            *Outbox
}
