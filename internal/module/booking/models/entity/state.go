package entity

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"homezy-service/internal/pkg/errors"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusRejected  BookingStatus = "rejected"
)

// ParseBookingStatus folds the legacy spellings into the three real statuses.
func ParseBookingStatus(s string) BookingStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "confirmed", "approved", "accepted":
		return StatusConfirmed
	case "rejected", "cancelled", "canceled", "declined":
		return StatusRejected
	default:
		return StatusPending
	}
}

type CancellationStatus string

const (
	CancellationNone     CancellationStatus = ""
	CancellationPending  CancellationStatus = "pending"
	CancellationApproved CancellationStatus = "approved"
	CancellationRejected CancellationStatus = "rejected"
)

func ParseCancellationStatus(s string) CancellationStatus {
	switch CancellationStatus(strings.ToLower(strings.TrimSpace(s))) {
	case CancellationPending:
		return CancellationPending
	case CancellationApproved:
		return CancellationApproved
	case CancellationRejected:
		return CancellationRejected
	default:
		return CancellationNone
	}
}

// State is the combined lifecycle position of a booking.
type State string

const (
	StatePending              State = "pending"
	StateConfirmed            State = "confirmed"
	StateRejected             State = "rejected"
	StateCancellationPending  State = "cancellation_pending"
	StateCancellationRejected State = "cancellation_rejected"
	// StateCancellationApproved is transient: the record is deleted in the
	// same transaction that sets it.
	StateCancellationApproved State = "cancellation_approved"
)

// State folds both status columns into one lifecycle state. An open or
// approved cancellation wins over the booking status.
func (b Booking) State() State {
	switch ParseCancellationStatus(string(b.CancellationStatus)) {
	case CancellationPending:
		return StateCancellationPending
	case CancellationApproved:
		return StateCancellationApproved
	}

	switch ParseBookingStatus(string(b.Status)) {
	case StatusRejected:
		return StateRejected
	case StatusPending:
		return StatePending
	}

	if ParseCancellationStatus(string(b.CancellationStatus)) == CancellationRejected {
		return StateCancellationRejected
	}
	return StateConfirmed
}

// CanRequestCancellation reports whether a guest may ask to cancel now.
func (b Booking) CanRequestCancellation() bool {
	switch b.State() {
	case StatePending, StateConfirmed, StateCancellationRejected:
		return true
	}
	return false
}

func invalidTransition(action string, from State) error {
	return errors.Conflict(fmt.Sprintf("cannot %s a booking in state %s", action, from))
}

func (b *Booking) RequestCancellation(now time.Time) error {
	switch from := b.State(); from {
	case StatePending, StateConfirmed, StateCancellationRejected:
	case StateCancellationPending:
		return errors.Conflict("cancellation already requested, awaiting host approval")
	default:
		return invalidTransition("request cancellation of", from)
	}

	b.CancellationRequested = true
	b.CancellationStatus = CancellationPending
	b.CancellationRequestedAt = sql.NullTime{Time: now, Valid: true}
	return nil
}

func (b *Booking) Approve(now time.Time) error {
	if ParseBookingStatus(string(b.Status)) != StatusPending {
		return invalidTransition("approve", b.State())
	}
	b.Status = StatusConfirmed
	b.ApprovedAt = sql.NullTime{Time: now, Valid: true}
	return nil
}

func (b *Booking) Reject(now time.Time) error {
	if ParseBookingStatus(string(b.Status)) != StatusPending {
		return invalidTransition("reject", b.State())
	}
	b.Status = StatusRejected
	b.RejectedAt = sql.NullTime{Time: now, Valid: true}
	return nil
}

// ApproveCancellation validates the transition; the caller deletes the record.
func (b *Booking) ApproveCancellation() error {
	if from := b.State(); from != StateCancellationPending {
		return invalidTransition("approve cancellation of", from)
	}
	b.CancellationStatus = CancellationApproved
	return nil
}

func (b *Booking) DenyCancellation(now time.Time) error {
	if from := b.State(); from != StateCancellationPending {
		return invalidTransition("deny cancellation of", from)
	}
	b.CancellationStatus = CancellationRejected
	b.CancellationRejectedAt = sql.NullTime{Time: now, Valid: true}
	return nil
}
