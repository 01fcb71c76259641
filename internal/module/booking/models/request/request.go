package request

// BookListing is published to the booking queue. UserID and GuestEmail come
// from the session, never from the body.
type BookListing struct {
	ListingID    string  `json:"listing_id" validate:"required"`
	ListingTitle string  `json:"listing_title" validate:"required"`
	HostID       string  `json:"host_id" validate:"required"`
	UserID       string  `json:"user_id"`
	GuestName    string  `json:"guest_name" validate:"required"`
	GuestEmail   string  `json:"guest_email"`
	CheckIn      string  `json:"check_in" validate:"required"`
	CheckOut     string  `json:"check_out" validate:"required"`
	Adults       int     `json:"adults" validate:"min=1"`
	Children     int     `json:"children" validate:"min=0"`
	Infants      int     `json:"infants" validate:"min=0"`
	Pets         int     `json:"pets" validate:"min=0"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Discount     float64 `json:"discount" validate:"min=0"`
	CouponUsed   string  `json:"coupon_used"`
	// PaymentStatus is "paid" when checkout captured the payment up front.
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=pending paid"`
}

type Decision struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
}

func (d Decision) Approve() bool {
	return d.Decision == "approve"
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}

type OutboxDispatch struct {
	OutboxID string `json:"outbox_id" validate:"required"`
}

type MarkRead struct {
	UserID string   `json:"user_id" validate:"required"`
	IDs    []string `json:"ids" validate:"required,min=1"`
}
