package response

type Guests struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
	Pets     int `json:"pets"`
}

type GuestBooking struct {
	ID                     string  `json:"id"`
	ListingID              string  `json:"listing_id"`
	ListingTitle           string  `json:"listing_title"`
	CheckIn                string  `json:"check_in"`
	CheckOut               string  `json:"check_out"`
	Guests                 Guests  `json:"guests"`
	Price                  float64 `json:"price"`
	FinalPrice             float64 `json:"final_price"`
	PaymentStatus          string  `json:"payment_status"`
	Status                 string  `json:"status"`
	CancellationStatus     string  `json:"cancellation_status"`
	State                  string  `json:"state"`
	CanRequestCancellation bool    `json:"can_request_cancellation"`
	// StatusLabel is what the guest sees, e.g. "Awaiting Host Approval".
	StatusLabel string `json:"status_label"`
}

type HostNotification struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	BookingID    string  `json:"booking_id"`
	GuestName    string  `json:"guest_name"`
	GuestEmail   string  `json:"guest_email"`
	ListingTitle string  `json:"listing_title"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	Guests       int     `json:"guests"`
	Price        float64 `json:"price"`
	Read         bool    `json:"read"`
	Processed    bool    `json:"processed"`
	Status       string  `json:"status"`
	Timestamp    string  `json:"timestamp"`
}

type GuestNotification struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	BookingID string `json:"booking_id"`
	Read      bool   `json:"read"`
	Timestamp string `json:"timestamp"`
}

type Decision struct {
	NotificationID string `json:"notification_id"`
	BookingID      string `json:"booking_id"`
	Status         string `json:"status"`
	BookingDeleted bool   `json:"booking_deleted"`
}

type Transaction struct {
	ID           string  `json:"id"`
	BookingID    string  `json:"booking_id"`
	Amount       float64 `json:"amount"`
	ListingTitle string  `json:"listing_title"`
	GuestName    string  `json:"guest_name"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}
