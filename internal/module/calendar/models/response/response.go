package response

type Booking struct {
	ID           string `json:"id"`
	GuestName    string `json:"guest_name"`
	ListingTitle string `json:"listing_title"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
}

type Day struct {
	Date      string    `json:"date"`
	Bookings  []Booking `json:"bookings"`
	CheckIns  int       `json:"check_ins"`
	CheckOuts int       `json:"check_outs"`
	Revenue   float64   `json:"revenue"`
}

// Calendar carries the host's lifetime payouts, not a per-month figure.
type Calendar struct {
	Month             string  `json:"month"`
	Days              []Day   `json:"days"`
	RawRevenue        float64 `json:"raw_revenue"`
	LifetimeWithdrawn float64 `json:"lifetime_withdrawn"`
	MonthRevenue      float64 `json:"month_revenue"`
}
