package entity

import (
	"database/sql"
	"time"
)

// Booking is the slice of a booking the calendar needs.
type Booking struct {
	ID           string       `db:"id"`
	GuestName    string       `db:"guest_name"`
	ListingTitle string       `db:"listing_title"`
	CheckIn      sql.NullTime `db:"check_in"`
	CheckOut     sql.NullTime `db:"check_out"`
	Price        float64      `db:"price"`
	FinalPrice   float64      `db:"final_price"`
	Status       string       `db:"status"`
}

func (b Booking) Amount() float64 {
	if b.FinalPrice > 0 {
		return b.FinalPrice
	}
	return b.Price
}

// Calendar is the aggregated view of one month. Occupancy covers every day
// key a booking touches, including days outside the displayed month.
type Calendar struct {
	Year         int
	Month        time.Month
	Occupancy    map[string][]Booking
	CheckIns     map[string]int
	CheckOuts    map[string]int
	Revenue      map[string]float64
	RawRevenue   float64
	Withdrawn    float64
	MonthRevenue float64
}
