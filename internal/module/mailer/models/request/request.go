package request

type Verification struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required"`
}

// BookingEmail is the body of both the receipt and the cancellation relay.
type BookingEmail struct {
	Email        string  `json:"email" validate:"required,email"`
	FullName     string  `json:"fullName" validate:"required"`
	ListingTitle string  `json:"listingTitle" validate:"required"`
	CheckIn      string  `json:"checkIn" validate:"required"`
	CheckOut     string  `json:"checkOut" validate:"required"`
	Guests       int     `json:"guests"`
	Price        float64 `json:"price"`
}
