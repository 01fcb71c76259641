package entity

type Address struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// Email is the transactional mail API's send body.
type Email struct {
	Sender      Address   `json:"sender"`
	To          []Address `json:"to"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"htmlContent"`
}
