package response

type Payout struct {
	ID        string  `json:"id"`
	HostUID   string  `json:"hostUid"`
	Email     string  `json:"email"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	BatchID   string  `json:"batchId"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
}

// Withdraw is written as-is rather than through the shared envelope.
type Withdraw struct {
	Success bool   `json:"success"`
	Payout  Payout `json:"payout"`
}
