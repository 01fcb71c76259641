package entity

import "time"

// Payout is an append-only record of money sent to a host.
type Payout struct {
	ID        string    `db:"id"`
	HostUID   string    `db:"host_uid"`
	Email     string    `db:"email"`
	Amount    float64   `db:"amount"`
	Currency  string    `db:"currency"`
	BatchID   string    `db:"batch_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

type PayoutItem struct {
	RecipientType string `json:"recipient_type"`
	Amount        Amount `json:"amount"`
	Receiver      string `json:"receiver"`
	Note          string `json:"note"`
	SenderItemID  string `json:"sender_item_id"`
}

type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type SenderBatchHeader struct {
	SenderBatchID string `json:"sender_batch_id"`
	EmailSubject  string `json:"email_subject"`
	EmailMessage  string `json:"email_message"`
}

// PayoutBatch is the body of a PayPal create-payout call.
type PayoutBatch struct {
	SenderBatchHeader SenderBatchHeader `json:"sender_batch_header"`
	Items             []PayoutItem      `json:"items"`
}

type BatchHeader struct {
	PayoutBatchID string `json:"payout_batch_id"`
	BatchStatus   string `json:"batch_status"`
}

type PayoutResult struct {
	BatchHeader BatchHeader `json:"batch_header"`
}
