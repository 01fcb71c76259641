package request

type Withdraw struct {
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	Email   string  `json:"email" validate:"required"`
	HostUID string  `json:"hostUid" validate:"required"`
}
