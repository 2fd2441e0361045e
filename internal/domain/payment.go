package domain

// PaymentOrder is an order created at the hosted payment gateway. The
// backend never verifies payment authenticity itself; the gateway's id is
// carried back to rental creation as an opaque reference.
type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // smallest currency unit
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}
