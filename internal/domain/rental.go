package domain

import "time"

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusConfirmed RentalStatus = "confirmed"
	RentalStatusRejected  RentalStatus = "rejected"
	RentalStatusCompleted RentalStatus = "completed"
)

// IsTerminal reports whether no further transition is permitted.
func (s RentalStatus) IsTerminal() bool {
	return s == RentalStatusRejected || s == RentalStatusCompleted
}

type Rental struct {
	ID       int32 `json:"id"`
	ItemID   int32 `json:"item_id"`
	RenterID int32 `json:"renter_id"`
	OwnerID  int32 `json:"owner_id"`
	// Dates are calendar dates in yyyy-mm-dd form; the day count includes
	// both endpoints.
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	TotalDays int32  `json:"total_days"`
	// Price snapshot fields, copied from the item at request time. Later
	// edits to the item never change an existing rental's cost.
	DailyRate     float64      `json:"daily_rate"`
	TotalAmount   float64      `json:"total_amount"`
	DepositAmount float64      `json:"deposit_amount"`
	PaymentRef    string       `json:"payment_ref,omitempty"`
	Status        RentalStatus `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`

	// Display fields joined in by list queries.
	ItemTitle  string   `json:"item_title,omitempty"`
	ItemImages []string `json:"item_images,omitempty"`
	OwnerName  string   `json:"owner_name,omitempty"`
	RenterName string   `json:"renter_name,omitempty"`
}
