package domain

import "time"

type Review struct {
	ID         int32     `json:"id"`
	RentalID   int32     `json:"rental_id"`
	ReviewerID int32     `json:"reviewer_id"`
	RevieweeID int32     `json:"reviewee_id"`
	ItemID     int32     `json:"item_id"`
	Rating     int32     `json:"rating"` // 1-5
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	// Display fields joined in by list queries.
	ReviewerName   string `json:"reviewer_name,omitempty"`
	ReviewerAvatar string `json:"reviewer_avatar,omitempty"`
}
