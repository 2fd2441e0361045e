package domain

import "time"

type ItemStatus string

const (
	ItemStatusAvailable ItemStatus = "available"
	ItemStatusPending   ItemStatus = "pending"
	ItemStatusRented    ItemStatus = "rented"
)

type Item struct {
	ID          int32  `json:"id"`
	OwnerID     int32  `json:"owner_id"`
	Owner       *User  `json:"owner,omitempty"` // Populated when fetching item details
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	Size        string `json:"size,omitempty"`
	Color       string `json:"color,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Condition   string `json:"condition,omitempty"`
	// Daily price is the base rate; the weekly discount applies only to
	// rentals of seven days or longer.
	DailyPrice      float64    `json:"daily_price"`
	SecurityDeposit float64    `json:"security_deposit"`
	WeeklyDiscount  int32      `json:"weekly_discount"` // percent, 0-100
	Images          []string   `json:"images"`
	Status          ItemStatus `json:"status"`
	ViewCount       int32      `json:"view_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
