package pricing

import (
	"fmt"
	"time"

	"clothshare-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// weeklyDiscountMinDays is the rental length at which the weekly discount
// starts to apply.
const weeklyDiscountMinDays = 7

// Quote is the deterministic output of Calculate for one rental request.
// Totals are not rounded here; callers round for currency display only.
type Quote struct {
	Days            int32   `json:"days"`
	Subtotal        float64 `json:"subtotal"`
	DiscountApplied bool    `json:"discount_applied"`
	Total           float64 `json:"total"`
}

// ParseDate converts a yyyy-mm-dd formatted string into a calendar date.
func ParseDate(dateStr string) (time.Time, error) {
	d, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd: %w", dateStr, err)
	}
	return d, nil
}

// DaysInclusive returns the day count of a rental spanning start through end,
// counting both endpoints. A same-day rental is one day.
func DaysInclusive(start, end time.Time) int32 {
	return int32(end.Sub(start).Hours()/24) + 1
}

// Calculate computes the total rental cost from the item's daily rate and an
// optional weekly discount. Pure function: identical inputs always yield
// identical output and nothing is mutated.
func Calculate(start, end time.Time, dailyRate float64, weeklyDiscountPercent int32) (Quote, error) {
	if dailyRate <= 0 {
		return Quote{}, fmt.Errorf("daily rate must be positive, got %v", dailyRate)
	}
	if weeklyDiscountPercent < 0 || weeklyDiscountPercent > 100 {
		return Quote{}, fmt.Errorf("weekly discount must be between 0 and 100, got %d", weeklyDiscountPercent)
	}

	days := DaysInclusive(start, end)
	if days < 1 {
		return Quote{}, domain.ErrInvalidDateRange
	}

	subtotal := float64(days) * dailyRate
	q := Quote{
		Days:     days,
		Subtotal: subtotal,
		Total:    subtotal,
	}
	if days >= weeklyDiscountMinDays && weeklyDiscountPercent > 0 {
		q.DiscountApplied = true
		q.Total = subtotal * (1 - float64(weeklyDiscountPercent)/100)
	}
	return q, nil
}

// CalculateStrings is Calculate over yyyy-mm-dd date strings.
func CalculateStrings(startDate, endDate string, dailyRate float64, weeklyDiscountPercent int32) (Quote, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return Quote{}, domain.ErrInvalidDateRange
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return Quote{}, domain.ErrInvalidDateRange
	}
	return Calculate(start, end, dailyRate, weeklyDiscountPercent)
}
