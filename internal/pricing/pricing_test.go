package pricing

import (
	"testing"

	"clothshare-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("Valid date", func(t *testing.T) {
		d, err := ParseDate("2024-01-15")
		assert.NoError(t, err)
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, 1, int(d.Month()))
		assert.Equal(t, 15, d.Day())
	})

	t.Run("Invalid format", func(t *testing.T) {
		_, err := ParseDate("2024/01/15")
		assert.Error(t, err)
	})

	t.Run("Invalid day", func(t *testing.T) {
		_, err := ParseDate("2024-02-30")
		assert.Error(t, err)
	})
}

func TestDaysInclusive(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected int32
	}{
		{"Same day", "2024-01-01", "2024-01-01", 1},
		{"Full week", "2024-01-01", "2024-01-07", 7},
		{"Across month boundary", "2024-01-30", "2024-02-02", 4},
		{"Across leap day", "2024-02-28", "2024-03-01", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := ParseDate(tt.start)
			assert.NoError(t, err)
			end, err := ParseDate(tt.end)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, DaysInclusive(start, end))
		})
	}
}

func TestCalculate(t *testing.T) {
	t.Run("No discount below seven days", func(t *testing.T) {
		q, err := CalculateStrings("2024-01-01", "2024-01-06", 100, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(6), q.Days)
		assert.Equal(t, float64(600), q.Subtotal)
		assert.False(t, q.DiscountApplied)
		assert.Equal(t, float64(600), q.Total)
	})

	t.Run("Discount at seven days", func(t *testing.T) {
		q, err := CalculateStrings("2024-01-01", "2024-01-07", 100, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), q.Days)
		assert.Equal(t, float64(700), q.Subtotal)
		assert.True(t, q.DiscountApplied)
		assert.Equal(t, float64(560), q.Total)
	})

	t.Run("Zero discount never applies", func(t *testing.T) {
		q, err := CalculateStrings("2024-01-01", "2024-01-10", 50, 0)
		assert.NoError(t, err)
		assert.False(t, q.DiscountApplied)
		assert.Equal(t, q.Subtotal, q.Total)
	})

	t.Run("End before start rejected", func(t *testing.T) {
		_, err := CalculateStrings("2024-01-10", "2024-01-05", 100, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	})

	t.Run("Unparseable dates rejected", func(t *testing.T) {
		_, err := CalculateStrings("not-a-date", "2024-01-05", 100, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	})

	t.Run("Non-positive rate rejected", func(t *testing.T) {
		_, err := CalculateStrings("2024-01-01", "2024-01-02", 0, 0)
		assert.Error(t, err)
	})

	t.Run("Out of range discount rejected", func(t *testing.T) {
		_, err := CalculateStrings("2024-01-01", "2024-01-02", 100, 101)
		assert.Error(t, err)
	})

	t.Run("Deterministic", func(t *testing.T) {
		q1, err := CalculateStrings("2024-03-01", "2024-03-15", 42.5, 15)
		assert.NoError(t, err)
		q2, err := CalculateStrings("2024-03-01", "2024-03-15", 42.5, 15)
		assert.NoError(t, err)
		assert.Equal(t, q1, q2)
	})
}
