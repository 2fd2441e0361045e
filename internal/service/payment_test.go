package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		var gotBody createOrderRequest
		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/orders", r.URL.Path)
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "key_id", user)
			assert.Equal(t, "key_secret", pass)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			json.NewEncoder(w).Encode(createOrderResponse{
				ID:       "order_abc123",
				Amount:   gotBody.Amount,
				Currency: gotBody.Currency,
				Receipt:  gotBody.Receipt,
				Status:   "created",
			})
		}))
		defer gateway.Close()

		svc := NewPaymentService(gateway.URL, "key_id", "key_secret", "INR")
		order, err := svc.CreateOrder(ctx, 560.50)
		assert.NoError(t, err)
		assert.Equal(t, "order_abc123", order.ID)
		// Amount converts to the smallest currency unit at the boundary.
		assert.Equal(t, int64(56050), order.Amount)
		assert.Equal(t, "INR", order.Currency)
		assert.Equal(t, "created", order.Status)
	})

	t.Run("GatewayError", func(t *testing.T) {
		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":{"description":"Authentication failed"}}`, http.StatusUnauthorized)
		}))
		defer gateway.Close()

		svc := NewPaymentService(gateway.URL, "key_id", "bad_secret", "INR")
		_, err := svc.CreateOrder(ctx, 100)
		assert.Error(t, err)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		svc := NewPaymentService("http://unused", "key_id", "key_secret", "INR")
		_, err := svc.CreateOrder(ctx, 0)
		assert.Error(t, err)
	})

	t.Run("MissingCredentials", func(t *testing.T) {
		svc := NewPaymentService("http://unused", "", "", "INR")
		_, err := svc.CreateOrder(ctx, 100)
		assert.Error(t, err)
	})
}
