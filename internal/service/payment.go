package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"clothshare-backend/internal/domain"

	"github.com/google/uuid"
)

// paymentService creates orders at the hosted payment gateway. The gateway's
// order endpoint takes the amount in the smallest currency unit and returns
// an order id the client completes checkout with; the webhook side of the
// flow lives entirely at the gateway.
type paymentService struct {
	baseURL   string
	keyID     string
	keySecret string
	currency  string
	client    *http.Client
}

func NewPaymentService(baseURL, keyID, keySecret, currency string) PaymentService {
	return &paymentService{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		currency:  currency,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

type createOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

func (s *paymentService) CreateOrder(ctx context.Context, amount float64) (*domain.PaymentOrder, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive, got %v", amount)
	}
	if s.keyID == "" || s.keySecret == "" {
		return nil, fmt.Errorf("payment gateway credentials not configured")
	}

	payload := createOrderRequest{
		Amount:   int64(math.Round(amount * 100)),
		Currency: s.currency,
		Receipt:  "receipt_" + uuid.NewString(),
		Notes:    map[string]string{"source": "clothshare"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(s.keyID, s.keySecret)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("payment gateway error: status %d, body: %s", resp.StatusCode, raw)
	}

	var order createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	return &domain.PaymentOrder{
		ID:       order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
		Status:   order.Status,
	}, nil
}
