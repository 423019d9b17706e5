// Package payment wraps the Razorpay orders API. Amounts cross this
// boundary in minor units; everything above it works in rupees.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
)

type Order struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Notes    map[string]string `json:"notes"`
}

type Gateway interface {
	CreateOrder(ctx context.Context, amount float64, notes map[string]string) (*Order, error)
}

type razorpay struct {
	KeyID      string
	KeySecret  string
	URL        string
	HTTPClient http.Client
}

func NewGateway(keyID, keySecret, url string) Gateway {
	return &razorpay{
		KeyID:     keyID,
		KeySecret: keySecret,
		URL:       fmt.Sprintf("%s/orders", url),
	}
}

// MinorUnits converts a rupee amount to paise the way the gateway expects,
// rounding to the nearest whole paisa.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (r *razorpay) CreateOrder(ctx context.Context, amount float64, notes map[string]string) (*Order, error) {
	body := map[string]interface{}{
		"amount":   MinorUnits(amount),
		"currency": "INR",
		"notes":    notes,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("createOrder: error marshalling order body: %w", err)
	}

	statusCode, order, err := r.post(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("createOrder: error creating order: status code: %d: err: %w", statusCode, err)
	}
	return order, nil
}

func (r *razorpay) post(ctx context.Context, payload []byte) (int, *Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.URL, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}

	req.SetBasicAuth(r.KeyID, r.KeySecret)
	req.Header.Set("Content-Type", "application/json")

	res, err := r.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		bodyBytes, err := io.ReadAll(res.Body)
		if err != nil {
			return res.StatusCode, nil, fmt.Errorf("post: error reading order body: %w", err)
		}

		var order Order
		if err := json.Unmarshal(bodyBytes, &order); err != nil {
			return res.StatusCode, nil, fmt.Errorf("post: error unmarshalling order body: %w", err)
		}
		return res.StatusCode, &order, nil
	}

	return res.StatusCode, nil, fmt.Errorf("post: gateway rejected order request")
}
