package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	cfgpkg "github.com/gauswarn/storefront/pkg/config"
)

const defaultBaseURL = "https://api.razorpay.com"

var ErrMissingCredentials = errors.New("razorpay key id and secret are required")

// Order is the provider-created payment intent handed back to the client.
// Notes travel to the provider and are echoed back on the callback.
type Order struct {
	ID         string            `json:"id"`
	Entity     string            `json:"entity"`
	Amount     int64             `json:"amount"`
	AmountPaid int64             `json:"amount_paid"`
	AmountDue  int64             `json:"amount_due"`
	Currency   string            `json:"currency"`
	Receipt    string            `json:"receipt"`
	Status     string            `json:"status"`
	Notes      map[string]string `json:"notes"`
	CreatedAt  int64             `json:"created_at"`
}

// Payment is the authoritative payment object fetched by id; Status
// "captured" is the only terminal success state.
type Payment struct {
	ID        string `json:"id"`
	Entity    string `json:"entity"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	OrderID   string `json:"order_id"`
	Method    string `json:"method"`
	Captured  bool   `json:"captured"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
	CreatedAt int64  `json:"created_at"`
}

type CreateOrderRequest struct {
	Amount   int64             `json:"amount"` // minor units (paise)
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type apiError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// Client is a narrow Razorpay REST client: create order, fetch payment,
// verify callback signature. Auth is HTTP basic with the key pair.
type Client struct {
	keyID     string
	keySecret string
	baseURL   string
	http      *http.Client
	log       *zap.SugaredLogger
}

func NewClient(cfg *cfgpkg.Config, log *zap.SugaredLogger) (*Client, error) {
	if cfg.Razorpay.KeyID == "" || cfg.Razorpay.KeySecret == "" {
		return nil, ErrMissingCredentials
	}
	baseURL := cfg.Razorpay.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		keyID:     cfg.Razorpay.KeyID,
		keySecret: cfg.Razorpay.KeySecret,
		baseURL:   baseURL,
		http:      &http.Client{Timeout: 30 * time.Second},
		log:       log,
	}, nil
}

func (c *Client) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodPost, "/v1/orders", req, &out); err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}
	return &out, nil
}

func (c *Client) FetchPayment(ctx context.Context, paymentID string) (*Payment, error) {
	if paymentID == "" {
		return nil, errors.New("payment id is empty")
	}
	var out Payment
	if err := c.do(ctx, http.MethodGet, "/v1/payments/"+paymentID, nil, &out); err != nil {
		return nil, fmt.Errorf("razorpay fetch payment %s: %w", paymentID, err)
	}
	return &out, nil
}

// VerifySignature checks the callback HMAC-SHA256 over "orderID|paymentID"
// against the supplied hex signature in constant time.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(c.keySecret, orderID, paymentID, signature)
}

// VerifySignature is the raw check, exported for reuse in tests.
func VerifySignature(secret, orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Description != "" {
			return fmt.Errorf("status %d: %s (%s)", resp.StatusCode, apiErr.Error.Description, apiErr.Error.Code)
		}
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}
