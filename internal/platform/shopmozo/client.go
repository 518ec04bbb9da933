package shopmozo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	cfgpkg "github.com/gauswarn/storefront/pkg/config"
)

const (
	defaultBaseURL = "https://shipping-api.com/app/api/v1"
	// Carrier calls are bounded so a slow shipping API cannot stall
	// payment confirmation.
	requestTimeout = 10 * time.Second
)

// ProductDetail is one shippable line item in the push-order payload.
type ProductDetail struct {
	Name            string  `json:"name"`
	SKUNumber       string  `json:"sku_number"`
	Quantity        int     `json:"quantity"`
	Discount        string  `json:"discount"`
	HSN             string  `json:"hsn"`
	UnitPrice       float64 `json:"unit_price"`
	ProductCategory string  `json:"product_category"`
}

// PushOrderRequest is the carrier's order payload: consignee contact and
// address, line items, fixed parcel dimensions and a warehouse reference.
type PushOrderRequest struct {
	OrderID              string          `json:"order_id"`
	OrderDate            string          `json:"order_date"`
	OrderType            string          `json:"order_type"`
	ConsigneeName        string          `json:"consignee_name"`
	ConsigneePhone       string          `json:"consignee_phone"`
	ConsigneeEmail       string          `json:"consignee_email"`
	ConsigneeAddressOne  string          `json:"consignee_address_line_one"`
	ConsigneeAddressTwo  string          `json:"consignee_address_line_two"`
	ConsigneePinCode     string          `json:"consignee_pin_code"`
	ConsigneeCity        string          `json:"consignee_city"`
	ConsigneeState       string          `json:"consignee_state"`
	ProductDetail        []ProductDetail `json:"product_detail"`
	PaymentType          string          `json:"payment_type"`
	CODAmount            string          `json:"cod_amount"`
	ShippingCharges      string          `json:"shipping_charges"`
	Weight               int             `json:"weight"`
	Length               int             `json:"length"`
	Width                int             `json:"width"`
	Height               int             `json:"height"`
	WarehouseID          string          `json:"warehouse_id"`
	GSTEwaybillNumber    string          `json:"gst_ewaybill_number"`
	GSTINNumber          string          `json:"gstin_number"`
}

type pushOrderResponse struct {
	Result  string `json:"result"`
	Message string `json:"message"`
	Data    struct {
		OrderID string `json:"order_id"`
	} `json:"data"`
}

// Client pushes fulfillment orders to the Shopmozo shipping API. Auth is a
// public/private key header pair.
type Client struct {
	publicKey  string
	privateKey string
	baseURL    string
	http       *http.Client
}

func NewClient(cfg *cfgpkg.Config) *Client {
	baseURL := cfg.Shopmozo.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		publicKey:  cfg.Shopmozo.PublicKey,
		privateKey: cfg.Shopmozo.PrivateKey,
		baseURL:    baseURL,
		http:       &http.Client{Timeout: requestTimeout},
	}
}

// PushOrder submits the order and returns the carrier-assigned identifier.
// A provider-side rejection (result != "1") is an error; the caller decides
// the fallback.
func (c *Client) PushOrder(ctx context.Context, req *PushOrderRequest) (string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/push-order", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("private-key", c.privateKey)
	httpReq.Header.Set("public-key", c.publicKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	var out pushOrderResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("malformed response: %w", err)
	}
	if out.Result != "1" {
		return "", fmt.Errorf("rejected: %s", out.Message)
	}
	if out.Data.OrderID == "" {
		return "", errors.New("rejected: empty order id")
	}
	return out.Data.OrderID, nil
}
