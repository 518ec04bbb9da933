package payment

import (
	"context"
	"errors"

	"github.com/gauswarn/storefront/internal/platform/razorpay"
	"github.com/gauswarn/storefront/internal/platform/shopmozo"
	types "github.com/gauswarn/storefront/pkg/types"
)

var (
	ErrMissingParams    = errors.New("missing razorpay params")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrPaymentNotFound  = errors.New("payment not found")
)

// CheckoutInput is the client-supplied checkout form. The cart is optional;
// when present it is frozen into the pending row verbatim.
type CheckoutInput struct {
	Name        string `json:"user_name" validate:"required"`
	Mobile      string `json:"user_mobile_num" validate:"required"`
	Email       string `json:"user_email" validate:"required"`
	State       string `json:"user_state" validate:"required"`
	City        string `json:"user_city" validate:"required"`
	Country     string `json:"user_country" validate:"required"`
	HouseNumber string `json:"user_house_number" validate:"required"`
	Landmark    string `json:"user_landmark" validate:"required"`
	Pincode     string `json:"user_pincode" validate:"required"`

	TotalAmount     float64 `json:"user_total_amount" validate:"required"`
	PurchasePrice   float64 `json:"purchase_price" validate:"required"`
	ProductQuantity int     `json:"product_quantity" validate:"required"`

	Cart []types.CartItem `json:"cart"`
}

// InitiateResult carries everything the client needs to complete payment.
type InitiateResult struct {
	OrderID           string          `json:"razorpay_order_id"`
	Order             *razorpay.Order `json:"razorpay_order"`
	ConfirmationToken string          `json:"token"`
	Timestamp         string          `json:"timestamp"`
}

// CallbackNotes is the notes payload echoed back by the provider. It
// correlates the callback to the local row without a second lookup. A
// missing row id is an integration bug, not a security failure; the
// signature is the authentication boundary.
type CallbackNotes struct {
	RowID  string `json:"userId"`
	Name   string `json:"user_name"`
	Email  string `json:"user_email"`
	Mobile string `json:"user_mobile_num"`
}

// VerifyInput is the provider callback relayed by the client.
type VerifyInput struct {
	OrderID   string        `json:"razorpay_order_id"`
	PaymentID string        `json:"razorpay_payment_id"`
	Signature string        `json:"razorpay_signature"`
	Notes     CallbackNotes `json:"-"`
}

type VerifyResult struct {
	Paid            bool    `json:"success"`
	PaymentStatus   string  `json:"payment_status"`
	ShippingOrderID *string `json:"shopmozo_order_id"`
}

type StatusResult struct {
	PaymentStatus string  `json:"payment_status"`
	Amount        float64 `json:"amount"` // currency major units
	OrderID       string  `json:"order_id"`
	Captured      bool    `json:"captured"`
}

// Manager is the payment core: intent creation, callback verification and
// the read-only status lookup.
type Manager interface {
	Initiate(ctx context.Context, in *CheckoutInput) (*InitiateResult, error)
	Verify(ctx context.Context, in *VerifyInput) (*VerifyResult, error)
	Status(ctx context.Context, paymentID string) (*StatusResult, error)
}

// ProviderClient is the narrow payment-provider surface the core needs.
type ProviderClient interface {
	CreateOrder(ctx context.Context, req *razorpay.CreateOrderRequest) (*razorpay.Order, error)
	FetchPayment(ctx context.Context, paymentID string) (*razorpay.Payment, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// ShippingClient pushes a fulfillment order to the carrier.
type ShippingClient interface {
	PushOrder(ctx context.Context, req *shopmozo.PushOrderRequest) (string, error)
}

// MessagingClient delivers one outbound customer message.
type MessagingClient interface {
	Send(ctx context.Context, mobile, text string) error
}
