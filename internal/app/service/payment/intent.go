package payment

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"gorm.io/datatypes"

	"github.com/gauswarn/storefront/internal/models"
	"github.com/gauswarn/storefront/internal/platform/razorpay"
	"github.com/gauswarn/storefront/pkg/logctx"
	"github.com/gauswarn/storefront/pkg/metrics"
	types "github.com/gauswarn/storefront/pkg/types"
)

const confirmationTokenTTL = 15 * time.Minute

// Initiate validates the checkout input, persists a pending row, creates the
// provider order and issues the confirmation token. If the provider call
// fails after the insert, the row is deliberately left in "pending": no
// funds have moved, so there is no compensating delete.
func (s *Service) Initiate(ctx context.Context, in *CheckoutInput) (res *InitiateResult, err error) {
	start := time.Now()
	defer func() { s.observe("initiate", metrics.MillisecondsSince(start)) }()

	if err := validateCheckoutInput(in); err != nil {
		return nil, err
	}

	log := logctx.FromCtx(ctx, s.log)
	amountPaise := int64(math.Round(in.TotalAmount * 100))

	now := time.Now()
	cart := in.Cart
	if cart == nil {
		cart = []types.CartItem{}
	}
	row := &models.PendingPayment{
		Name:            in.Name,
		Mobile:          in.Mobile,
		Email:           in.Email,
		State:           in.State,
		City:            in.City,
		Country:         in.Country,
		HouseNumber:     in.HouseNumber,
		Landmark:        in.Landmark,
		Pincode:         in.Pincode,
		TotalAmount:     in.TotalAmount,
		PurchasePrice:   in.PurchasePrice,
		ProductQuantity: in.ProductQuantity,
		Date:            now.Format("2006-01-02"),
		Time:            now.Format("15:04:05"),
		Status:          models.PaymentStatusPending,
		IsPaid:          false,
		PaymentSnapshot: datatypes.JSON("{}"),
		CartSnapshot:    datatypes.NewJSONType(cart),
	}
	if err := s.rows.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to save pending payment: %w", err)
	}

	// Provider-agnostic placeholder used as the receipt reference.
	receipt := fmt.Sprintf("TEMP_%d", now.UnixMilli())

	order, err := s.provider.CreateOrder(ctx, &razorpay.CreateOrderRequest{
		Amount:   amountPaise,
		Currency: "INR",
		Receipt:  receipt,
		Notes: map[string]string{
			"userId":          strconv.FormatInt(row.ID, 10),
			"user_name":       in.Name,
			"user_email":      in.Email,
			"user_mobile_num": in.Mobile,
		},
	})
	if err != nil {
		log.Errorw("provider order create failed", "row_id", row.ID, "error", err.Error())
		return nil, fmt.Errorf("payment initiation failed: %w", err)
	}

	token, err := s.confirmationToken(row.ID, amountPaise, in.Name, in.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign confirmation token: %w", err)
	}

	log.Infow("payment initiated", "row_id", row.ID, "provider_order_id", order.ID, "amount", in.TotalAmount)

	return &InitiateResult{
		OrderID:           order.ID,
		Order:             order,
		ConfirmationToken: token,
		Timestamp:         now.Format("January 2 2006, 3:04:05 PM"),
	}, nil
}

// confirmationToken binds the local row to the amount and contact fields so
// the client can carry correlation data. It is never accepted as proof of
// payment.
func (s *Service) confirmationToken(rowID, amountPaise int64, name, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId":     rowID,
		"amount":     amountPaise,
		"user_name":  name,
		"user_email": email,
		"exp":        time.Now().Add(confirmationTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Auth.JWTSecret))
}
