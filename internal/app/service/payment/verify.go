package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/datatypes"

	"github.com/gauswarn/storefront/internal/models"
	"github.com/gauswarn/storefront/pkg/logctx"
	"github.com/gauswarn/storefront/pkg/metrics"
)

// Verify authenticates a provider callback and reconciles local order state.
// Order of operations is fixed: signature check, authoritative status fetch,
// shipping (conditional), row update, notification (conditional). The
// signature is the sole authentication boundary; nothing is written before
// it passes.
func (s *Service) Verify(ctx context.Context, in *VerifyInput) (res *VerifyResult, resErr error) {
	start := time.Now()
	defer func() { s.observe("verify", metrics.MillisecondsSince(start)) }()

	log := logctx.FromCtx(ctx, s.log)

	if in.OrderID == "" || in.PaymentID == "" || in.Signature == "" {
		return nil, ErrMissingParams
	}

	if !s.provider.VerifySignature(in.OrderID, in.PaymentID, in.Signature) {
		// Logged apart from plain validation errors: a bad signature on a
		// well-formed callback may be a tampering attempt.
		log.Errorw("payment signature mismatch", "provider_order_id", in.OrderID, "provider_payment_id", in.PaymentID)
		return nil, ErrInvalidSignature
	}

	s.logCallback(ctx, in, models.PaymentCallbackLogStatusReceived, nil)
	defer func() { s.logCallbackResult(ctx, in, res, resErr) }()

	// Never trust a client-supplied status field.
	pay, err := s.provider.FetchPayment(ctx, in.PaymentID)
	if err != nil {
		log.Errorw("provider payment fetch failed", "provider_payment_id", in.PaymentID, "error", err.Error())
		return nil, fmt.Errorf("verification failed: %w", err)
	}
	isPaid := pay.Status == models.PaymentStatusCaptured

	rowID, err := strconv.ParseInt(in.Notes.RowID, 10, 64)
	if err != nil {
		// Notes are produced by our own initiate call; a missing row id is
		// an integration bug upstream, not an attack.
		return nil, fmt.Errorf("verification failed: bad notes row id %q", in.Notes.RowID)
	}

	var shippingID *string
	if isPaid {
		row, err := s.rows.Load(ctx, rowID)
		if err != nil {
			return nil, fmt.Errorf("verification failed: load pending payment %d: %w", rowID, err)
		}
		if row.IsPaid && row.HasShippingOrder() {
			// Replayed callback for an already reconciled payment: keep the
			// original shipping order, send nothing twice.
			shippingID = row.ShippingOrderID
			log.Infow("replay detected, reusing shipping order", "row_id", rowID, "shopmozo_order_id", *shippingID)
			return &VerifyResult{Paid: true, PaymentStatus: pay.Status, ShippingOrderID: shippingID}, nil
		}

		id := s.shipping.CreateOrder(ctx, row.Customer(), row.CartSnapshot.Data(), time.Now().Format("2006-01-02"))
		shippingID = &id
	}

	snapshot, _ := json.Marshal(pay)
	updates := map[string]any{
		"status":              pay.Status,
		"payment_details":     datatypes.JSON(snapshot),
		"is_payment_paid":     isPaid,
		"razorpay_payment_id": in.PaymentID,
		"shopmozo_order_id":   shippingID,
	}
	if err := s.rows.Update(ctx, rowID, updates); err != nil {
		return nil, fmt.Errorf("verification failed: update pending payment %d: %w", rowID, err)
	}

	if isPaid && in.Notes.Mobile != "" && shippingID != nil {
		s.notifier.OrderConfirmed(ctx, in.Notes.Mobile, *shippingID, float64(pay.Amount)/100)
	}

	log.Infow("payment verified", "row_id", rowID, "status", pay.Status, "paid", isPaid)

	return &VerifyResult{Paid: isPaid, PaymentStatus: pay.Status, ShippingOrderID: shippingID}, nil
}

// Status is a read-only passthrough to the provider.
func (s *Service) Status(ctx context.Context, paymentID string) (*StatusResult, error) {
	pay, err := s.provider.FetchPayment(ctx, paymentID)
	if err != nil {
		logctx.FromCtx(ctx, s.log).Warnw("payment status check failed", "provider_payment_id", paymentID, "error", err.Error())
		return nil, errors.Join(ErrPaymentNotFound, err)
	}
	return &StatusResult{
		PaymentStatus: pay.Status,
		Amount:        float64(pay.Amount) / 100,
		OrderID:       pay.OrderID,
		Captured:      pay.Captured,
	}, nil
}

func (s *Service) logCallback(ctx context.Context, in *VerifyInput, status models.PaymentCallbackLogStatus, result *datatypes.JSON) {
	var traceID string
	if v, ok := ctx.Value("traceID").(string); ok {
		traceID = v
	}
	data, _ := json.Marshal(in)
	s.events.Save(ctx, &models.PaymentCallbackLog{
		ProviderOrderID:   in.OrderID,
		ProviderPaymentID: in.PaymentID,
		TraceID:           traceID,
		ReceivedAt:        time.Now(),
		Data:              datatypes.JSON(data),
		Result:            result,
		Status:            status,
	})
}

func (s *Service) logCallbackResult(ctx context.Context, in *VerifyInput, res *VerifyResult, resErr error) {
	resMap := map[string]any{"result": res}
	status := models.PaymentCallbackLogStatusHandled
	if resErr != nil {
		resMap["error"] = resErr.Error()
		status = models.PaymentCallbackLogStatusHandleFailed
	}
	resBytes, _ := json.Marshal(resMap)
	result := datatypes.JSON(resBytes)
	s.logCallback(ctx, in, status, &result)
}
