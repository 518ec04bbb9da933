package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/gauswarn/storefront/internal/app/service/payment"
	"github.com/gauswarn/storefront/internal/platform/razorpay"
)

type stubPaymentMgr struct {
	initiateErr error
	verifyErr   error
	verifyRes   *payment.VerifyResult
	statusErr   error
}

func (s *stubPaymentMgr) Initiate(_ context.Context, in *payment.CheckoutInput) (*payment.InitiateResult, error) {
	if s.initiateErr != nil {
		return nil, s.initiateErr
	}
	return &payment.InitiateResult{
		OrderID:           "order_test1",
		Order:             &razorpay.Order{ID: "order_test1", Amount: 150000, Currency: "INR"},
		ConfirmationToken: "tok",
		Timestamp:         "August 29 2026, 9:00:00 AM",
	}, nil
}

func (s *stubPaymentMgr) Verify(_ context.Context, in *payment.VerifyInput) (*payment.VerifyResult, error) {
	if s.verifyErr != nil {
		return nil, s.verifyErr
	}
	return s.verifyRes, nil
}

func (s *stubPaymentMgr) Status(_ context.Context, _ string) (*payment.StatusResult, error) {
	if s.statusErr != nil {
		return nil, s.statusErr
	}
	return &payment.StatusResult{PaymentStatus: "captured", Amount: 1500, OrderID: "order_test1", Captured: true}, nil
}

func paymentRouter(mgr payment.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterPaymentRoutes(r.Group("/api/v1/payment"), mgr)
	return r
}

func TestApiCreatePaymentIntent_ReturnsFlatProviderFields(t *testing.T) {
	r := paymentRouter(&stubPaymentMgr{})

	body, _ := json.Marshal(map[string]any{"user_name": "Asha", "user_total_amount": 1500})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payment/initiate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Equal(t, true, out["success"])
	require.Equal(t, "order_test1", out["razorpay_order_id"])
	require.Equal(t, "tok", out["token"])
	require.NotEmpty(t, out["razorpay_order"])
	require.NotEmpty(t, out["timestamp"])
}

func TestApiCreatePaymentIntent_ValidationErrorIs400(t *testing.T) {
	mgr := &stubPaymentMgr{initiateErr: payment.NewValidationError("missing required field: user_email")}
	r := paymentRouter(mgr)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payment/initiate", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "missing required field: user_email")
}

func TestApiVerifyPayment_MissingParamsIs400(t *testing.T) {
	r := paymentRouter(&stubPaymentMgr{verifyErr: payment.ErrMissingParams})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payment/verify", bytes.NewReader([]byte(`{"rzpResponse":{},"notes":{}}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "missing razorpay params")
}

func TestApiVerifyPayment_InvalidSignatureIs400(t *testing.T) {
	r := paymentRouter(&stubPaymentMgr{verifyErr: payment.ErrInvalidSignature})

	body := []byte(`{"rzpResponse":{"razorpay_order_id":"order_test1","razorpay_payment_id":"pay_1","razorpay_signature":"bad"},"notes":{"userId":"7"}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payment/verify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid signature")
}

func TestApiVerifyPayment_CapturedPayment(t *testing.T) {
	smz := "SMZ123"
	r := paymentRouter(&stubPaymentMgr{verifyRes: &payment.VerifyResult{Paid: true, PaymentStatus: "captured", ShippingOrderID: &smz}})

	body := []byte(`{"rzpResponse":{"razorpay_order_id":"order_test1","razorpay_payment_id":"pay_1","razorpay_signature":"sig"},"notes":{"userId":"7","user_mobile_num":"9876543210"}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payment/verify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var out verifyPaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.True(t, out.Success)
	require.Equal(t, "captured", out.PaymentStatus)
	require.NotNil(t, out.ShopmozoOrderID)
	require.Equal(t, "SMZ123", *out.ShopmozoOrderID)
}

func TestApiPaymentStatus_NotFoundIs404(t *testing.T) {
	r := paymentRouter(&stubPaymentMgr{statusErr: payment.ErrPaymentNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payment/status/pay_missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterPaymentRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/api/v1/payment")
	RegisterPaymentRoutes(g, nil)

	routes := r.Routes()
	contains := func(target string) bool {
		for _, rt := range routes {
			if rt.Method+" "+rt.Path == target {
				return true
			}
		}
		return false
	}

	require.True(t, contains("POST /api/v1/payment/initiate"))
	require.True(t, contains("POST /api/v1/payment/verify"))
	require.True(t, contains("GET /api/v1/payment/status/:payment_id"))
}
