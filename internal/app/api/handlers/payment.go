package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gauswarn/storefront/internal/app/service/payment"
	"github.com/gauswarn/storefront/internal/platform/razorpay"
	"github.com/gauswarn/storefront/pkg/response"
)

// checkoutResponse is flat on purpose: payment widget integrations read the
// provider fields straight off the top level.
type checkoutResponse struct {
	Success         bool            `json:"success"`
	Message         string          `json:"message"`
	RazorpayOrderID string          `json:"razorpay_order_id"`
	RazorpayOrder   *razorpay.Order `json:"razorpay_order"`
	Token           string          `json:"token"`
	Timestamp       string          `json:"timestamp"`
}

// verifyPaymentRequest mirrors the provider's checkout callback: the signed
// triple under rzpResponse, correlation notes beside it.
type verifyPaymentRequest struct {
	RzpResponse struct {
		OrderID   string `json:"razorpay_order_id"`
		PaymentID string `json:"razorpay_payment_id"`
		Signature string `json:"razorpay_signature"`
	} `json:"rzpResponse"`
	Notes payment.CallbackNotes `json:"notes"`
}

type verifyPaymentResponse struct {
	Success         bool    `json:"success"`
	Message         string  `json:"message"`
	PaymentStatus   string  `json:"payment_status,omitempty"`
	ShopmozoOrderID *string `json:"shopmozo_order_id,omitempty"`
}

// @Summary      Create Payment Intent
// @Description  Validates checkout details, records a pending payment and creates the provider order.
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        request body payment.CheckoutInput true "Checkout form with customer, amount and optional cart"
// @Success      200  {object}  handlers.checkoutResponse
// @Router       /api/v1/payment/initiate [post]
func ApiCreatePaymentIntent(mgr payment.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req payment.CheckoutInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
			return
		}

		res, err := mgr.Initiate(c.Request.Context(), &req)
		if err != nil {
			var verr *payment.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, response.Fail(verr.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, response.Fail("payment initiation failed"))
			return
		}

		c.JSON(http.StatusOK, checkoutResponse{
			Success:         true,
			Message:         "Order created successfully",
			RazorpayOrderID: res.OrderID,
			RazorpayOrder:   res.Order,
			Token:           res.ConfirmationToken,
			Timestamp:       res.Timestamp,
		})
	}
}

// @Summary      Verify Payment
// @Description  Authenticates the provider callback signature, reconciles the order and triggers fulfillment.
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        request body handlers.verifyPaymentRequest true "Provider callback payload with correlation notes"
// @Success      200  {object}  handlers.verifyPaymentResponse
// @Router       /api/v1/payment/verify [post]
func ApiVerifyPayment(mgr payment.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req verifyPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
			return
		}

		in := &payment.VerifyInput{
			OrderID:   req.RzpResponse.OrderID,
			PaymentID: req.RzpResponse.PaymentID,
			Signature: req.RzpResponse.Signature,
			Notes:     req.Notes,
		}
		res, err := mgr.Verify(c.Request.Context(), in)
		switch {
		case errors.Is(err, payment.ErrMissingParams):
			c.JSON(http.StatusBadRequest, response.Fail("missing razorpay params"))
			return
		case errors.Is(err, payment.ErrInvalidSignature):
			c.JSON(http.StatusBadRequest, response.Fail("invalid signature"))
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, response.Fail("payment verification failed"))
			return
		}

		msg := "Payment verified successfully"
		if !res.Paid {
			msg = "Payment not captured"
		}
		c.JSON(http.StatusOK, verifyPaymentResponse{
			Success:         res.Paid,
			Message:         msg,
			PaymentStatus:   res.PaymentStatus,
			ShopmozoOrderID: res.ShippingOrderID,
		})
	}
}

// @Summary      Payment Status
// @Description  Reads the authoritative payment status from the provider.
// @Tags         Payment
// @Produce      json
// @Param        payment_id path string true "Provider payment id"
// @Success      200  {object}  handlers.RespPaymentStatus
// @Router       /api/v1/payment/status/{payment_id} [get]
func ApiPaymentStatus(mgr payment.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		paymentID := c.Param("payment_id")
		if paymentID == "" {
			c.JSON(http.StatusBadRequest, response.Fail("missing payment_id"))
			return
		}

		res, err := mgr.Status(c.Request.Context(), paymentID)
		if err != nil {
			if errors.Is(err, payment.ErrPaymentNotFound) {
				c.JSON(http.StatusNotFound, response.Fail("payment not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, response.Fail("payment status lookup failed"))
			return
		}
		c.JSON(http.StatusOK, response.OK("ok", res))
	}
}

func RegisterPaymentRoutes(r gin.IRouter, mgr payment.Manager) {
	r.POST("/initiate", ApiCreatePaymentIntent(mgr))
	r.POST("/verify", ApiVerifyPayment(mgr))
	r.GET("/status/:payment_id", ApiPaymentStatus(mgr))
}
