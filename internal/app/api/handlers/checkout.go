package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gauswarn/storefront/internal/app/service/checkout"
	"github.com/gauswarn/storefront/internal/models"
	"github.com/gauswarn/storefront/pkg/response"
)

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, response.Fail("invalid "+name))
		return 0, false
	}
	return id, true
}

// @Summary      Save Address
// @Description  Persists a shipping address; marking it default unsets the previous default.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        request body models.Address true "Shipping address"
// @Success      200  {object}  handlers.RespID
// @Router       /api/v1/checkout/address [post]
func ApiSaveAddress(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var addr models.Address
		if err := c.ShouldBindJSON(&addr); err != nil {
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
			return
		}
		if addr.UserID <= 0 {
			c.JSON(http.StatusBadRequest, response.Fail("missing user_id"))
			return
		}
		id, err := svc.SaveAddress(c.Request.Context(), &addr)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Fail("failed to save address"))
			return
		}
		c.JSON(http.StatusOK, response.OK("address saved", gin.H{"id": id}))
	}
}

// @Summary      List Addresses
// @Tags         Checkout
// @Produce      json
// @Param        user_id path int true "User id"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/checkout/address/{user_id} [get]
func ApiListAddresses(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "user_id")
		if !ok {
			return
		}
		rows, err := svc.ListAddresses(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Fail("failed to list addresses"))
			return
		}
		c.JSON(http.StatusOK, response.OK("ok", rows))
	}
}

// @Summary      Delete Address
// @Tags         Checkout
// @Produce      json
// @Param        id path int true "Address id"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/checkout/address/{id} [delete]
func ApiDeleteAddress(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if err := svc.DeleteAddress(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, response.Fail("failed to delete address"))
			return
		}
		c.JSON(http.StatusOK, response.OK[any]("address deleted", nil))
	}
}

// @Summary      Place Order
// @Description  Writes the order and its line items in one transaction.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        request body checkout.PlaceOrderInput true "Order with line items"
// @Success      200  {object}  handlers.RespID
// @Router       /api/v1/checkout/order [post]
func ApiPlaceOrder(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in checkout.PlaceOrderInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
			return
		}
		id, err := svc.PlaceOrder(c.Request.Context(), &in)
		if err != nil {
			if errors.Is(err, checkout.ErrEmptyOrder) {
				c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, response.Fail("failed to place order"))
			return
		}
		c.JSON(http.StatusOK, response.OK("order placed", gin.H{"id": id}))
	}
}

// @Summary      My Orders
// @Tags         Checkout
// @Produce      json
// @Param        user_id path int true "User id"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/checkout/orders/{user_id} [get]
func ApiMyOrders(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "user_id")
		if !ok {
			return
		}
		rows, err := svc.MyOrders(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Fail("failed to list orders"))
			return
		}
		c.JSON(http.StatusOK, response.OK("ok", rows))
	}
}

// @Summary      Order Details
// @Tags         Checkout
// @Produce      json
// @Param        id path int true "Order id"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/checkout/order/{id} [get]
func ApiOrderDetails(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		order, err := svc.OrderDetails(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, checkout.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, response.Fail("order not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, response.Fail("failed to load order"))
			return
		}
		c.JSON(http.StatusOK, response.OK("ok", order))
	}
}

type updateOrderStatusRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// @Summary      Update Order Status (Admin)
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path int true "Order id"
// @Param        request body handlers.updateOrderStatusRequest true "New status values, either may be empty"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/order/{id}/status [put]
func ApiUpdateOrderStatus(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req updateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
			return
		}
		if err := svc.UpdateOrderStatus(c.Request.Context(), id, req.Status, req.PaymentStatus); err != nil {
			if errors.Is(err, checkout.ErrNoUpdates) {
				c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, response.Fail("failed to update order"))
			return
		}
		c.JSON(http.StatusOK, response.OK[any]("order updated", nil))
	}
}

func RegisterCheckoutRoutes(r gin.IRouter, svc *checkout.Service) {
	r.POST("/address", ApiSaveAddress(svc))
	r.GET("/address/:user_id", ApiListAddresses(svc))
	r.DELETE("/address/:id", ApiDeleteAddress(svc))
	r.POST("/order", ApiPlaceOrder(svc))
	r.GET("/orders/:user_id", ApiMyOrders(svc))
	r.GET("/order/:id", ApiOrderDetails(svc))
}
