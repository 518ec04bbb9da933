package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gauswarn/storefront/internal/app/service/newsletter"
	"github.com/gauswarn/storefront/pkg/response"
)

type newsletterRequest struct {
	Email string `json:"email"`
}

// @Summary      Subscribe to Newsletter
// @Description  Adds an email to the subscriber list. Duplicate subscriptions are a no-op.
// @Tags         Newsletter
// @Accept       json
// @Produce      json
// @Param        request body handlers.newsletterRequest true "Subscriber email"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/newsletter/subscribe [post]
func ApiNewsletterSubscribe(svc *newsletter.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req newsletterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
			return
		}
		if err := svc.Subscribe(c.Request.Context(), req.Email); err != nil {
			if errors.Is(err, newsletter.ErrInvalidEmail) {
				c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, response.Fail("failed to subscribe"))
			return
		}
		c.JSON(http.StatusOK, response.OK[any]("subscribed", nil))
	}
}

// @Summary      Unsubscribe from Newsletter
// @Tags         Newsletter
// @Accept       json
// @Produce      json
// @Param        request body handlers.newsletterRequest true "Subscriber email"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/newsletter/unsubscribe [post]
func ApiNewsletterUnsubscribe(svc *newsletter.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req newsletterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
			return
		}
		if err := svc.Unsubscribe(c.Request.Context(), req.Email); err != nil {
			if errors.Is(err, newsletter.ErrInvalidEmail) {
				c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, response.Fail("failed to unsubscribe"))
			return
		}
		c.JSON(http.StatusOK, response.OK[any]("unsubscribed", nil))
	}
}

// @Summary      List Subscribers (Admin)
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/newsletter [get]
func ApiNewsletterList(svc *newsletter.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Fail("failed to list subscribers"))
			return
		}
		c.JSON(http.StatusOK, response.OK("ok", rows))
	}
}

func RegisterNewsletterRoutes(r gin.IRouter, svc *newsletter.Service) {
	r.POST("/subscribe", ApiNewsletterSubscribe(svc))
	r.POST("/unsubscribe", ApiNewsletterUnsubscribe(svc))
}
