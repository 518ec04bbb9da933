package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gauswarn/storefront/internal/app/service/blog"
	"github.com/gauswarn/storefront/internal/app/service/catalog"
	"github.com/gauswarn/storefront/internal/app/service/checkout"
	"github.com/gauswarn/storefront/internal/app/service/newsletter"
	"github.com/gauswarn/storefront/internal/app/service/statistics"
	"github.com/gauswarn/storefront/pkg/response"
)

// @Summary      List Payments (Admin)
// @Description  Retrieves a paginated and filterable list of payment rows.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body statistics.ScanPaymentsRequest true "List request with filters, pagination, and sorting"
// @Success      200  {object}  handlers.RespListPayments
// @Router       /api/v1/admin/list_payments [post]
func ApiListPayments(stats *statistics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req statistics.ScanPaymentsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
			return
		}
		res, err := stats.ScanPayments(c.Request.Context(), &req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Fail("failed to list payments"))
			return
		}
		c.JSON(http.StatusOK, response.OK("ok", res))
	}
}

// @Summary      Get Sales Statistics (Admin)
// @Description  Retrieves the requested sales data items, filterable by date range.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body statistics.SalesStatisticRequest true "Statistic request parameters"
// @Success      200  {object}  handlers.RespSalesStatistic
// @Router       /api/v1/admin/get_sales_statistic [post]
func ApiGetSalesStatistic(stats *statistics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req statistics.SalesStatisticRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
			return
		}
		res, err := stats.GetSalesStatistic(c.Request.Context(), &req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Fail("failed to compute statistics"))
			return
		}
		c.JSON(http.StatusOK, response.OK("ok", res))
	}
}

func RegisterAdminRoutes(r gin.IRouter, stats *statistics.Service, cat *catalog.Service, blg *blog.Service, news *newsletter.Service, chk *checkout.Service) {
	r.POST("/list_payments", ApiListPayments(stats))
	r.POST("/get_sales_statistic", ApiGetSalesStatistic(stats))

	r.POST("/product", ApiAddProduct(cat))
	r.PUT("/product/:id", ApiUpdateProduct(cat))
	r.DELETE("/product/:id", ApiDeleteProduct(cat))
	r.POST("/category", ApiAddCategory(cat))
	r.DELETE("/category/:id", ApiDeleteCategory(cat))

	r.POST("/blog", ApiCreateBlog(blg))
	r.GET("/newsletter", ApiNewsletterList(news))
	r.PUT("/order/:id/status", ApiUpdateOrderStatus(chk))
}
