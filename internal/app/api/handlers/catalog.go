package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gauswarn/storefront/internal/app/service/catalog"
	"github.com/gauswarn/storefront/internal/models"
	"github.com/gauswarn/storefront/pkg/response"
)

// @Summary      List Products
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/catalog/products [get]
func ApiListProducts(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.ListProducts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Fail("failed to list products"))
			return
		}
		c.JSON(http.StatusOK, response.OK("ok", rows))
	}
}

// @Summary      Get Product
// @Tags         Catalog
// @Produce      json
// @Param        id path int true "Product id"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/catalog/product/{id} [get]
func ApiGetProduct(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		p, err := svc.GetProduct(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, response.Fail("product not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, response.Fail("failed to load product"))
			return
		}
		c.JSON(http.StatusOK, response.OK("ok", p))
	}
}

// @Summary      Add Product (Admin)
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body models.Product true "Product"
// @Success      200  {object}  handlers.RespID
// @Router       /api/v1/admin/product [post]
func ApiAddProduct(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p models.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
			return
		}
		id, err := svc.AddProduct(c.Request.Context(), &p)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Fail("failed to add product"))
			return
		}
		c.JSON(http.StatusOK, response.OK("product added", gin.H{"id": id}))
	}
}

// @Summary      Update Product (Admin)
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path int true "Product id"
// @Param        request body models.Product true "Product"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/product/{id} [put]
func ApiUpdateProduct(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var p models.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
			return
		}
		p.ID = id
		if err := svc.UpdateProduct(c.Request.Context(), &p); err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, response.Fail("product not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, response.Fail("failed to update product"))
			return
		}
		c.JSON(http.StatusOK, response.OK[any]("product updated", nil))
	}
}

// @Summary      Delete Product (Admin)
// @Tags         Admin
// @Produce      json
// @Param        id path int true "Product id"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/product/{id} [delete]
func ApiDeleteProduct(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if err := svc.DeleteProduct(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, response.Fail("failed to delete product"))
			return
		}
		c.JSON(http.StatusOK, response.OK[any]("product deleted", nil))
	}
}

// @Summary      List Categories
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/catalog/categories [get]
func ApiListCategories(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.ListCategories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Fail("failed to list categories"))
			return
		}
		c.JSON(http.StatusOK, response.OK("ok", rows))
	}
}

// @Summary      Add Category (Admin)
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body models.Category true "Category"
// @Success      200  {object}  handlers.RespID
// @Router       /api/v1/admin/category [post]
func ApiAddCategory(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cat models.Category
		if err := c.ShouldBindJSON(&cat); err != nil {
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
			return
		}
		id, err := svc.AddCategory(c.Request.Context(), &cat)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Fail("failed to add category"))
			return
		}
		c.JSON(http.StatusOK, response.OK("category added", gin.H{"id": id}))
	}
}

// @Summary      Delete Category (Admin)
// @Tags         Admin
// @Produce      json
// @Param        id path int true "Category id"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/category/{id} [delete]
func ApiDeleteCategory(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if err := svc.DeleteCategory(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, response.Fail("failed to delete category"))
			return
		}
		c.JSON(http.StatusOK, response.OK[any]("category deleted", nil))
	}
}

func RegisterCatalogRoutes(r gin.IRouter, svc *catalog.Service) {
	r.GET("/products", ApiListProducts(svc))
	r.GET("/product/:id", ApiGetProduct(svc))
	r.GET("/categories", ApiListCategories(svc))
}
