package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gauswarn/storefront/internal/app/service/blog"
	"github.com/gauswarn/storefront/internal/models"
	"github.com/gauswarn/storefront/pkg/response"
)

// @Summary      List Blogs
// @Tags         Blog
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/blog [get]
func ApiListBlogs(svc *blog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Fail("failed to list blogs"))
			return
		}
		c.JSON(http.StatusOK, response.OK("ok", rows))
	}
}

// @Summary      Get Blog
// @Tags         Blog
// @Produce      json
// @Param        slug path string true "Blog slug"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/blog/{slug} [get]
func ApiGetBlog(svc *blog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		if slug == "" {
			c.JSON(http.StatusBadRequest, response.Fail("missing slug"))
			return
		}
		b, err := svc.GetBySlug(c.Request.Context(), slug)
		if err != nil {
			if errors.Is(err, blog.ErrBlogNotFound) {
				c.JSON(http.StatusNotFound, response.Fail("blog not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, response.Fail("failed to load blog"))
			return
		}
		c.JSON(http.StatusOK, response.OK("ok", b))
	}
}

// @Summary      Create Blog (Admin)
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body models.Blog true "Blog post"
// @Success      200  {object}  handlers.RespID
// @Router       /api/v1/admin/blog [post]
func ApiCreateBlog(svc *blog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var b models.Blog
		if err := c.ShouldBindJSON(&b); err != nil {
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
			return
		}
		id, err := svc.Create(c.Request.Context(), &b)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Fail("failed to create blog"))
			return
		}
		c.JSON(http.StatusOK, response.OK("blog created", gin.H{"id": id}))
	}
}

func RegisterBlogRoutes(r gin.IRouter, svc *blog.Service) {
	r.GET("", ApiListBlogs(svc))
	r.GET("/:slug", ApiGetBlog(svc))
}
