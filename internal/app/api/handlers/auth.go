package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gauswarn/storefront/internal/app/service/auth"
	"github.com/gauswarn/storefront/pkg/response"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary      Login
// @Description  Authenticates a customer by email and password. Unknown emails are registered on the fly.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handlers.loginRequest true "Login credentials"
// @Success      200  {object}  handlers.RespLogin
// @Router       /api/v1/auth/login [post]
func ApiLogin(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
			return
		}
		res, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrPasswordlessUser):
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, response.Fail("login failed"))
			return
		}
		c.JSON(http.StatusOK, response.OK("login successful", res))
	}
}

// @Summary      Register
// @Description  Creates a customer account.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handlers.registerRequest true "Registration details"
// @Success      200  {object}  handlers.RespLogin
// @Router       /api/v1/auth/register [post]
func ApiRegister(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
			return
		}
		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, response.Fail("email and password are required"))
			return
		}
		user, err := svc.Register(c.Request.Context(), req.FullName, req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Fail("registration failed"))
			return
		}
		user.Password = ""
		c.JSON(http.StatusOK, response.OK("registration successful", user))
	}
}

// @Summary      Admin Login
// @Description  Authenticates an admin account. No auto-registration.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handlers.loginRequest true "Admin credentials"
// @Success      200  {object}  handlers.RespLogin
// @Router       /api/v1/auth/admin/login [post]
func ApiAdminLogin(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
			return
		}
		res, err := svc.AdminLogin(c.Request.Context(), req.Email, req.Password)
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
			return
		case errors.Is(err, auth.ErrNotAdmin):
			c.JSON(http.StatusForbidden, response.Fail(err.Error()))
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, response.Fail("login failed"))
			return
		}
		c.JSON(http.StatusOK, response.OK("login successful", res))
	}
}

func RegisterAuthRoutes(r gin.IRouter, svc *auth.Service) {
	r.POST("/login", ApiLogin(svc))
	r.POST("/register", ApiRegister(svc))
	r.POST("/admin/login", ApiAdminLogin(svc))
}
