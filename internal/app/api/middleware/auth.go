package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"github.com/gauswarn/storefront/pkg/response"
)

// AuthMiddleware validates a bearer token and seeds the gin context with
// the claims (keys: "userID", "userEmail", "userRole").
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail("missing credentials"))
			return
		}
		token := raw
		if strings.HasPrefix(strings.ToLower(token), "bearer ") {
			token = strings.TrimSpace(token[7:])
		}

		parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !parsed.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail("invalid token"))
			return
		}

		claims, ok := parsed.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail("invalid token"))
			return
		}
		if v, ok := claims["user_id"].(float64); ok {
			c.Set("userID", int64(v))
		}
		if v, ok := claims["email"].(string); ok {
			c.Set("userEmail", v)
		}
		if v, ok := claims["role"].(string); ok {
			c.Set("userRole", v)
		}
		c.Next()
	}
}

// RequireAdmin rejects requests whose token does not carry the admin role.
// Must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("userRole") != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Fail("admin access required"))
			return
		}
		c.Next()
	}
}
