package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"waco-shop/models"
	"waco-shop/utils"
)

// AuthMiddleware accepts either an authenticated session cookie or a
// Bearer token. On success user_id/user_email are set on the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess.Authenticated() {
			c.Set("user_id", sess.UserID)
			c.Set("user_email", sess.Email)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.MessageResponse{Message: "Not logged in"})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.MessageResponse{Message: "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.MessageResponse{Message: "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Next()
	}
}
