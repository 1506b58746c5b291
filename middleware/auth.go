package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"schoolapi/utils"
)

// Context keys the auth middleware sets for downstream handlers.
const (
	CtxUserID = "userId"
	CtxRole   = "role"
)

// RequireAuth extracts and verifies the bearer token and attaches the
// decoded identity to the request context. It never touches the database,
// so a token stays valid for its full lifetime regardless of later
// account changes.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Missing authentication token",
			})
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}
