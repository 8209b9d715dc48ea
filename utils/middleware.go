package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaffMiddleware gates the management API behind a valid staff Bearer token.
func StaffMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization header required"})
			c.Abort()
			return
		}

		claims, err := parseBearer(secret, authHeader)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
			c.Abort()
			return
		}

		role, _ := claims["user_role"].(string)
		if role != roleStaff {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Forbidden: staff access required"})
			c.Abort()
			return
		}

		idFloat, ok := claims["id"].(float64)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token ID"})
			c.Abort()
			return
		}
		c.Set("staff_id", uint(idFloat))

		c.Next()
	}
}

func parseBearer(secret, authHeader string) (map[string]interface{}, error) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errors.New("invalid token format")
	}
	return ValidateToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
}
