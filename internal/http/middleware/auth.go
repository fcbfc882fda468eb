package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const staffUserKey = "staff_user"

// StaffAuth guards the staff API. It expects a Bearer token signed with
// the configured secret and stores the authenticated username in the
// context for handlers that record who acted.
func StaffAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "missing bearer token",
				"request_id": GetRequestID(c),
			})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "invalid or expired token",
				"request_id": GetRequestID(c),
			})
			return
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Set(staffUserKey, sub)
		}
		c.Next()
	}
}

// GetStaffUser returns the username set by StaffAuth, or "".
func GetStaffUser(c *gin.Context) string {
	if v, ok := c.Get(staffUserKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
