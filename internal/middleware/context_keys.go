package middleware

import "github.com/gin-gonic/gin"

// userIDKey holds the authenticated user's ID; businessIDKey holds the
// tenant resolved by the tenant middleware.
const (
	userIDKey     = contextKey("userID")
	businessIDKey = contextKey("businessID")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetBusinessIDFromContext retrieves the caller's tenant ID from the Gin context.
func GetBusinessIDFromContext(c *gin.Context) (string, bool) {
	businessID, ok := c.Request.Context().Value(businessIDKey).(string)
	if !ok || businessID == "" {
		return "", false
	}
	return businessID, true
}
