package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tradekeep/tradekeep_backend/internal/apperrors"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
)

// ProfileResolver is the subset of the business service the tenant
// middleware needs.
type ProfileResolver interface {
	GetProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}

// TenantMiddleware resolves the authenticated user's business and attaches
// the business ID to the request context. Requests from users without a
// business (signup not completed) are rejected.
func TenantMiddleware(profiles ProfileResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Error("User ID not found in context before tenant resolution")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		profile, err := profiles.GetProfileByUserID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Business not found"})
				return
			}
			logger.Error("Failed to resolve profile", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve business"})
			return
		}
		if profile.BusinessID == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Business not found"})
			return
		}

		enrichedLogger := logger.With(slog.String("business_id", profile.BusinessID))

		ctx := context.WithValue(c.Request.Context(), businessIDKey, profile.BusinessID)
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
