package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradekeep/tradekeep_backend/internal/apperrors"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
	"github.com/tradekeep/tradekeep_backend/internal/middleware"
)

// authHandler handles signup completion and tenant provisioning. Credentials
// live with the external auth provider; these routes only need a valid token.
type authHandler struct {
	businessService portssvc.BusinessSvcFacade
}

// registerAuthRoutes registers the signup-lifecycle routes. These run behind
// the auth middleware but before tenant resolution, since the caller may not
// have a business yet.
func registerAuthRoutes(rg *gin.RouterGroup, businessService portssvc.BusinessSvcFacade) {
	h := &authHandler{businessService: businessService}

	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/complete-signup", h.completeSignup)
		authGroup.GET("/me", h.getMe)
	}

	adminGroup := rg.Group("/admin")
	{
		adminGroup.POST("/businesses", h.provisionBusiness)
	}
}

// completeSignup godoc
// @Summary Complete signup
// @Description Creates the business and owner profile for a newly authenticated user and seeds the default chart of accounts
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.CompleteSignupRequest true "Business name"
// @Success 201 {object} dto.BusinessResponse
// @Failure 409 {object} map[string]string "User already has a business"
// @Security BearerAuth
// @Router /auth/complete-signup [post]
func (h *authHandler) completeSignup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CompleteSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	business, err := h.businessService.CompleteSignup(c.Request.Context(), userID, req.Name)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to complete signup")
		return
	}

	logger.Info("Signup completed", slog.String("business_id", business.BusinessID))
	c.JSON(http.StatusCreated, dto.ToBusinessResponse(business))
}

// getMe godoc
// @Summary Get the caller's profile
// @Description Resolves the authenticated user's profile and tenant association
// @Tags auth
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 404 {object} map[string]string "No profile yet"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.businessService.GetProfileByUserID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to resolve profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// provisionBusiness godoc
// @Summary Provision a business
// @Description Creates a tenant on behalf of an owner; restricted to superadmins
// @Tags admin
// @Accept json
// @Produce json
// @Param business body dto.ProvisionBusinessRequest true "Owner and business details"
// @Success 201 {object} dto.BusinessResponse
// @Failure 403 {object} map[string]string "Caller is not a superadmin"
// @Failure 409 {object} map[string]string "Owner already has a business"
// @Security BearerAuth
// @Router /admin/businesses [post]
func (h *authHandler) provisionBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.businessService.GetProfileByUserID(c.Request.Context(), userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		respondServiceError(c, logger, err, "Failed to resolve caller profile")
		return
	}
	if profile == nil || profile.Role != domain.RoleSuperadmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Superadmin role required"})
		return
	}

	var req dto.ProvisionBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	business, err := h.businessService.ProvisionBusiness(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to provision business")
		return
	}

	logger.Info("Business provisioned",
		slog.String("business_id", business.BusinessID),
		slog.String("owner_id", req.OwnerUserID))
	c.JSON(http.StatusCreated, dto.ToBusinessResponse(business))
}
