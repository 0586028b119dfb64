package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/tradekeep/tradekeep_backend/cmd/docs"
	"github.com/tradekeep/tradekeep_backend/internal/core/services"
	"github.com/tradekeep/tradekeep_backend/internal/middleware"
	"github.com/tradekeep/tradekeep_backend/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	container *services.Container,
) {
	registerHomeRoutes(r)

	// API v1 routes behind token verification
	setupAPIV1Routes(r, cfg, container)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	container *services.Container,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Signup and admin provisioning only need an authenticated caller,
	// not an established tenant
	registerAuthRoutes(v1, container.Business)

	// Everything else requires the caller's profile to resolve to a business
	tenant := v1.Group("", middleware.TenantMiddleware(container.Business))

	RegisterAccountRoutes(tenant, container.Accounts, container.Reporting)
	registerJournalRoutes(tenant, container.Posting)
	registerReportingRoutes(tenant, container.Reporting)
	registerCustomerRoutes(tenant, container.Customer)
	registerLeadRoutes(tenant, container.Lead)
	registerQuotationRoutes(tenant, container.Quotation)
	registerInvoiceRoutes(tenant, container.Invoice)
	registerPaymentRoutes(tenant, container.Payment)
	registerExpenseRoutes(tenant, container.Expense)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
