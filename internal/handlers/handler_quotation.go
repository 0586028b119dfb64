package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
	"github.com/tradekeep/tradekeep_backend/internal/middleware"
)

// quotationHandler handles HTTP requests for quotations
type quotationHandler struct {
	quotationService portssvc.QuotationSvcFacade
}

// registerQuotationRoutes registers quotation routes
func registerQuotationRoutes(rg *gin.RouterGroup, quotationService portssvc.QuotationSvcFacade) {
	h := &quotationHandler{quotationService: quotationService}

	quotationGroup := rg.Group("/quotations")
	{
		quotationGroup.POST("", h.createQuotation)
		quotationGroup.GET("", h.listQuotations)
		quotationGroup.PUT("/:quotation_id", h.updateQuotation)
		quotationGroup.DELETE("/:quotation_id", h.deleteQuotation)
	}
}

// createQuotation godoc
// @Summary Create a quotation
// @Description Creates a priced offer with discount-before-tax totals
// @Tags quotations
// @Accept json
// @Produce json
// @Param quotation body dto.CreateQuotationRequest true "Quotation details"
// @Success 201 {object} dto.QuotationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /quotations [post]
func (h *quotationHandler) createQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	var req dto.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	quotation, err := h.quotationService.CreateQuotation(c.Request.Context(), businessID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create quotation")
		return
	}

	logger.Info("Quotation created", slog.String("quotation_number", quotation.QuotationNumber))
	c.JSON(http.StatusCreated, quotation)
}

// listQuotations godoc
// @Summary List quotations
// @Description Returns the tenant's quotations newest-first with their items
// @Tags quotations
// @Produce json
// @Success 200 {array} dto.QuotationResponse
// @Security BearerAuth
// @Router /quotations [get]
func (h *quotationHandler) listQuotations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	quotations, err := h.quotationService.ListQuotations(c.Request.Context(), businessID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list quotations")
		return
	}
	c.JSON(http.StatusOK, quotations)
}

// updateQuotation godoc
// @Summary Update a quotation
// @Description Rewrites the quotation and replaces its items
// @Tags quotations
// @Accept json
// @Param quotation_id path string true "Quotation ID"
// @Param quotation body dto.UpdateQuotationRequest true "Quotation details"
// @Success 204 "Updated"
// @Failure 404 {object} map[string]string "Quotation not found"
// @Security BearerAuth
// @Router /quotations/{quotation_id} [put]
func (h *quotationHandler) updateQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	var req dto.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.quotationService.UpdateQuotation(c.Request.Context(), businessID, c.Param("quotation_id"), req); err != nil {
		respondServiceError(c, logger, err, "Failed to update quotation")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteQuotation godoc
// @Summary Delete a quotation
// @Description Removes a quotation; items cascade
// @Tags quotations
// @Param quotation_id path string true "Quotation ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Quotation not found"
// @Security BearerAuth
// @Router /quotations/{quotation_id} [delete]
func (h *quotationHandler) deleteQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	if err := h.quotationService.DeleteQuotation(c.Request.Context(), businessID, c.Param("quotation_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete quotation")
		return
	}
	c.Status(http.StatusNoContent)
}
