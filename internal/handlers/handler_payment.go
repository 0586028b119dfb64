package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
	"github.com/tradekeep/tradekeep_backend/internal/middleware"
)

// paymentHandler handles HTTP requests for payments
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// registerPaymentRoutes registers payment routes
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := &paymentHandler{paymentService: paymentService}

	paymentGroup := rg.Group("/payments")
	{
		paymentGroup.POST("", h.recordPayment)
		paymentGroup.GET("", h.listPayments)
	}
}

// recordPayment godoc
// @Summary Record a payment
// @Description Records money received against an invoice; overpayment is rejected
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.RecordPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input or overpayment"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.paymentService.RecordPayment(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record payment")
		return
	}

	logger.Info("Payment recorded", slog.String("receipt_number", resp.ReceiptNumber))
	c.JSON(http.StatusCreated, resp)
}

// listPayments godoc
// @Summary List payments
// @Description Returns the tenant's payments newest-first
// @Tags payments
// @Produce json
// @Success 200 {array} dto.PaymentResponse
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	payments, err := h.paymentService.ListPayments(c.Request.Context(), businessID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list payments")
		return
	}

	resp := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		resp[i] = dto.ToPaymentResponse(&payments[i])
	}
	c.JSON(http.StatusOK, resp)
}
