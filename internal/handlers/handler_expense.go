package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
	"github.com/tradekeep/tradekeep_backend/internal/middleware"
)

// expenseHandler handles HTTP requests for expenses
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// registerExpenseRoutes registers expense routes
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := &expenseHandler{expenseService: expenseService}

	expenseGroup := rg.Group("/expenses")
	{
		expenseGroup.POST("", h.createExpense)
		expenseGroup.GET("", h.listExpenses)
		expenseGroup.PUT("/:expense_id", h.updateExpense)
		expenseGroup.DELETE("/:expense_id", h.deleteExpense)
		expenseGroup.POST("/:expense_id/approve", h.approveExpense)
		expenseGroup.POST("/:expense_id/reject", h.rejectExpense)
	}
}

// createExpense godoc
// @Summary Record an expense
// @Description Records an expense and posts its journal entry immediately
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create expense")
		return
	}

	logger.Info("Expense created", slog.String("expense_number", expense.ExpenseNumber))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List expenses
// @Description Returns the tenant's expenses newest-first with pagination
// @Tags expenses
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} dto.ListExpensesResponse
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	resp, err := h.expenseService.ListExpenses(c.Request.Context(), businessID, listParamsFromQuery(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateExpense godoc
// @Summary Update an expense
// @Description Edits a pending expense; amount or category changes re-post the journal entry
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense_id path string true "Expense ID"
// @Param expense body dto.UpdateExpenseRequest true "Fields to change"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input or non-pending expense"
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /expenses/{expense_id} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), businessID, c.Param("expense_id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Description Deletes a pending expense together with its journal entries
// @Tags expenses
// @Param expense_id path string true "Expense ID"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Non-pending expense"
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /expenses/{expense_id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	if err := h.expenseService.DeleteExpense(c.Request.Context(), businessID, c.Param("expense_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete expense")
		return
	}
	c.Status(http.StatusNoContent)
}

// approveExpense godoc
// @Summary Approve an expense
// @Description Moves a pending expense to approved
// @Tags expenses
// @Produce json
// @Param expense_id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Non-pending expense"
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /expenses/{expense_id}/approve [post]
func (h *expenseHandler) approveExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	expense, err := h.expenseService.ApproveExpense(c.Request.Context(), businessID, c.Param("expense_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to approve expense")
		return
	}

	logger.Info("Expense approved", slog.String("expense_number", expense.ExpenseNumber))
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// rejectExpense godoc
// @Summary Reject an expense
// @Description Rejects a pending expense and reverses its journal entries
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense_id path string true "Expense ID"
// @Param rejection body dto.RejectExpenseRequest false "Rejection reason"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Non-pending expense"
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /expenses/{expense_id}/reject [post]
func (h *expenseHandler) rejectExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.RejectExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	expense, err := h.expenseService.RejectExpense(c.Request.Context(), businessID, c.Param("expense_id"), userID, req.Reason)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reject expense")
		return
	}

	logger.Info("Expense rejected", slog.String("expense_number", expense.ExpenseNumber))
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}
