package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
	"github.com/tradekeep/tradekeep_backend/internal/middleware"
)

// customerHandler handles HTTP requests for customers
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

// registerCustomerRoutes registers customer routes
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := &customerHandler{customerService: customerService}

	customerGroup := rg.Group("/customers")
	{
		customerGroup.POST("", h.createCustomer)
		customerGroup.GET("", h.listCustomers)
		customerGroup.PUT("/:customer_id", h.updateCustomer)
		customerGroup.DELETE("/:customer_id", h.deleteCustomer)
	}
}

// createCustomer godoc
// @Summary Create a customer
// @Description Creates a customer directly, without lead conversion
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), businessID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create customer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// listCustomers godoc
// @Summary List customers
// @Description Returns the tenant's customers newest-first with pagination
// @Tags customers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} dto.ListCustomersResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	resp, err := h.customerService.ListCustomers(c.Request.Context(), businessID, listParamsFromQuery(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateCustomer godoc
// @Summary Update a customer
// @Description Rewrites a customer's contact details
// @Tags customers
// @Accept json
// @Param customer_id path string true "Customer ID"
// @Param customer body dto.UpdateCustomerRequest true "Customer details"
// @Success 204 "Updated"
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{customer_id} [put]
func (h *customerHandler) updateCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.customerService.UpdateCustomer(c.Request.Context(), businessID, c.Param("customer_id"), req); err != nil {
		respondServiceError(c, logger, err, "Failed to update customer")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteCustomer godoc
// @Summary Delete a customer
// @Description Removes a customer
// @Tags customers
// @Param customer_id path string true "Customer ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{customer_id} [delete]
func (h *customerHandler) deleteCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	if err := h.customerService.DeleteCustomer(c.Request.Context(), businessID, c.Param("customer_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete customer")
		return
	}
	c.Status(http.StatusNoContent)
}
