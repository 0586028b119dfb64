package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
	"github.com/tradekeep/tradekeep_backend/internal/middleware"
)

// leadHandler handles HTTP requests for leads
type leadHandler struct {
	leadService portssvc.LeadSvcFacade
}

// registerLeadRoutes registers lead routes
func registerLeadRoutes(rg *gin.RouterGroup, leadService portssvc.LeadSvcFacade) {
	h := &leadHandler{leadService: leadService}

	leadGroup := rg.Group("/leads")
	{
		leadGroup.POST("", h.createLead)
		leadGroup.GET("", h.listLeads)
		leadGroup.PUT("/:lead_id", h.updateLead)
		leadGroup.DELETE("/:lead_id", h.deleteLead)
		leadGroup.POST("/:lead_id/convert", h.convertLead)
		leadGroup.POST("/:lead_id/notes", h.addLeadNote)
		leadGroup.GET("/:lead_id/notes", h.listLeadNotes)
	}
}

// createLead godoc
// @Summary Create a lead
// @Description Captures a new lead in the sales pipeline
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body dto.CreateLeadRequest true "Lead details"
// @Success 201 {object} dto.LeadResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /leads [post]
func (h *leadHandler) createLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create lead")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLeadResponse(lead))
}

// listLeads godoc
// @Summary List leads
// @Description Returns the tenant's leads newest-first with pagination
// @Tags leads
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} dto.ListLeadsResponse
// @Security BearerAuth
// @Router /leads [get]
func (h *leadHandler) listLeads(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	resp, err := h.leadService.ListLeads(c.Request.Context(), businessID, listParamsFromQuery(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list leads")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateLead godoc
// @Summary Update a lead
// @Description Rewrites the lead's details
// @Tags leads
// @Accept json
// @Param lead_id path string true "Lead ID"
// @Param lead body dto.UpdateLeadRequest true "Lead details"
// @Success 204 "Updated"
// @Failure 404 {object} map[string]string "Lead not found"
// @Security BearerAuth
// @Router /leads/{lead_id} [put]
func (h *leadHandler) updateLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	var req dto.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.leadService.UpdateLead(c.Request.Context(), businessID, c.Param("lead_id"), req); err != nil {
		respondServiceError(c, logger, err, "Failed to update lead")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteLead godoc
// @Summary Delete a lead
// @Description Removes a lead and its notes
// @Tags leads
// @Param lead_id path string true "Lead ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Lead not found"
// @Security BearerAuth
// @Router /leads/{lead_id} [delete]
func (h *leadHandler) deleteLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	if err := h.leadService.DeleteLead(c.Request.Context(), businessID, c.Param("lead_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete lead")
		return
	}
	c.Status(http.StatusNoContent)
}

// convertLead godoc
// @Summary Convert a lead to a customer
// @Description Creates a customer from the lead; converting twice returns the existing customer
// @Tags leads
// @Produce json
// @Param lead_id path string true "Lead ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} map[string]string "Lead not found"
// @Security BearerAuth
// @Router /leads/{lead_id}/convert [post]
func (h *leadHandler) convertLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	customer, err := h.leadService.ConvertLead(c.Request.Context(), businessID, c.Param("lead_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to convert lead")
		return
	}

	logger.Info("Lead converted", slog.String("customer_id", customer.CustomerID))
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// addLeadNote godoc
// @Summary Add a note to a lead
// @Description Attaches a dated remark to the lead
// @Tags leads
// @Accept json
// @Produce json
// @Param lead_id path string true "Lead ID"
// @Param note body dto.AddLeadNoteRequest true "Note"
// @Success 201 {object} domain.LeadNote
// @Failure 404 {object} map[string]string "Lead not found"
// @Security BearerAuth
// @Router /leads/{lead_id}/notes [post]
func (h *leadHandler) addLeadNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.AddLeadNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	note, err := h.leadService.AddLeadNote(c.Request.Context(), businessID, c.Param("lead_id"), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to add lead note")
		return
	}
	c.JSON(http.StatusCreated, note)
}

// listLeadNotes godoc
// @Summary List a lead's notes
// @Description Returns the lead's notes newest-first
// @Tags leads
// @Produce json
// @Param lead_id path string true "Lead ID"
// @Success 200 {array} domain.LeadNote
// @Failure 404 {object} map[string]string "Lead not found"
// @Security BearerAuth
// @Router /leads/{lead_id}/notes [get]
func (h *leadHandler) listLeadNotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	notes, err := h.leadService.ListLeadNotes(c.Request.Context(), businessID, c.Param("lead_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list lead notes")
		return
	}
	c.JSON(http.StatusOK, notes)
}
