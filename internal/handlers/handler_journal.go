package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
	"github.com/tradekeep/tradekeep_backend/internal/middleware"
)

// journalHandler handles HTTP requests for manual journal entries
type journalHandler struct {
	postingService portssvc.PostingSvcFacade
}

// registerJournalRoutes registers journal entry routes
func registerJournalRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := &journalHandler{postingService: postingService}

	journalGroup := rg.Group("/journal-entries")
	{
		journalGroup.POST("", h.postJournalEntry)
		journalGroup.GET("/:entry_id", h.getJournalEntry)
	}
}

// postJournalEntry godoc
// @Summary Post a manual journal entry
// @Description Validates and posts a balanced journal entry against the tenant's ledger
// @Tags journal
// @Accept json
// @Produce json
// @Param entry body dto.PostJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Unbalanced entry or unknown accounts"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalHandler) postJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	var req dto.PostJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	input := portssvc.PostJournalEntryInput{
		Date:          req.Date,
		Description:   req.Description,
		ReferenceType: domain.RefManual,
		Lines:         make([]portssvc.JournalLineInput, len(req.Lines)),
	}
	for i, line := range req.Lines {
		input.Lines[i] = portssvc.JournalLineInput{
			AccountCode: line.AccountCode,
			Debit:       line.Debit,
			Credit:      line.Credit,
		}
	}

	entry, err := h.postingService.PostJournalEntry(c.Request.Context(), businessID, input)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post journal entry")
		return
	}

	logger.Info("Manual journal entry posted", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getJournalEntry godoc
// @Summary Get a journal entry
// @Description Retrieves one journal entry with its lines
// @Tags journal
// @Produce json
// @Param entry_id path string true "Entry ID"
// @Success 200 {object} dto.GetJournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /journal-entries/{entry_id} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	entry, lines, err := h.postingService.GetJournalEntry(c.Request.Context(), businessID, c.Param("entry_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.GetJournalEntryResponse{
		Entry: dto.ToJournalEntryResponse(entry),
		Lines: lines,
	})
}
