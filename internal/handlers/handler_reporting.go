package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for derived financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes registers report routes
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/day-book", h.getDayBook)
	}
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Returns per-account debit/credit totals; total debits equal total credits
// @Tags reports
// @Produce json
// @Success 200 {array} domain.TrialBalanceRow
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), businessID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate trial balance report")
		return
	}

	logger.Info("Trial balance report generated", slog.Int("row_count", len(rows)))
	c.JSON(http.StatusOK, rows)
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Reports revenue against expenses for a period; omitted bounds are unbounded
// @Tags reports
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD)"
// @Param toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.ProfitLossReport
// @Failure 400 {object} map[string]string "Invalid date"
// @Security BearerAuth
// @Router /reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	var from, to *time.Time
	if fromStr := c.Query("fromDate"); fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fromDate format. Use YYYY-MM-DD"})
			return
		}
		from = &parsed
	}
	if toStr := c.Query("toDate"); toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid toDate format. Use YYYY-MM-DD"})
			return
		}
		to = &parsed
	}
	if from != nil && to != nil && from.After(*to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fromDate must be before or equal to toDate"})
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), businessID, from, to)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate profit and loss report")
		return
	}

	logger.Info("Profit and loss report generated",
		slog.Int("revenue_accounts", len(report.Revenue)),
		slog.Int("expense_accounts", len(report.Expenses)))
	c.JSON(http.StatusOK, report)
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Reports asset, liability and equity balances as of a date
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} domain.BalanceSheetReport
// @Failure 400 {object} map[string]string "Invalid date"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	asOfStr := c.DefaultQuery("asOf", time.Now().Format("2006-01-02"))
	asOf, err := time.Parse("2006-01-02", asOfStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}
	// Include the whole reporting day.
	asOf = asOf.Add(24*time.Hour - time.Nanosecond)

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), businessID, asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate balance sheet report")
		return
	}

	logger.Info("Balance sheet report generated",
		slog.Int("asset_accounts", len(report.Assets)),
		slog.Int("liability_accounts", len(report.Liabilities)))
	c.JSON(http.StatusOK, report)
}

// getDayBook godoc
// @Summary Generate day book report
// @Description Lists every journal entry dated on the given day, in creation order
// @Tags reports
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD)" default(current date)
// @Success 200 {array} domain.DayBookEntry
// @Failure 400 {object} map[string]string "Invalid date"
// @Security BearerAuth
// @Router /reports/day-book [get]
func (h *reportingHandler) getDayBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	dateStr := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	entries, err := h.reportingService.DayBook(c.Request.Context(), businessID, date)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate day book report")
		return
	}

	logger.Info("Day book report generated", slog.Int("entry_count", len(entries)))
	c.JSON(http.StatusOK, entries)
}
