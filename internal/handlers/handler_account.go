package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
	"github.com/tradekeep/tradekeep_backend/internal/middleware"
)

// accountHandler handles HTTP requests for the chart of accounts
type accountHandler struct {
	accountService   portssvc.ChartOfAccountsSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

// RegisterAccountRoutes registers chart of accounts routes
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.ChartOfAccountsSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := &accountHandler{accountService: accountService, reportingService: reportingService}

	accountGroup := rg.Group("/accounts")
	{
		accountGroup.POST("", h.createAccount)
		accountGroup.GET("", h.listAccounts)
		accountGroup.GET("/:code", h.getAccount)
		accountGroup.GET("/:code/ledger", h.getLedger)
	}
}

// createAccount godoc
// @Summary Create an account
// @Description Adds an ad hoc account to the tenant's chart of accounts
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Duplicate account code"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create account")
		return
	}

	logger.Info("Account created", slog.String("code", account.Code))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Returns the tenant's full chart of accounts ordered by code
// @Tags accounts
// @Produce json
// @Success 200 {object} dto.ListAccountsResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), businessID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list accounts")
		return
	}

	resp := dto.ListAccountsResponse{Accounts: make([]dto.AccountResponse, len(accounts))}
	for i := range accounts {
		resp.Accounts[i] = dto.ToAccountResponse(&accounts[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getAccount godoc
// @Summary Get an account
// @Description Retrieves one account by its code
// @Tags accounts
// @Produce json
// @Param code path string true "Account code"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{code} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	account, err := h.accountService.GetAccountByCode(c.Request.Context(), businessID, c.Param("code"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getLedger godoc
// @Summary Get an account's ledger
// @Description Returns every journal line for the account, oldest first
// @Tags accounts
// @Produce json
// @Param code path string true "Account code"
// @Success 200 {object} dto.LedgerResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{code}/ledger [get]
func (h *accountHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID, _ := middleware.GetBusinessIDFromContext(c)

	ledger, err := h.reportingService.GetLedger(c.Request.Context(), businessID, c.Param("code"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get ledger")
		return
	}
	c.JSON(http.StatusOK, ledger)
}
