package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tradekeep/tradekeep_backend/internal/apperrors"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
)

const defaultPageSize = 20

// respondServiceError maps service failures onto HTTP responses. Ledger
// validation failures carry their details in the body so the caller can see
// which accounts were missing or how far out of balance the entry was.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var resErr *apperrors.AccountResolutionError
	var balErr *apperrors.UnbalancedEntryError

	switch {
	case errors.As(err, &resErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":        "Unknown account codes",
			"missingCodes": resErr.MissingCodes,
		})
	case errors.As(err, &balErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       "Journal entry is not balanced",
			"debitTotal":  balErr.DebitTotal.StringFixed(2),
			"creditTotal": balErr.CreditTotal.StringFixed(2),
		})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// listParamsFromQuery reads page/limit query parameters.
func listParamsFromQuery(c *gin.Context) dto.ListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	return dto.NormalizeListParams(page, limit, defaultPageSize)
}
