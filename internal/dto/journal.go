package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
)

// JournalLineRequest is one debit-or-credit movement in a posting request.
// Exactly one side is expected to be non-zero.
type JournalLineRequest struct {
	AccountCode string          `json:"accountCode" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// PostJournalEntryRequest creates a manual journal entry.
type PostJournalEntryRequest struct {
	Date        time.Time            `json:"date"`
	Description string               `json:"description" binding:"required"`
	Lines       []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID       string               `json:"entryID"`
	Date          time.Time            `json:"date"`
	Description   string               `json:"description"`
	ReferenceType domain.ReferenceType `json:"referenceType"`
	ReferenceID   string               `json:"referenceID"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		EntryID:       e.EntryID,
		Date:          e.Date,
		Description:   e.Description,
		ReferenceType: e.ReferenceType,
		ReferenceID:   e.ReferenceID,
		CreatedAt:     e.CreatedAt,
	}
}

// GetJournalEntryResponse combines an entry with its lines.
type GetJournalEntryResponse struct {
	Entry JournalEntryResponse `json:"entry"`
	Lines []domain.JournalLine `json:"lines"`
}
