package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
)

// JournalLineInput is one requested debit-or-credit movement, referencing an
// account by its tenant-scoped code.
type JournalLineInput struct {
	AccountCode string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// PostJournalEntryInput is the posting engine's request. Every
// ledger-affecting event in the system is expressed as one of these.
type PostJournalEntryInput struct {
	Date          time.Time
	Description   string
	ReferenceType domain.ReferenceType
	ReferenceID   string
	Lines         []JournalLineInput
}

// PostingSvcFacade is the single choke point through which every
// ledger-affecting event passes.
type PostingSvcFacade interface {
	// PostJournalEntry validates (≥2 lines, balanced to 2dp, all account
	// codes resolvable) and atomically persists the entry with its lines.
	// Fails with *apperrors.AccountResolutionError or
	// *apperrors.UnbalancedEntryError; no rows persist on any failure.
	PostJournalEntry(ctx context.Context, businessID string, input PostJournalEntryInput) (*domain.JournalEntry, error)

	// GetJournalEntry retrieves one entry with its lines.
	GetJournalEntry(ctx context.Context, businessID, entryID string) (*domain.JournalEntry, []domain.JournalLine, error)

	// ReverseByReference deletes every entry posted for the given
	// originating object (compensating reversal, not an offsetting entry).
	ReverseByReference(ctx context.Context, businessID string, refType domain.ReferenceType, refID string) error
}
