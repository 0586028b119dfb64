package repositories

import (
	"context"

	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
)

// JournalRepositoryFacade defines persistence operations for journal entries
// and their lines. Entry+lines always move together.
type JournalRepositoryFacade interface {
	// SaveEntry persists the entry and all of its lines atomically. Either
	// every row exists afterwards or none does.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	// FindEntryByID retrieves a journal entry scoped to the tenant.
	FindEntryByID(ctx context.Context, businessID, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves the lines of one entry.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// DeleteEntriesByReference removes every entry (with its lines) that was
	// produced by the given originating object. Returns the number of
	// entries removed. Used for compensating reversal.
	DeleteEntriesByReference(ctx context.Context, businessID string, refType domain.ReferenceType, refID string) (int64, error)
}
