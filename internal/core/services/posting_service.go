package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradekeep/tradekeep_backend/internal/apperrors"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portsrepo "github.com/tradekeep/tradekeep_backend/internal/core/ports/repositories"
	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/middleware"
)

var (
	ErrEntryMinLines      = errors.New("journal entry must have at least two lines")
	ErrLineNegativeAmount = errors.New("journal line amounts must not be negative")
	ErrLineEmpty          = errors.New("journal line must carry a debit or a credit")
)

// postingService is the single choke point for ledger writes. Every
// invoice, payment, expense and manual entry goes through PostJournalEntry.
type postingService struct {
	accountSvc  portssvc.ChartOfAccountsSvcFacade
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewPostingService creates a new posting engine.
func NewPostingService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.ChartOfAccountsSvcFacade) portssvc.PostingSvcFacade {
	return &postingService{
		accountSvc:  accountSvc,
		journalRepo: journalRepo,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// validateLines checks line-level preconditions and the balance invariant.
// Debit and credit totals must match to 2 decimal places.
func validateLines(lines []portssvc.JournalLineInput) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: got %d", ErrEntryMinLines, len(lines))
	}

	debitTotal := decimal.Zero
	creditTotal := decimal.Zero
	for i, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w: line %d (account %s)", ErrLineNegativeAmount, i, line.AccountCode)
		}
		if line.Debit.IsZero() && line.Credit.IsZero() {
			return fmt.Errorf("%w: line %d (account %s)", ErrLineEmpty, i, line.AccountCode)
		}
		debitTotal = debitTotal.Add(line.Debit)
		creditTotal = creditTotal.Add(line.Credit)
	}

	if !debitTotal.Round(2).Equal(creditTotal.Round(2)) {
		return &apperrors.UnbalancedEntryError{DebitTotal: debitTotal, CreditTotal: creditTotal}
	}
	return nil
}

// PostJournalEntry resolves accounts, validates balance and atomically
// persists the entry with its lines. On any failure no rows persist.
func (s *postingService) PostJournalEntry(ctx context.Context, businessID string, input portssvc.PostJournalEntryInput) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// 1. Resolve every referenced code first; a miss lists all of them.
	codes := make([]string, 0, len(input.Lines))
	for _, line := range input.Lines {
		codes = append(codes, line.AccountCode)
	}
	accounts, err := s.accountSvc.ResolveAccounts(ctx, businessID, codes)
	if err != nil {
		var resErr *apperrors.AccountResolutionError
		if errors.As(err, &resErr) {
			logger.Warn("Journal entry references unknown accounts",
				slog.String("business_id", businessID),
				slog.Any("missing_codes", resErr.MissingCodes))
		}
		return nil, err
	}

	// 2. Validate the balance invariant before touching the store.
	if err := validateLines(input.Lines); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	entry := domain.JournalEntry{
		EntryID:       uuid.NewString(),
		BusinessID:    businessID,
		Date:          date,
		Description:   input.Description,
		ReferenceType: input.ReferenceType,
		ReferenceID:   input.ReferenceID,
		CreatedAt:     time.Now().UTC(),
	}

	lines := make([]domain.JournalLine, len(input.Lines))
	for i, line := range input.Lines {
		lines[i] = domain.JournalLine{
			LineID:    uuid.NewString(),
			EntryID:   entry.EntryID,
			AccountID: accounts[line.AccountCode].AccountID,
			Debit:     line.Debit,
			Credit:    line.Credit,
		}
	}

	// 3. Entry + lines persist in one store transaction.
	if err := s.journalRepo.SaveEntry(ctx, entry, lines); err != nil {
		logger.Error("Failed to persist journal entry",
			slog.String("entry_id", entry.EntryID),
			slog.String("reference_type", string(entry.ReferenceType)),
			slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Journal entry posted",
		slog.String("entry_id", entry.EntryID),
		slog.String("reference_type", string(entry.ReferenceType)),
		slog.String("reference_id", entry.ReferenceID),
		slog.Int("line_count", len(lines)))
	return &entry, nil
}

// GetJournalEntry retrieves one entry with its lines.
func (s *postingService) GetJournalEntry(ctx context.Context, businessID, entryID string) (*domain.JournalEntry, []domain.JournalLine, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, businessID, entryID)
	if err != nil {
		return nil, nil, err
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch lines for entry %s: %w", entryID, err)
	}
	return entry, lines, nil
}

// ReverseByReference deletes every entry posted for the originating object.
// Runs to completion once started; a half-reversed entry would violate the
// ledger invariant permanently.
func (s *postingService) ReverseByReference(ctx context.Context, businessID string, refType domain.ReferenceType, refID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	deleted, err := s.journalRepo.DeleteEntriesByReference(ctx, businessID, refType, refID)
	if err != nil {
		logger.Error("Failed to delete journal entries by reference",
			slog.String("reference_type", string(refType)),
			slog.String("reference_id", refID),
			slog.String("error", err.Error()))
		return err
	}

	logger.Info("Journal entries reversed",
		slog.String("reference_type", string(refType)),
		slog.String("reference_id", refID),
		slog.Int64("entries_deleted", deleted))
	return nil
}
