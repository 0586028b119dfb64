package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tradekeep/tradekeep_backend/internal/apperrors"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portsrepo "github.com/tradekeep/tradekeep_backend/internal/core/ports/repositories"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveEntry persists the entry and its lines in one transaction. Either every
// row exists afterwards or none does.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	entryQuery := `
		INSERT INTO journal_entries (entry_id, business_id, entry_date, description, reference_type, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, entryQuery,
		entry.EntryID,
		entry.BusinessID,
		entry.Date,
		entry.Description,
		entry.ReferenceType,
		entry.ReferenceID,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save journal entry %s: %w", entry.EntryID, err)
	}

	lineQuery := `
		INSERT INTO journal_lines (line_id, entry_id, account_id, debit, credit)
		VALUES ($1, $2, $3, $4, $5);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		batch.Queue(lineQuery, line.LineID, line.EntryID, line.AccountID, line.Debit, line.Credit)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to save journal line %s: %w", lines[i].LineID, err)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close journal line batch: %w", err)
	}
	if batchErr != nil {
		return batchErr
	}

	return r.Commit(ctx, tx)
}

func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, businessID, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT entry_id, business_id, entry_date, description, reference_type, reference_id, created_at
		FROM journal_entries
		WHERE business_id = $1 AND entry_id = $2;
	`
	var entry domain.JournalEntry
	err := r.Pool.QueryRow(ctx, query, businessID, entryID).Scan(
		&entry.EntryID,
		&entry.BusinessID,
		&entry.Date,
		&entry.Description,
		&entry.ReferenceType,
		&entry.ReferenceID,
		&entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}
	return &entry, nil
}

func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, account_id, debit, credit
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	for rows.Next() {
		var line domain.JournalLine
		if err := rows.Scan(&line.LineID, &line.EntryID, &line.AccountID, &line.Debit, &line.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}
	return lines, nil
}

// DeleteEntriesByReference removes every entry produced by the originating
// object. Lines cascade with their entry.
func (r *PgxJournalRepository) DeleteEntriesByReference(ctx context.Context, businessID string, refType domain.ReferenceType, refID string) (int64, error) {
	query := `
		DELETE FROM journal_entries
		WHERE business_id = $1 AND reference_type = $2 AND reference_id = $3;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, businessID, refType, refID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete journal entries for %s %s: %w", refType, refID, err)
	}
	return cmdTag.RowsAffected(), nil
}
