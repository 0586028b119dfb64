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

type PgxLeadRepository struct {
	BaseRepository
}

// newPgxLeadRepository creates a new repository for lead data.
func newPgxLeadRepository(pool *pgxpool.Pool) portsrepo.LeadRepositoryFacade {
	return &PgxLeadRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LeadRepositoryFacade = (*PgxLeadRepository)(nil)

const leadColumns = `lead_id, business_id, assigned_to, name, phone, email, address, location, source, status, follow_up_date, notes, created_at, updated_at`

func scanLead(row pgx.Row) (domain.Lead, error) {
	var l domain.Lead
	err := row.Scan(
		&l.LeadID,
		&l.BusinessID,
		&l.AssignedTo,
		&l.Name,
		&l.Phone,
		&l.Email,
		&l.Address,
		&l.Location,
		&l.Source,
		&l.Status,
		&l.FollowUpDate,
		&l.Notes,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

func (r *PgxLeadRepository) SaveLead(ctx context.Context, lead domain.Lead) error {
	query := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		lead.LeadID,
		lead.BusinessID,
		lead.AssignedTo,
		lead.Name,
		lead.Phone,
		lead.Email,
		lead.Address,
		lead.Location,
		lead.Source,
		lead.Status,
		lead.FollowUpDate,
		lead.Notes,
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save lead %s: %w", lead.LeadID, err)
	}
	return nil
}

func (r *PgxLeadRepository) FindLeadByID(ctx context.Context, businessID, leadID string) (*domain.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE business_id = $1 AND lead_id = $2;
	`
	l, err := scanLead(r.Pool.QueryRow(ctx, query, businessID, leadID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: lead %s", apperrors.ErrNotFound, leadID)
		}
		return nil, fmt.Errorf("failed to find lead %s: %w", leadID, err)
	}
	return &l, nil
}

func (r *PgxLeadRepository) ListLeads(ctx context.Context, businessID string, limit, offset int) ([]domain.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE business_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	leads := []domain.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead row: %w", err)
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lead rows: %w", err)
	}
	return leads, nil
}

func (r *PgxLeadRepository) CountLeads(ctx context.Context, businessID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM leads WHERE business_id = $1;`, businessID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return count, nil
}

func (r *PgxLeadRepository) UpdateLead(ctx context.Context, lead domain.Lead) error {
	query := `
		UPDATE leads
		SET name = $3, phone = $4, email = $5, address = $6, location = $7, source = $8, status = $9, follow_up_date = $10, notes = $11, updated_at = $12
		WHERE business_id = $1 AND lead_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		lead.BusinessID,
		lead.LeadID,
		lead.Name,
		lead.Phone,
		lead.Email,
		lead.Address,
		lead.Location,
		lead.Source,
		lead.Status,
		lead.FollowUpDate,
		lead.Notes,
		lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update lead %s: %w", lead.LeadID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: lead %s", apperrors.ErrNotFound, lead.LeadID)
	}
	return nil
}

func (r *PgxLeadRepository) UpdateLeadStatus(ctx context.Context, businessID, leadID string, status domain.LeadStatus) error {
	query := `
		UPDATE leads
		SET status = $3, updated_at = NOW()
		WHERE business_id = $1 AND lead_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, businessID, leadID, status)
	if err != nil {
		return fmt.Errorf("failed to update status for lead %s: %w", leadID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: lead %s", apperrors.ErrNotFound, leadID)
	}
	return nil
}

func (r *PgxLeadRepository) DeleteLead(ctx context.Context, businessID, leadID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM leads WHERE business_id = $1 AND lead_id = $2;`, businessID, leadID)
	if err != nil {
		return fmt.Errorf("failed to delete lead %s: %w", leadID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: lead %s", apperrors.ErrNotFound, leadID)
	}
	return nil
}

func (r *PgxLeadRepository) SaveLeadNote(ctx context.Context, note domain.LeadNote) error {
	query := `
		INSERT INTO lead_notes (note_id, business_id, lead_id, user_id, note, note_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		note.NoteID,
		note.BusinessID,
		note.LeadID,
		note.UserID,
		note.Note,
		note.NoteDate,
		note.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save note for lead %s: %w", note.LeadID, err)
	}
	return nil
}

func (r *PgxLeadRepository) ListLeadNotes(ctx context.Context, businessID, leadID string) ([]domain.LeadNote, error) {
	query := `
		SELECT note_id, business_id, lead_id, user_id, note, note_date, created_at
		FROM lead_notes
		WHERE business_id = $1 AND lead_id = $2
		ORDER BY note_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes for lead %s: %w", leadID, err)
	}
	defer rows.Close()

	notes := []domain.LeadNote{}
	for rows.Next() {
		var n domain.LeadNote
		if err := rows.Scan(&n.NoteID, &n.BusinessID, &n.LeadID, &n.UserID, &n.Note, &n.NoteDate, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lead note row: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lead note rows: %w", err)
	}
	return notes, nil
}
