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

type PgxQuotationRepository struct {
	BaseRepository
}

// newPgxQuotationRepository creates a new repository for quotation data.
func newPgxQuotationRepository(pool *pgxpool.Pool) portsrepo.QuotationRepositoryFacade {
	return &PgxQuotationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.QuotationRepositoryFacade = (*PgxQuotationRepository)(nil)

const quotationColumns = `quotation_id, business_id, quotation_number, customer_id, lead_id, subtotal, discount_percent, discount_amount, tax_percent, tax_amount, total_amount, valid_until, notes, status, created_at, updated_at`

func scanQuotation(row pgx.Row) (domain.Quotation, error) {
	var q domain.Quotation
	err := row.Scan(
		&q.QuotationID,
		&q.BusinessID,
		&q.QuotationNumber,
		&q.CustomerID,
		&q.LeadID,
		&q.Subtotal,
		&q.DiscountPercent,
		&q.DiscountAmount,
		&q.TaxPercent,
		&q.TaxAmount,
		&q.TotalAmount,
		&q.ValidUntil,
		&q.Notes,
		&q.Status,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	return q, err
}

func insertQuotationItems(ctx context.Context, tx pgx.Tx, items []domain.QuotationItem) error {
	query := `
		INSERT INTO quotation_items (item_id, quotation_id, description, width, height, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query,
			item.ItemID,
			item.QuotationID,
			item.Description,
			item.Width,
			item.Height,
			item.Quantity,
			item.UnitPrice,
			item.TotalPrice,
		)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to save quotation item %s: %w", items[i].ItemID, err)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close quotation item batch: %w", err)
	}
	return batchErr
}

// SaveQuotation persists the header and all items in one transaction.
func (r *PgxQuotationRepository) SaveQuotation(ctx context.Context, quotation domain.Quotation, items []domain.QuotationItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO quotations (` + quotationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, query,
		quotation.QuotationID,
		quotation.BusinessID,
		quotation.QuotationNumber,
		quotation.CustomerID,
		quotation.LeadID,
		quotation.Subtotal,
		quotation.DiscountPercent,
		quotation.DiscountAmount,
		quotation.TaxPercent,
		quotation.TaxAmount,
		quotation.TotalAmount,
		quotation.ValidUntil,
		quotation.Notes,
		quotation.Status,
		quotation.CreatedAt,
		quotation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quotation %s: %w", quotation.QuotationID, err)
	}

	if err := insertQuotationItems(ctx, tx, items); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxQuotationRepository) FindQuotationByID(ctx context.Context, businessID, quotationID string) (*domain.Quotation, error) {
	query := `
		SELECT ` + quotationColumns + `
		FROM quotations
		WHERE business_id = $1 AND quotation_id = $2;
	`
	q, err := scanQuotation(r.Pool.QueryRow(ctx, query, businessID, quotationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: quotation %s", apperrors.ErrNotFound, quotationID)
		}
		return nil, fmt.Errorf("failed to find quotation %s: %w", quotationID, err)
	}
	return &q, nil
}

// ListQuotations returns quotations newest-first with their items keyed by
// quotation ID.
func (r *PgxQuotationRepository) ListQuotations(ctx context.Context, businessID string) ([]domain.Quotation, map[string][]domain.QuotationItem, error) {
	query := `
		SELECT ` + quotationColumns + `
		FROM quotations
		WHERE business_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query quotations: %w", err)
	}
	defer rows.Close()

	quotations := []domain.Quotation{}
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan quotation row: %w", err)
		}
		quotations = append(quotations, q)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating quotation rows: %w", err)
	}

	itemQuery := `
		SELECT i.item_id, i.quotation_id, i.description, i.width, i.height, i.quantity, i.unit_price, i.total_price
		FROM quotation_items i
		JOIN quotations q ON i.quotation_id = q.quotation_id
		WHERE q.business_id = $1;
	`
	itemRows, err := r.Pool.Query(ctx, itemQuery, businessID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query quotation items: %w", err)
	}
	defer itemRows.Close()

	itemsByQuotation := make(map[string][]domain.QuotationItem)
	for itemRows.Next() {
		var item domain.QuotationItem
		if err := itemRows.Scan(
			&item.ItemID,
			&item.QuotationID,
			&item.Description,
			&item.Width,
			&item.Height,
			&item.Quantity,
			&item.UnitPrice,
			&item.TotalPrice,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan quotation item row: %w", err)
		}
		itemsByQuotation[item.QuotationID] = append(itemsByQuotation[item.QuotationID], item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating quotation item rows: %w", err)
	}

	return quotations, itemsByQuotation, nil
}

// UpdateQuotation rewrites the header and replaces every item in one transaction.
func (r *PgxQuotationRepository) UpdateQuotation(ctx context.Context, quotation domain.Quotation, items []domain.QuotationItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE quotations
		SET customer_id = $3, lead_id = $4, subtotal = $5, discount_percent = $6, discount_amount = $7, tax_percent = $8, tax_amount = $9, total_amount = $10, valid_until = $11, notes = $12, status = $13, updated_at = $14
		WHERE business_id = $1 AND quotation_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		quotation.BusinessID,
		quotation.QuotationID,
		quotation.CustomerID,
		quotation.LeadID,
		quotation.Subtotal,
		quotation.DiscountPercent,
		quotation.DiscountAmount,
		quotation.TaxPercent,
		quotation.TaxAmount,
		quotation.TotalAmount,
		quotation.ValidUntil,
		quotation.Notes,
		quotation.Status,
		quotation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update quotation %s: %w", quotation.QuotationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: quotation %s", apperrors.ErrNotFound, quotation.QuotationID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM quotation_items WHERE quotation_id = $1;`, quotation.QuotationID); err != nil {
		return fmt.Errorf("failed to clear items for quotation %s: %w", quotation.QuotationID, err)
	}
	if err := insertQuotationItems(ctx, tx, items); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxQuotationRepository) DeleteQuotation(ctx context.Context, businessID, quotationID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM quotations WHERE business_id = $1 AND quotation_id = $2;`, businessID, quotationID)
	if err != nil {
		return fmt.Errorf("failed to delete quotation %s: %w", quotationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: quotation %s", apperrors.ErrNotFound, quotationID)
	}
	return nil
}
