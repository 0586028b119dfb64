package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tradekeep/tradekeep_backend/internal/apperrors"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portsrepo "github.com/tradekeep/tradekeep_backend/internal/core/ports/repositories"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, business_id, customer_id, quotation_id, invoice_number, subtotal, tax_percent, tax_amount, total_amount, paid_amount, balance_amount, status, due_date, is_gst_invoice, notes, created_at, updated_at`

func scanInvoice(row pgx.Row) (domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(
		&inv.InvoiceID,
		&inv.BusinessID,
		&inv.CustomerID,
		&inv.QuotationID,
		&inv.InvoiceNumber,
		&inv.Subtotal,
		&inv.TaxPercent,
		&inv.TaxAmount,
		&inv.TotalAmount,
		&inv.PaidAmount,
		&inv.BalanceAmount,
		&inv.Status,
		&inv.DueDate,
		&inv.IsGSTInvoice,
		&inv.Notes,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	return inv, err
}

// SaveInvoice persists the invoice and all items in one transaction.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, items []domain.InvoiceItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = tx.Exec(ctx, query,
		invoice.InvoiceID,
		invoice.BusinessID,
		invoice.CustomerID,
		invoice.QuotationID,
		invoice.InvoiceNumber,
		invoice.Subtotal,
		invoice.TaxPercent,
		invoice.TaxAmount,
		invoice.TotalAmount,
		invoice.PaidAmount,
		invoice.BalanceAmount,
		invoice.Status,
		invoice.DueDate,
		invoice.IsGSTInvoice,
		invoice.Notes,
		invoice.CreatedAt,
		invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice for quotation %s already exists", apperrors.ErrDuplicate, invoice.QuotationID)
		}
		return fmt.Errorf("failed to save invoice %s: %w", invoice.InvoiceID, err)
	}

	itemQuery := `
		INSERT INTO invoice_items (item_id, invoice_id, description, quantity, unit_price, total)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(itemQuery, item.ItemID, item.InvoiceID, item.Description, item.Quantity, item.UnitPrice, item.Total)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to save invoice item %s: %w", items[i].ItemID, err)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close invoice item batch: %w", err)
	}
	if batchErr != nil {
		return batchErr
	}

	return r.Commit(ctx, tx)
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, businessID, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE business_id = $1 AND invoice_id = $2;
	`
	inv, err := scanInvoice(r.Pool.QueryRow(ctx, query, businessID, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}
	return &inv, nil
}

func (r *PgxInvoiceRepository) FindInvoiceByQuotationID(ctx context.Context, businessID, quotationID string) (*domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE business_id = $1 AND quotation_id = $2;
	`
	inv, err := scanInvoice(r.Pool.QueryRow(ctx, query, businessID, quotationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no invoice for quotation %s", apperrors.ErrNotFound, quotationID)
		}
		return nil, fmt.Errorf("failed to find invoice by quotation %s: %w", quotationID, err)
	}
	return &inv, nil
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, businessID string, limit, offset int) ([]domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE business_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) CountInvoices(ctx context.Context, businessID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE business_id = $1;`, businessID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}

func (r *PgxInvoiceRepository) UpdateInvoicePayment(ctx context.Context, businessID, invoiceID string, paid, balance decimal.Decimal, status domain.InvoiceStatus, updatedAt time.Time) error {
	query := `
		UPDATE invoices
		SET paid_amount = $3, balance_amount = $4, status = $5, updated_at = $6
		WHERE business_id = $1 AND invoice_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, businessID, invoiceID, paid, balance, status, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update settlement for invoice %s: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
	}
	return nil
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, businessID, invoiceID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE business_id = $1 AND invoice_id = $2;`, businessID, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
	}
	return nil
}
