package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tradekeep/tradekeep_backend/internal/apperrors"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portsrepo "github.com/tradekeep/tradekeep_backend/internal/core/ports/repositories"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	query := `
		INSERT INTO payments (payment_id, business_id, invoice_id, customer_id, amount, payment_method, reference, receipt_number, payment_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		payment.PaymentID,
		payment.BusinessID,
		payment.InvoiceID,
		payment.CustomerID,
		payment.Amount,
		payment.PaymentMethod,
		payment.Reference,
		payment.ReceiptNumber,
		payment.PaymentDate,
		payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment %s: %w", payment.PaymentID, err)
	}
	return nil
}

func (r *PgxPaymentRepository) ListPayments(ctx context.Context, businessID string) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, business_id, invoice_id, customer_id, amount, payment_method, reference, receipt_number, payment_date, created_at
		FROM payments
		WHERE business_id = $1
		ORDER BY payment_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(
			&p.PaymentID,
			&p.BusinessID,
			&p.InvoiceID,
			&p.CustomerID,
			&p.Amount,
			&p.PaymentMethod,
			&p.Reference,
			&p.ReceiptNumber,
			&p.PaymentDate,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}

func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, businessID, paymentID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM payments WHERE business_id = $1 AND payment_id = $2;`, businessID, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, paymentID)
	}
	return nil
}
