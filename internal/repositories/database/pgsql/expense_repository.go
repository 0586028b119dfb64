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

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, business_id, expense_number, category, vendor_name, amount, description, expense_date, payment_mode, reference, notes, status, created_by, approved_by, approved_at, rejected_by, rejected_at, rejection_reason, created_at, updated_at`

func scanExpense(row pgx.Row) (domain.Expense, error) {
	var e domain.Expense
	err := row.Scan(
		&e.ExpenseID,
		&e.BusinessID,
		&e.ExpenseNumber,
		&e.Category,
		&e.VendorName,
		&e.Amount,
		&e.Description,
		&e.ExpenseDate,
		&e.PaymentMode,
		&e.Reference,
		&e.Notes,
		&e.Status,
		&e.CreatedBy,
		&e.ApprovedBy,
		&e.ApprovedAt,
		&e.RejectedBy,
		&e.RejectedAt,
		&e.RejectionReason,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := r.Pool.Exec(ctx, query,
		expense.ExpenseID,
		expense.BusinessID,
		expense.ExpenseNumber,
		expense.Category,
		expense.VendorName,
		expense.Amount,
		expense.Description,
		expense.ExpenseDate,
		expense.PaymentMode,
		expense.Reference,
		expense.Notes,
		expense.Status,
		expense.CreatedBy,
		expense.ApprovedBy,
		expense.ApprovedAt,
		expense.RejectedBy,
		expense.RejectedAt,
		expense.RejectionReason,
		expense.CreatedAt,
		expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", expense.ExpenseID, err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, businessID, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE business_id = $1 AND expense_id = $2;
	`
	e, err := scanExpense(r.Pool.QueryRow(ctx, query, businessID, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	return &e, nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, businessID string, limit, offset int) ([]domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE business_id = $1
		ORDER BY expense_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return expenses, nil
}

func (r *PgxExpenseRepository) CountExpenses(ctx context.Context, businessID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM expenses WHERE business_id = $1;`, businessID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return count, nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		UPDATE expenses
		SET category = $3, vendor_name = $4, amount = $5, description = $6, expense_date = $7, payment_mode = $8, reference = $9, notes = $10, status = $11, approved_by = $12, approved_at = $13, rejected_by = $14, rejected_at = $15, rejection_reason = $16, updated_at = $17
		WHERE business_id = $1 AND expense_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		expense.BusinessID,
		expense.ExpenseID,
		expense.Category,
		expense.VendorName,
		expense.Amount,
		expense.Description,
		expense.ExpenseDate,
		expense.PaymentMode,
		expense.Reference,
		expense.Notes,
		expense.Status,
		expense.ApprovedBy,
		expense.ApprovedAt,
		expense.RejectedBy,
		expense.RejectedAt,
		expense.RejectionReason,
		expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", expense.ExpenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expense.ExpenseID)
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, businessID, expenseID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE business_id = $1 AND expense_id = $2;`, businessID, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
	}
	return nil
}
