package repositories

import (
	"context"

	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
)

// ExpenseRepositoryFacade defines persistence operations for expenses.
type ExpenseRepositoryFacade interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	FindExpenseByID(ctx context.Context, businessID, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, businessID string, limit, offset int) ([]domain.Expense, error)
	CountExpenses(ctx context.Context, businessID string) (int64, error)

	// UpdateExpense rewrites the mutable columns, including workflow fields.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes the row. Used both for user deletes and as the
	// compensating action when journal posting fails.
	DeleteExpense(ctx context.Context, businessID, expenseID string) error
}
