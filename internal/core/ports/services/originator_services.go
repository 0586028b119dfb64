package services

import (
	"context"

	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
)

// InvoiceSvcFacade issues invoices and posts their journal entries.
type InvoiceSvcFacade interface {
	// CreateInvoice validates, persists the invoice with its items, then
	// posts the journal entry. On posting failure the invoice is deleted
	// again and the error surfaces as the operation's failure.
	CreateInvoice(ctx context.Context, businessID string, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)

	GetInvoiceByID(ctx context.Context, businessID, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, businessID string, params dto.ListParams) (*dto.ListInvoicesResponse, error)
}

// PaymentSvcFacade records payments against invoices.
type PaymentSvcFacade interface {
	// RecordPayment rejects overpayment before any write, persists the
	// payment, posts its journal entry (compensating-delete on failure) and
	// updates the invoice's settlement columns.
	RecordPayment(ctx context.Context, businessID string, req dto.RecordPaymentRequest, creatorUserID string) (*dto.RecordPaymentResponse, error)

	ListPayments(ctx context.Context, businessID string) ([]domain.Payment, error)
}

// ExpenseSvcFacade records expenses and runs their approval workflow.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, businessID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, businessID string, params dto.ListParams) (*dto.ListExpensesResponse, error)
	UpdateExpense(ctx context.Context, businessID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, businessID, expenseID string) error
	ApproveExpense(ctx context.Context, businessID, expenseID, approverUserID string) (*domain.Expense, error)

	// RejectExpense flips a pending expense to rejected and deletes its
	// journal entries (compensating reversal).
	RejectExpense(ctx context.Context, businessID, expenseID, rejecterUserID, reason string) (*domain.Expense, error)
}
