package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
)

// InvoiceRepositoryFacade defines persistence operations for invoices.
type InvoiceRepositoryFacade interface {
	// SaveInvoice persists the invoice and all items atomically.
	SaveInvoice(ctx context.Context, invoice domain.Invoice, items []domain.InvoiceItem) error

	FindInvoiceByID(ctx context.Context, businessID, invoiceID string) (*domain.Invoice, error)

	// FindInvoiceByQuotationID is used for the one-invoice-per-quotation check.
	FindInvoiceByQuotationID(ctx context.Context, businessID, quotationID string) (*domain.Invoice, error)

	ListInvoices(ctx context.Context, businessID string, limit, offset int) ([]domain.Invoice, error)
	CountInvoices(ctx context.Context, businessID string) (int64, error)

	// UpdateInvoicePayment adjusts the settlement columns after a payment.
	UpdateInvoicePayment(ctx context.Context, businessID, invoiceID string, paid, balance decimal.Decimal, status domain.InvoiceStatus, updatedAt time.Time) error

	// DeleteInvoice removes the invoice; items cascade. Used as the
	// compensating action when journal posting fails.
	DeleteInvoice(ctx context.Context, businessID, invoiceID string) error
}

// PaymentRepositoryFacade defines persistence operations for payments.
type PaymentRepositoryFacade interface {
	SavePayment(ctx context.Context, payment domain.Payment) error
	ListPayments(ctx context.Context, businessID string) ([]domain.Payment, error)

	// DeletePayment is the compensating action when journal posting fails.
	DeletePayment(ctx context.Context, businessID, paymentID string) error
}
