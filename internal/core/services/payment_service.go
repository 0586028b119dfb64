package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tradekeep/tradekeep_backend/internal/apperrors"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portsrepo "github.com/tradekeep/tradekeep_backend/internal/core/ports/repositories"
	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
	"github.com/tradekeep/tradekeep_backend/internal/middleware"
)

type paymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	accountSvc  portssvc.ChartOfAccountsSvcFacade
	postingSvc  portssvc.PostingSvcFacade
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	accountSvc portssvc.ChartOfAccountsSvcFacade,
	postingSvc portssvc.PostingSvcFacade,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		accountSvc:  accountSvc,
		postingSvc:  postingSvc,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordPayment settles part or all of an invoice. Overpayment is rejected
// before any write. The payment row, its journal entry and the invoice's
// settlement columns move together; posting failure deletes the payment again.
func (s *paymentService) RecordPayment(ctx context.Context, businessID string, req dto.RecordPaymentRequest, creatorUserID string) (*dto.RecordPaymentResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, businessID, req.InvoiceID)
	if err != nil {
		return nil, err
	}

	if req.Amount.GreaterThan(invoice.BalanceAmount) {
		return nil, fmt.Errorf("%w: payment %s exceeds outstanding balance %s",
			apperrors.ErrValidation, req.Amount.StringFixed(2), invoice.BalanceAmount.StringFixed(2))
	}

	settlementCode, err := s.accountSvc.AccountForPaymentMode(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID:     uuid.NewString(),
		BusinessID:    businessID,
		InvoiceID:     invoice.InvoiceID,
		CustomerID:    invoice.CustomerID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
		ReceiptNumber: documentNumber("RCPT", now),
		PaymentDate:   now,
		CreatedAt:     now,
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		return nil, err
	}

	_, err = s.postingSvc.PostJournalEntry(ctx, businessID, portssvc.PostJournalEntryInput{
		Date:          now,
		Description:   fmt.Sprintf("Payment %s for invoice %s", payment.ReceiptNumber, invoice.InvoiceNumber),
		ReferenceType: domain.RefPayment,
		ReferenceID:   payment.PaymentID,
		Lines: []portssvc.JournalLineInput{
			{AccountCode: settlementCode, Debit: req.Amount},
			{AccountCode: accountsReceivableCode, Credit: req.Amount},
		},
	})
	if err != nil {
		if delErr := s.paymentRepo.DeletePayment(ctx, businessID, payment.PaymentID); delErr != nil {
			logger.Error("Failed to roll back payment after posting failure",
				slog.String("payment_id", payment.PaymentID),
				slog.String("error", delErr.Error()))
		}
		return nil, fmt.Errorf("failed to post payment journal entry: %w", err)
	}

	paid := invoice.PaidAmount.Add(req.Amount)
	balance := invoice.TotalAmount.Sub(paid)
	status := domain.InvoicePartiallyPaid
	if balance.IsZero() {
		status = domain.InvoicePaid
	}

	if err := s.invoiceRepo.UpdateInvoicePayment(ctx, businessID, invoice.InvoiceID, paid, balance, status, now); err != nil {
		logger.Error("Payment posted but invoice settlement update failed",
			slog.String("payment_id", payment.PaymentID),
			slog.String("invoice_id", invoice.InvoiceID),
			slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("receipt_number", payment.ReceiptNumber),
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("status", string(status)))

	return &dto.RecordPaymentResponse{
		ReceiptNumber: payment.ReceiptNumber,
		PaidAmount:    paid,
		BalanceAmount: balance,
		Status:        string(status),
	}, nil
}

func (s *paymentService) ListPayments(ctx context.Context, businessID string) ([]domain.Payment, error) {
	return s.paymentRepo.ListPayments(ctx, businessID)
}
