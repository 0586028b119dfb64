package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradekeep/tradekeep_backend/internal/apperrors"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portsrepo "github.com/tradekeep/tradekeep_backend/internal/core/ports/repositories"
	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
	"github.com/tradekeep/tradekeep_backend/internal/middleware"
)

const (
	accountsReceivableCode = "1003"
	salesCode              = "4001"
	taxPayableCode         = "2001"
)

type invoiceService struct {
	invoiceRepo   portsrepo.InvoiceRepositoryFacade
	quotationRepo portsrepo.QuotationRepositoryFacade
	customerRepo  portsrepo.CustomerRepositoryFacade
	postingSvc    portssvc.PostingSvcFacade
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	quotationRepo portsrepo.QuotationRepositoryFacade,
	customerRepo portsrepo.CustomerRepositoryFacade,
	postingSvc portssvc.PostingSvcFacade,
) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo:   invoiceRepo,
		quotationRepo: quotationRepo,
		customerRepo:  customerRepo,
		postingSvc:    postingSvc,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// documentNumber builds human-readable numbers like INV-2026-1756600000000.
func documentNumber(prefix string, at time.Time) string {
	return fmt.Sprintf("%s-%d-%d", prefix, at.Year(), at.UnixMilli())
}

// CreateInvoice persists the invoice, then posts its journal entry. If
// posting fails the invoice is deleted again so neither side survives alone.
func (s *invoiceService) CreateInvoice(ctx context.Context, businessID string, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.CustomerID == "" && req.QuotationID == "" {
		return nil, fmt.Errorf("%w: either customerId or quotationId is required", apperrors.ErrValidation)
	}
	if !req.Subtotal.IsPositive() {
		return nil, fmt.Errorf("%w: subtotal must be positive", apperrors.ErrValidation)
	}
	if req.TaxPercent.IsNegative() {
		return nil, fmt.Errorf("%w: taxPercent must not be negative", apperrors.ErrValidation)
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: dueDate must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	customerID := req.CustomerID
	if req.QuotationID != "" {
		// One invoice per quotation.
		existing, err := s.invoiceRepo.FindInvoiceByQuotationID(ctx, businessID, req.QuotationID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: quotation %s already has invoice %s", apperrors.ErrDuplicate, req.QuotationID, existing.InvoiceNumber)
		}

		quotation, err := s.quotationRepo.FindQuotationByID(ctx, businessID, req.QuotationID)
		if err != nil {
			return nil, err
		}
		if customerID == "" {
			customerID = quotation.CustomerID
		}
	}
	if customerID == "" {
		return nil, fmt.Errorf("%w: quotation has no customer; pass customerId explicitly", apperrors.ErrValidation)
	}
	if _, err := s.customerRepo.FindCustomerByID(ctx, businessID, customerID); err != nil {
		return nil, err
	}

	// Only GST invoices carry tax; the Tax Payable line exists only for them.
	taxAmount := decimal.Zero
	if req.IsGSTInvoice {
		taxAmount = req.Subtotal.Mul(req.TaxPercent).Div(decimal.NewFromInt(100)).Round(2)
	}
	totalAmount := req.Subtotal.Add(taxAmount)

	now := time.Now().UTC()
	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		BusinessID:    businessID,
		CustomerID:    customerID,
		QuotationID:   req.QuotationID,
		InvoiceNumber: documentNumber("INV", now),
		Subtotal:      req.Subtotal,
		TaxPercent:    req.TaxPercent,
		TaxAmount:     taxAmount,
		TotalAmount:   totalAmount,
		PaidAmount:    decimal.Zero,
		BalanceAmount: totalAmount,
		Status:        domain.InvoicePending,
		DueDate:       dueDate,
		IsGSTInvoice:  req.IsGSTInvoice,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	items := make([]domain.InvoiceItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.InvoiceItem{
			ItemID:      uuid.NewString(),
			InvoiceID:   invoice.InvoiceID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Quantity.Mul(item.UnitPrice).Round(2),
		}
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice, items); err != nil {
		return nil, err
	}

	lines := []portssvc.JournalLineInput{
		{AccountCode: accountsReceivableCode, Debit: totalAmount},
		{AccountCode: salesCode, Credit: req.Subtotal},
	}
	if taxAmount.IsPositive() {
		lines = append(lines, portssvc.JournalLineInput{AccountCode: taxPayableCode, Credit: taxAmount})
	}

	_, err = s.postingSvc.PostJournalEntry(ctx, businessID, portssvc.PostJournalEntryInput{
		Date:          now,
		Description:   fmt.Sprintf("Invoice %s", invoice.InvoiceNumber),
		ReferenceType: domain.RefInvoice,
		ReferenceID:   invoice.InvoiceID,
		Lines:         lines,
	})
	if err != nil {
		// Compensate: the invoice row must not outlive its failed posting.
		if delErr := s.invoiceRepo.DeleteInvoice(ctx, businessID, invoice.InvoiceID); delErr != nil {
			logger.Error("Failed to roll back invoice after posting failure",
				slog.String("invoice_id", invoice.InvoiceID),
				slog.String("error", delErr.Error()))
		}
		return nil, fmt.Errorf("failed to post invoice journal entry: %w", err)
	}

	logger.Info("Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("total_amount", totalAmount.StringFixed(2)))
	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, businessID, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, businessID, invoiceID)
}

func (s *invoiceService) ListInvoices(ctx context.Context, businessID string, params dto.ListParams) (*dto.ListInvoicesResponse, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx, businessID, params.Limit, params.Offset())
	if err != nil {
		return nil, err
	}
	total, err := s.invoiceRepo.CountInvoices(ctx, businessID)
	if err != nil {
		return nil, err
	}

	data := make([]dto.InvoiceResponse, len(invoices))
	for i := range invoices {
		data[i] = dto.ToInvoiceResponse(&invoices[i])
	}
	return &dto.ListInvoicesResponse{
		Data:       data,
		Pagination: dto.NewPagination(params, total),
	}, nil
}
