package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradekeep/tradekeep_backend/internal/apperrors"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portsrepo "github.com/tradekeep/tradekeep_backend/internal/core/ports/repositories"
	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
)

var hundred = decimal.NewFromInt(100)

type quotationService struct {
	quotationRepo portsrepo.QuotationRepositoryFacade
}

// NewQuotationService creates a new quotation service.
func NewQuotationService(quotationRepo portsrepo.QuotationRepositoryFacade) portssvc.QuotationSvcFacade {
	return &quotationService{quotationRepo: quotationRepo}
}

var _ portssvc.QuotationSvcFacade = (*quotationService)(nil)

// quotationTotals applies discount before tax:
// total = (subtotal - discount) + tax on the discounted base.
func quotationTotals(subtotal, discountPercent, taxPercent decimal.Decimal) (discountAmount, taxAmount, totalAmount decimal.Decimal) {
	discountAmount = subtotal.Mul(discountPercent).Div(hundred).Round(2)
	taxable := subtotal.Sub(discountAmount)
	taxAmount = taxable.Mul(taxPercent).Div(hundred).Round(2)
	totalAmount = taxable.Add(taxAmount)
	return
}

func buildQuotationItems(quotationID string, reqItems []dto.QuotationItemRequest) []domain.QuotationItem {
	items := make([]domain.QuotationItem, len(reqItems))
	for i, item := range reqItems {
		items[i] = domain.QuotationItem{
			ItemID:      uuid.NewString(),
			QuotationID: quotationID,
			Description: item.Description,
			Width:       item.Width,
			Height:      item.Height,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		}
	}
	return items
}

func (s *quotationService) CreateQuotation(ctx context.Context, businessID string, req dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	if req.CustomerID == "" && req.LeadID == "" {
		return nil, fmt.Errorf("%w: either customerId or leadId is required", apperrors.ErrValidation)
	}
	if !req.Subtotal.IsPositive() {
		return nil, fmt.Errorf("%w: subtotal must be positive", apperrors.ErrValidation)
	}

	validUntil, err := parseOptionalDate(req.ValidUntil)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.QuotationDraft
	}

	discountAmount, taxAmount, totalAmount := quotationTotals(req.Subtotal, req.DiscountPercent, req.TaxPercent)

	now := time.Now().UTC()
	quotation := domain.Quotation{
		QuotationID:     uuid.NewString(),
		BusinessID:      businessID,
		QuotationNumber: documentNumber("QT", now),
		CustomerID:      req.CustomerID,
		LeadID:          req.LeadID,
		Subtotal:        req.Subtotal,
		DiscountPercent: req.DiscountPercent,
		DiscountAmount:  discountAmount,
		TaxPercent:      req.TaxPercent,
		TaxAmount:       taxAmount,
		TotalAmount:     totalAmount,
		ValidUntil:      validUntil,
		Notes:           req.Notes,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	items := buildQuotationItems(quotation.QuotationID, req.Items)

	if err := s.quotationRepo.SaveQuotation(ctx, quotation, items); err != nil {
		return nil, err
	}

	resp := dto.ToQuotationResponse(&quotation, items)
	return &resp, nil
}

func (s *quotationService) ListQuotations(ctx context.Context, businessID string) ([]dto.QuotationResponse, error) {
	quotations, itemsByID, err := s.quotationRepo.ListQuotations(ctx, businessID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.QuotationResponse, len(quotations))
	for i := range quotations {
		responses[i] = dto.ToQuotationResponse(&quotations[i], itemsByID[quotations[i].QuotationID])
	}
	return responses, nil
}

func (s *quotationService) UpdateQuotation(ctx context.Context, businessID, quotationID string, req dto.UpdateQuotationRequest) error {
	quotation, err := s.quotationRepo.FindQuotationByID(ctx, businessID, quotationID)
	if err != nil {
		return err
	}
	if !req.Subtotal.IsPositive() {
		return fmt.Errorf("%w: subtotal must be positive", apperrors.ErrValidation)
	}

	validUntil, err := parseOptionalDate(req.ValidUntil)
	if err != nil {
		return err
	}

	discountAmount, taxAmount, totalAmount := quotationTotals(req.Subtotal, req.DiscountPercent, req.TaxPercent)

	if req.CustomerID != "" {
		quotation.CustomerID = req.CustomerID
	}
	if req.LeadID != "" {
		quotation.LeadID = req.LeadID
	}
	if req.Status != "" {
		quotation.Status = req.Status
	}
	quotation.Subtotal = req.Subtotal
	quotation.DiscountPercent = req.DiscountPercent
	quotation.DiscountAmount = discountAmount
	quotation.TaxPercent = req.TaxPercent
	quotation.TaxAmount = taxAmount
	quotation.TotalAmount = totalAmount
	quotation.ValidUntil = validUntil
	quotation.Notes = req.Notes
	quotation.UpdatedAt = time.Now().UTC()

	items := buildQuotationItems(quotation.QuotationID, req.Items)
	return s.quotationRepo.UpdateQuotation(ctx, *quotation, items)
}

func (s *quotationService) DeleteQuotation(ctx context.Context, businessID, quotationID string) error {
	if _, err := s.quotationRepo.FindQuotationByID(ctx, businessID, quotationID); err != nil {
		return err
	}
	return s.quotationRepo.DeleteQuotation(ctx, businessID, quotationID)
}
