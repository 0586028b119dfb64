package repositories

import (
	"context"

	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
)

// QuotationRepositoryFacade defines persistence operations for quotations.
// Header and items always move together.
type QuotationRepositoryFacade interface {
	// SaveQuotation persists the header and all items atomically.
	SaveQuotation(ctx context.Context, quotation domain.Quotation, items []domain.QuotationItem) error

	FindQuotationByID(ctx context.Context, businessID, quotationID string) (*domain.Quotation, error)

	// ListQuotations returns quotations newest-first with their items.
	ListQuotations(ctx context.Context, businessID string) ([]domain.Quotation, map[string][]domain.QuotationItem, error)

	// UpdateQuotation rewrites the header and replaces every item atomically.
	UpdateQuotation(ctx context.Context, quotation domain.Quotation, items []domain.QuotationItem) error

	// DeleteQuotation removes the header; items cascade.
	DeleteQuotation(ctx context.Context, businessID, quotationID string) error
}
