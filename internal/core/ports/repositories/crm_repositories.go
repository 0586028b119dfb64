package repositories

import (
	"context"

	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
)

// CustomerRepositoryFacade defines persistence operations for customers.
type CustomerRepositoryFacade interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, businessID, customerID string) (*domain.Customer, error)
	FindCustomerByLeadID(ctx context.Context, businessID, leadID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, businessID string, limit, offset int) ([]domain.Customer, error)
	CountCustomers(ctx context.Context, businessID string) (int64, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
	DeleteCustomer(ctx context.Context, businessID, customerID string) error
}

// LeadRepositoryFacade defines persistence operations for leads and lead notes.
type LeadRepositoryFacade interface {
	SaveLead(ctx context.Context, lead domain.Lead) error
	FindLeadByID(ctx context.Context, businessID, leadID string) (*domain.Lead, error)
	ListLeads(ctx context.Context, businessID string, limit, offset int) ([]domain.Lead, error)
	CountLeads(ctx context.Context, businessID string) (int64, error)
	UpdateLead(ctx context.Context, lead domain.Lead) error
	UpdateLeadStatus(ctx context.Context, businessID, leadID string, status domain.LeadStatus) error
	DeleteLead(ctx context.Context, businessID, leadID string) error

	SaveLeadNote(ctx context.Context, note domain.LeadNote) error
	ListLeadNotes(ctx context.Context, businessID, leadID string) ([]domain.LeadNote, error)
}
