package services

import (
	"context"

	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
)

// BusinessSvcFacade provisions tenants and resolves profiles.
type BusinessSvcFacade interface {
	// CompleteSignup creates the business + owner profile and seeds the
	// default chart of accounts (signup-lifecycle provisioning path).
	CompleteSignup(ctx context.Context, userID, name string) (*domain.Business, error)

	// ProvisionBusiness is the admin provisioning path; it shares the same
	// account seeding.
	ProvisionBusiness(ctx context.Context, req dto.ProvisionBusinessRequest, creatorUserID string) (*domain.Business, error)

	// GetProfileByUserID resolves the tenant for an authenticated user.
	GetProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}

// CustomerSvcFacade manages the tenant's customers.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, businessID string, req dto.CreateCustomerRequest) (*domain.Customer, error)
	ListCustomers(ctx context.Context, businessID string, params dto.ListParams) (*dto.ListCustomersResponse, error)
	UpdateCustomer(ctx context.Context, businessID, customerID string, req dto.UpdateCustomerRequest) error
	DeleteCustomer(ctx context.Context, businessID, customerID string) error
}

// LeadSvcFacade manages leads, their notes and conversion to customers.
type LeadSvcFacade interface {
	CreateLead(ctx context.Context, businessID string, req dto.CreateLeadRequest, creatorUserID string) (*domain.Lead, error)
	ListLeads(ctx context.Context, businessID string, params dto.ListParams) (*dto.ListLeadsResponse, error)
	UpdateLead(ctx context.Context, businessID, leadID string, req dto.UpdateLeadRequest) error
	DeleteLead(ctx context.Context, businessID, leadID string) error

	// ConvertLead creates a customer from the lead and marks it converted.
	// Converting an already-converted lead returns the existing customer.
	ConvertLead(ctx context.Context, businessID, leadID string) (*domain.Customer, error)

	AddLeadNote(ctx context.Context, businessID, leadID, userID string, req dto.AddLeadNoteRequest) (*domain.LeadNote, error)
	ListLeadNotes(ctx context.Context, businessID, leadID string) ([]domain.LeadNote, error)
}

// QuotationSvcFacade manages quotations and their items.
type QuotationSvcFacade interface {
	CreateQuotation(ctx context.Context, businessID string, req dto.CreateQuotationRequest) (*dto.QuotationResponse, error)
	ListQuotations(ctx context.Context, businessID string) ([]dto.QuotationResponse, error)
	UpdateQuotation(ctx context.Context, businessID, quotationID string, req dto.UpdateQuotationRequest) error
	DeleteQuotation(ctx context.Context, businessID, quotationID string) error
}
