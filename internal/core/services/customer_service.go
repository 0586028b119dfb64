package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portsrepo "github.com/tradekeep/tradekeep_backend/internal/core/ports/repositories"
	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
)

type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, businessID string, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		BusinessID: businessID,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		Location:   req.Location,
		GSTNumber:  req.GSTNumber,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, businessID string, params dto.ListParams) (*dto.ListCustomersResponse, error) {
	customers, err := s.customerRepo.ListCustomers(ctx, businessID, params.Limit, params.Offset())
	if err != nil {
		return nil, err
	}
	total, err := s.customerRepo.CountCustomers(ctx, businessID)
	if err != nil {
		return nil, err
	}

	data := make([]dto.CustomerResponse, len(customers))
	for i := range customers {
		data[i] = dto.ToCustomerResponse(&customers[i])
	}
	return &dto.ListCustomersResponse{
		Data:       data,
		Pagination: dto.NewPagination(params, total),
	}, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, businessID, customerID string, req dto.UpdateCustomerRequest) error {
	customer, err := s.customerRepo.FindCustomerByID(ctx, businessID, customerID)
	if err != nil {
		return err
	}

	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.Email = req.Email
	customer.Address = req.Address
	customer.Location = req.Location
	customer.GSTNumber = req.GSTNumber
	customer.UpdatedAt = time.Now().UTC()

	return s.customerRepo.UpdateCustomer(ctx, *customer)
}

func (s *customerService) DeleteCustomer(ctx context.Context, businessID, customerID string) error {
	if _, err := s.customerRepo.FindCustomerByID(ctx, businessID, customerID); err != nil {
		return err
	}
	return s.customerRepo.DeleteCustomer(ctx, businessID, customerID)
}
