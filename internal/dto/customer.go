package dto

import (
	"time"

	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
)

// CreateCustomerRequest creates a customer directly (not via lead conversion).
type CreateCustomerRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Location  string `json:"location"`
	GSTNumber string `json:"gstNumber"`
}

// UpdateCustomerRequest rewrites a customer's contact details.
type UpdateCustomerRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Location  string `json:"location"`
	GSTNumber string `json:"gstNumber"`
}

// CustomerResponse defines the data returned for one customer.
type CustomerResponse struct {
	CustomerID string    `json:"customerID"`
	LeadID     string    `json:"leadID,omitempty"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	Address    string    `json:"address,omitempty"`
	Location   string    `json:"location,omitempty"`
	GSTNumber  string    `json:"gstNumber,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		LeadID:     c.LeadID,
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
		Address:    c.Address,
		Location:   c.Location,
		GSTNumber:  c.GSTNumber,
		CreatedAt:  c.CreatedAt,
	}
}

// ListCustomersResponse is the paginated customer list envelope.
type ListCustomersResponse struct {
	Data       []CustomerResponse `json:"data"`
	Pagination Pagination         `json:"pagination"`
}
