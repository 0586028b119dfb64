package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
)

// QuotationItemRequest is one priced line in a quotation request.
type QuotationItemRequest struct {
	Description string           `json:"description" binding:"required"`
	Width       *decimal.Decimal `json:"width"`
	Height      *decimal.Decimal `json:"height"`
	Quantity    decimal.Decimal  `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal  `json:"unitPrice" binding:"required"`
	TotalPrice  decimal.Decimal  `json:"totalPrice" binding:"required"`
}

// CreateQuotationRequest creates a new quotation. ValidUntil is "2006-01-02".
type CreateQuotationRequest struct {
	CustomerID      string                 `json:"customerId"`
	LeadID          string                 `json:"leadId"`
	Items           []QuotationItemRequest `json:"items" binding:"required,min=1,dive"`
	Subtotal        decimal.Decimal        `json:"subtotal" binding:"required"`
	DiscountPercent decimal.Decimal        `json:"discountPercent"`
	TaxPercent      decimal.Decimal        `json:"taxPercent"`
	ValidUntil      string                 `json:"validUntil"`
	Notes           string                 `json:"notes"`
	Status          domain.QuotationStatus `json:"status"`
}

// UpdateQuotationRequest rewrites the quotation and replaces its items.
type UpdateQuotationRequest struct {
	CustomerID      string                 `json:"customerId"`
	LeadID          string                 `json:"leadId"`
	Items           []QuotationItemRequest `json:"items" binding:"required,min=1,dive"`
	Subtotal        decimal.Decimal        `json:"subtotal" binding:"required"`
	DiscountPercent decimal.Decimal        `json:"discountPercent"`
	TaxPercent      decimal.Decimal        `json:"taxPercent"`
	ValidUntil      string                 `json:"validUntil"`
	Notes           string                 `json:"notes"`
	Status          domain.QuotationStatus `json:"status"`
}

// QuotationItemResponse is one priced line of a quotation.
type QuotationItemResponse struct {
	ItemID      string           `json:"itemID"`
	Description string           `json:"description"`
	Width       *decimal.Decimal `json:"width,omitempty"`
	Height      *decimal.Decimal `json:"height,omitempty"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unitPrice"`
	TotalPrice  decimal.Decimal  `json:"totalPrice"`
}

// QuotationResponse defines the data returned for one quotation with items.
type QuotationResponse struct {
	QuotationID     string                  `json:"quotationID"`
	QuotationNumber string                  `json:"quotationNumber"`
	CustomerID      string                  `json:"customerID,omitempty"`
	LeadID          string                  `json:"leadID,omitempty"`
	Status          domain.QuotationStatus  `json:"status"`
	Subtotal        decimal.Decimal         `json:"subtotal"`
	DiscountPercent decimal.Decimal         `json:"discountPercent"`
	DiscountAmount  decimal.Decimal         `json:"discountAmount"`
	TaxPercent      decimal.Decimal         `json:"taxPercent"`
	TaxAmount       decimal.Decimal         `json:"taxAmount"`
	TotalAmount     decimal.Decimal         `json:"totalAmount"`
	ValidUntil      *time.Time              `json:"validUntil,omitempty"`
	Notes           string                  `json:"notes,omitempty"`
	Items           []QuotationItemResponse `json:"items"`
	CreatedAt       time.Time               `json:"createdAt"`
}

// ToQuotationResponse converts a domain.Quotation plus items to its DTO.
func ToQuotationResponse(q *domain.Quotation, items []domain.QuotationItem) QuotationResponse {
	respItems := make([]QuotationItemResponse, len(items))
	for i, item := range items {
		respItems[i] = QuotationItemResponse{
			ItemID:      item.ItemID,
			Description: item.Description,
			Width:       item.Width,
			Height:      item.Height,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		}
	}
	return QuotationResponse{
		QuotationID:     q.QuotationID,
		QuotationNumber: q.QuotationNumber,
		CustomerID:      q.CustomerID,
		LeadID:          q.LeadID,
		Status:          q.Status,
		Subtotal:        q.Subtotal,
		DiscountPercent: q.DiscountPercent,
		DiscountAmount:  q.DiscountAmount,
		TaxPercent:      q.TaxPercent,
		TaxAmount:       q.TaxAmount,
		TotalAmount:     q.TotalAmount,
		ValidUntil:      q.ValidUntil,
		Notes:           q.Notes,
		Items:           respItems,
		CreatedAt:       q.CreatedAt,
	}
}
