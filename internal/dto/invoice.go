package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
)

// InvoiceItemRequest is one billed line in an invoice creation request.
type InvoiceItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
}

// CreateInvoiceRequest issues a new invoice. Either CustomerID or
// QuotationID must be set; DueDate is "2006-01-02".
type CreateInvoiceRequest struct {
	CustomerID   string               `json:"customerId"`
	QuotationID  string               `json:"quotationId"`
	Items        []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	Subtotal     decimal.Decimal      `json:"subtotal" binding:"required"`
	TaxPercent   decimal.Decimal      `json:"taxPercent"`
	DueDate      string               `json:"dueDate" binding:"required"`
	IsGSTInvoice bool                 `json:"isGstInvoice"`
	Notes        string               `json:"notes"`
}

// InvoiceResponse defines the data returned for one invoice.
type InvoiceResponse struct {
	InvoiceID     string               `json:"invoiceID"`
	InvoiceNumber string               `json:"invoiceNumber"`
	CustomerID    string               `json:"customerID"`
	QuotationID   string               `json:"quotationID,omitempty"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	TaxPercent    decimal.Decimal      `json:"taxPercent"`
	TaxAmount     decimal.Decimal      `json:"taxAmount"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	PaidAmount    decimal.Decimal      `json:"paidAmount"`
	BalanceAmount decimal.Decimal      `json:"balanceAmount"`
	Status        domain.InvoiceStatus `json:"status"`
	DueDate       time.Time            `json:"dueDate"`
	IsGSTInvoice  bool                 `json:"isGstInvoice"`
	Notes         string               `json:"notes,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerID:    inv.CustomerID,
		QuotationID:   inv.QuotationID,
		Subtotal:      inv.Subtotal,
		TaxPercent:    inv.TaxPercent,
		TaxAmount:     inv.TaxAmount,
		TotalAmount:   inv.TotalAmount,
		PaidAmount:    inv.PaidAmount,
		BalanceAmount: inv.BalanceAmount,
		Status:        inv.Status,
		DueDate:       inv.DueDate,
		IsGSTInvoice:  inv.IsGSTInvoice,
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
	}
}

// ListInvoicesResponse is the paginated invoice list envelope.
type ListInvoicesResponse struct {
	Data       []InvoiceResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}
