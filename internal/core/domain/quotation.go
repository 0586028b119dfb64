package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotationStatus tracks a quotation's lifecycle.
type QuotationStatus string

const (
	QuotationDraft    QuotationStatus = "draft"
	QuotationSent     QuotationStatus = "sent"
	QuotationAccepted QuotationStatus = "accepted"
	QuotationRejected QuotationStatus = "rejected"
)

// Quotation is a priced offer to a customer or lead.
type Quotation struct {
	QuotationID     string          `json:"quotationID"`
	BusinessID      string          `json:"businessID"`
	QuotationNumber string          `json:"quotationNumber"`
	CustomerID      string          `json:"customerID"`
	LeadID          string          `json:"leadID"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	TaxPercent      decimal.Decimal `json:"taxPercent"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	ValidUntil      *time.Time      `json:"validUntil"`
	Notes           string          `json:"notes"`
	Status          QuotationStatus `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// QuotationItem is one priced line of a quotation. Width/height are optional
// dimensions for made-to-measure work.
type QuotationItem struct {
	ItemID      string           `json:"itemID"`
	QuotationID string           `json:"quotationID"`
	Description string           `json:"description"`
	Width       *decimal.Decimal `json:"width"`
	Height      *decimal.Decimal `json:"height"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unitPrice"`
	TotalPrice  decimal.Decimal  `json:"totalPrice"`
}
