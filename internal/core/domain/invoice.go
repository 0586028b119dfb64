package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus reflects how much of an invoice has been settled.
type InvoiceStatus string

const (
	InvoicePending       InvoiceStatus = "pending"
	InvoicePartiallyPaid InvoiceStatus = "partially-paid"
	InvoicePaid          InvoiceStatus = "paid"
)

// Invoice is an issued bill. paid_amount/balance_amount are maintained by
// payment recording; they always satisfy paid + balance == total.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`
	BusinessID    string          `json:"businessID"`
	CustomerID    string          `json:"customerID"`
	QuotationID   string          `json:"quotationID"` // empty unless raised from a quotation
	InvoiceNumber string          `json:"invoiceNumber"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxPercent    decimal.Decimal `json:"taxPercent"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	BalanceAmount decimal.Decimal `json:"balanceAmount"`
	Status        InvoiceStatus   `json:"status"`
	DueDate       time.Time       `json:"dueDate"`
	IsGSTInvoice  bool            `json:"isGstInvoice"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// InvoiceItem is one billed line of an invoice.
type InvoiceItem struct {
	ItemID      string          `json:"itemID"`
	InvoiceID   string          `json:"invoiceID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}
