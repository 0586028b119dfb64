package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a payment was received.
type PaymentMethod string

const (
	PayCash         PaymentMethod = "cash"
	PayUPI          PaymentMethod = "upi"
	PayBankTransfer PaymentMethod = "bank-transfer"
	PayCheque       PaymentMethod = "cheque"
)

// Payment records money received against an invoice.
type Payment struct {
	PaymentID     string          `json:"paymentID"`
	BusinessID    string          `json:"businessID"`
	InvoiceID     string          `json:"invoiceID"`
	CustomerID    string          `json:"customerID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Reference     string          `json:"reference"`
	ReceiptNumber string          `json:"receiptNumber"`
	PaymentDate   time.Time       `json:"paymentDate"`
	CreatedAt     time.Time       `json:"createdAt"`
}
