package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
)

// RecordPaymentRequest records money received against an invoice.
type RecordPaymentRequest struct {
	InvoiceID     string               `json:"invoiceId" binding:"required"`
	Amount        decimal.Decimal      `json:"amount" binding:"required"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=cash upi bank-transfer cheque"`
	Reference     string               `json:"reference"`
}

// RecordPaymentResponse is returned after a successful payment.
type RecordPaymentResponse struct {
	ReceiptNumber string          `json:"receiptNumber"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	BalanceAmount decimal.Decimal `json:"balanceAmount"`
	Status        string          `json:"status"`
}

// PaymentResponse defines the data returned for one payment.
type PaymentResponse struct {
	PaymentID     string               `json:"paymentID"`
	InvoiceID     string               `json:"invoiceID"`
	CustomerID    string               `json:"customerID"`
	Amount        decimal.Decimal      `json:"amount"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	Reference     string               `json:"reference,omitempty"`
	ReceiptNumber string               `json:"receiptNumber"`
	PaymentDate   time.Time            `json:"paymentDate"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		InvoiceID:     p.InvoiceID,
		CustomerID:    p.CustomerID,
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		Reference:     p.Reference,
		ReceiptNumber: p.ReceiptNumber,
		PaymentDate:   p.PaymentDate,
		CreatedAt:     p.CreatedAt,
	}
}
