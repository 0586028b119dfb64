package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
)

// CreateExpenseRequest records a new expense. ExpenseDate is "2006-01-02".
type CreateExpenseRequest struct {
	Category    domain.ExpenseCategory `json:"category" binding:"required"`
	VendorName  string                 `json:"vendorName" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Description string                 `json:"description" binding:"required"`
	ExpenseDate string                 `json:"expenseDate" binding:"required"`
	PaymentMode domain.PaymentMethod   `json:"paymentMode"`
	Reference   string                 `json:"reference"`
	Notes       string                 `json:"notes"`
}

// UpdateExpenseRequest updates a pending expense. Nil fields are left unchanged.
type UpdateExpenseRequest struct {
	Category    *domain.ExpenseCategory `json:"category"`
	VendorName  *string                 `json:"vendorName"`
	Amount      *decimal.Decimal        `json:"amount"`
	Description *string                 `json:"description"`
	ExpenseDate *string                 `json:"expenseDate"`
	PaymentMode *domain.PaymentMethod   `json:"paymentMode"`
	Reference   *string                 `json:"reference"`
	Notes       *string                 `json:"notes"`
}

// RejectExpenseRequest rejects a pending expense.
type RejectExpenseRequest struct {
	Reason string `json:"reason"`
}

// ExpenseResponse defines the data returned for one expense.
type ExpenseResponse struct {
	ExpenseID       string                 `json:"expenseID"`
	ExpenseNumber   string                 `json:"expenseNumber"`
	Category        domain.ExpenseCategory `json:"category"`
	VendorName      string                 `json:"vendorName"`
	Amount          decimal.Decimal        `json:"amount"`
	Description     string                 `json:"description"`
	ExpenseDate     time.Time              `json:"expenseDate"`
	PaymentMode     domain.PaymentMethod   `json:"paymentMode"`
	Reference       string                 `json:"reference,omitempty"`
	Notes           string                 `json:"notes,omitempty"`
	Status          domain.ExpenseStatus   `json:"status"`
	RejectionReason string                 `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:       e.ExpenseID,
		ExpenseNumber:   e.ExpenseNumber,
		Category:        e.Category,
		VendorName:      e.VendorName,
		Amount:          e.Amount,
		Description:     e.Description,
		ExpenseDate:     e.ExpenseDate,
		PaymentMode:     e.PaymentMode,
		Reference:       e.Reference,
		Notes:           e.Notes,
		Status:          e.Status,
		RejectionReason: e.RejectionReason,
		CreatedAt:       e.CreatedAt,
	}
}

// ListExpensesResponse is the paginated expense list envelope.
type ListExpensesResponse struct {
	Data       []ExpenseResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}
