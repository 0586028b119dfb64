package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus tracks the expense approval workflow.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
	ExpenseRejected ExpenseStatus = "rejected"
	ExpensePaid     ExpenseStatus = "paid"
)

// ExpenseCategory maps to a ledger account via the chart of accounts.
type ExpenseCategory string

const (
	CatRawMaterials   ExpenseCategory = "raw-materials"
	CatLabor          ExpenseCategory = "labor"
	CatUtilities      ExpenseCategory = "utilities"
	CatRent           ExpenseCategory = "rent"
	CatTransportation ExpenseCategory = "transportation"
	CatMaintenance    ExpenseCategory = "maintenance"
	CatOfficeSupplies ExpenseCategory = "office-supplies"
	CatMarketing      ExpenseCategory = "marketing"
	CatSalary         ExpenseCategory = "salary"
	CatOther          ExpenseCategory = "other"
)

// Expense is a recorded business cost, journalled on creation and reversed
// if rejected before reaching a paid state.
type Expense struct {
	ExpenseID       string          `json:"expenseID"`
	BusinessID      string          `json:"businessID"`
	ExpenseNumber   string          `json:"expenseNumber"`
	Category        ExpenseCategory `json:"category"`
	VendorName      string          `json:"vendorName"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	ExpenseDate     time.Time       `json:"expenseDate"`
	PaymentMode     PaymentMethod   `json:"paymentMode"`
	Reference       string          `json:"reference"`
	Notes           string          `json:"notes"`
	Status          ExpenseStatus   `json:"status"`
	CreatedBy       string          `json:"createdBy"`
	ApprovedBy      string          `json:"approvedBy"`
	ApprovedAt      *time.Time      `json:"approvedAt"`
	RejectedBy      string          `json:"rejectedBy"`
	RejectedAt      *time.Time      `json:"rejectedAt"`
	RejectionReason string          `json:"rejectionReason"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
