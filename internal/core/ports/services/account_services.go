package services

import (
	"context"

	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
)

// ChartOfAccountsSvcFacade owns the tenant's account registry and the
// declarative category/payment-mode mappings the originators depend on.
type ChartOfAccountsSvcFacade interface {
	// SeedDefaultAccounts inserts the default account set for a new tenant.
	// Calling it twice for the same tenant is a caller error (duplicate codes).
	SeedDefaultAccounts(ctx context.Context, businessID, creatorUserID string) error

	// ResolveAccounts maps account codes to accounts for the tenant. When
	// any code is missing it fails with *apperrors.AccountResolutionError
	// listing every miss.
	ResolveAccounts(ctx context.Context, businessID string, codes []string) (map[string]domain.Account, error)

	// CreateAccount adds an ad hoc account to the chart.
	CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)

	// GetAccountByCode retrieves one account by code.
	GetAccountByCode(ctx context.Context, businessID, code string) (*domain.Account, error)

	// ListAccounts returns the tenant's chart of accounts ordered by code.
	ListAccounts(ctx context.Context, businessID string) ([]domain.Account, error)

	// AccountForExpenseCategory resolves an expense category to its ledger
	// account code.
	AccountForExpenseCategory(category domain.ExpenseCategory) (string, error)

	// AccountForPaymentMode resolves a payment method to the cash/bank
	// account code it settles against.
	AccountForPaymentMode(mode domain.PaymentMethod) (string, error)
}
