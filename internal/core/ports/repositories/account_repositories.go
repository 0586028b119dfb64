package repositories

import (
	"context"

	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
)

// AccountRepositoryFacade defines persistence operations for the chart of accounts.
type AccountRepositoryFacade interface {
	// SaveAccount inserts a single account. Unique (business_id, code) is
	// enforced by the store and surfaces as apperrors.ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error

	// SaveAccounts bulk-inserts accounts (used by tenant provisioning).
	SaveAccounts(ctx context.Context, accounts []domain.Account) error

	// FindAccountByCode retrieves one account by its tenant-scoped code.
	FindAccountByCode(ctx context.Context, businessID, code string) (*domain.Account, error)

	// FindAccountsByCodes bulk-fetches accounts keyed by code. Codes absent
	// for the tenant are simply missing from the returned map.
	FindAccountsByCodes(ctx context.Context, businessID string, codes []string) (map[string]domain.Account, error)

	// ListAccounts returns the tenant's full chart of accounts ordered by code.
	ListAccounts(ctx context.Context, businessID string) ([]domain.Account, error)
}
