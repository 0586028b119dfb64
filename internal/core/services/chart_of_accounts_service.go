package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tradekeep/tradekeep_backend/internal/apperrors"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portsrepo "github.com/tradekeep/tradekeep_backend/internal/core/ports/repositories"
	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
	"github.com/tradekeep/tradekeep_backend/internal/middleware"
)

// defaultAccount is one row of the seed set every new tenant receives.
type defaultAccount struct {
	Code string
	Name string
	Type domain.AccountType
}

// defaultAccounts is the canonical chart of accounts for a new business.
var defaultAccounts = []defaultAccount{
	{"1001", "Cash", domain.AccountTypeAsset},
	{"1002", "Bank Account", domain.AccountTypeAsset},
	{"1003", "Accounts Receivable", domain.AccountTypeAsset},

	{"2001", "Tax Payable", domain.AccountTypeLiability},

	{"4001", "Sales", domain.AccountTypeRevenue},

	{"5001", "Cost of Goods Sold - Raw Materials", domain.AccountTypeExpense},
	{"5002", "Cost of Goods Sold - Labor", domain.AccountTypeExpense},

	{"6001", "Operating Expenses - Utilities", domain.AccountTypeExpense},
	{"6002", "Operating Expenses - Rent", domain.AccountTypeExpense},
	{"6003", "Operating Expenses - Transportation", domain.AccountTypeExpense},
	{"6004", "Operating Expenses - Maintenance", domain.AccountTypeExpense},
	{"6005", "Operating Expenses - Office Supplies", domain.AccountTypeExpense},
	{"6006", "Operating Expenses - Marketing", domain.AccountTypeExpense},
	{"6007", "Operating Expenses - Salaries", domain.AccountTypeExpense},
	{"6008", "Operating Expenses - Miscellaneous", domain.AccountTypeExpense},
}

// expenseCategoryAccounts maps expense categories to their ledger accounts.
// Owned here so originators depend on a named capability instead of
// duplicating literal code tables.
var expenseCategoryAccounts = map[domain.ExpenseCategory]string{
	domain.CatRawMaterials:   "5001",
	domain.CatLabor:          "5002",
	domain.CatUtilities:      "6001",
	domain.CatRent:           "6002",
	domain.CatTransportation: "6003",
	domain.CatMaintenance:    "6004",
	domain.CatOfficeSupplies: "6005",
	domain.CatMarketing:      "6006",
	domain.CatSalary:         "6007",
	domain.CatOther:          "6008",
}

// paymentModeAccounts maps payment methods to the settling asset account.
var paymentModeAccounts = map[domain.PaymentMethod]string{
	domain.PayCash:         "1001",
	domain.PayUPI:          "1002",
	domain.PayBankTransfer: "1002",
	domain.PayCheque:       "1002",
}

// chartOfAccountsService implements portssvc.ChartOfAccountsSvcFacade.
type chartOfAccountsService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewChartOfAccountsService creates a new chart of accounts service.
func NewChartOfAccountsService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.ChartOfAccountsSvcFacade {
	return &chartOfAccountsService{accountRepo: accountRepo}
}

var _ portssvc.ChartOfAccountsSvcFacade = (*chartOfAccountsService)(nil)

// SeedDefaultAccounts inserts the default account set for a new tenant.
func (s *chartOfAccountsService) SeedDefaultAccounts(ctx context.Context, businessID, creatorUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	accounts := make([]domain.Account, len(defaultAccounts))
	for i, seed := range defaultAccounts {
		accounts[i] = domain.Account{
			AccountID:   uuid.NewString(),
			BusinessID:  businessID,
			Code:        seed.Code,
			Name:        seed.Name,
			AccountType: seed.Type,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}
	}

	if err := s.accountRepo.SaveAccounts(ctx, accounts); err != nil {
		logger.Error("Failed to seed default accounts", slog.String("business_id", businessID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to seed default accounts: %w", err)
	}

	logger.Info("Seeded default chart of accounts", slog.String("business_id", businessID), slog.Int("count", len(accounts)))
	return nil
}

// ResolveAccounts maps account codes to accounts, failing with the complete
// list of missing codes so the caller can remediate in one pass.
func (s *chartOfAccountsService) ResolveAccounts(ctx context.Context, businessID string, codes []string) (map[string]domain.Account, error) {
	unique := uniqueStrings(codes)

	accounts, err := s.accountRepo.FindAccountsByCodes(ctx, businessID, unique)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	var missing []string
	for _, code := range unique {
		if _, found := accounts[code]; !found {
			missing = append(missing, code)
		}
	}
	if len(missing) > 0 {
		return nil, &apperrors.AccountResolutionError{MissingCodes: missing}
	}

	return accounts, nil
}

// CreateAccount adds an ad hoc account to the tenant's chart.
func (s *chartOfAccountsService) CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  businessID,
		Code:        req.Code,
		Name:        req.Name,
		AccountType: req.Type,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to create account", slog.String("code", req.Code), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByCode retrieves one account by its tenant-scoped code.
func (s *chartOfAccountsService) GetAccountByCode(ctx context.Context, businessID, code string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByCode(ctx, businessID, code)
}

// ListAccounts returns the tenant's chart of accounts ordered by code.
func (s *chartOfAccountsService) ListAccounts(ctx context.Context, businessID string) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, businessID)
}

// AccountForExpenseCategory resolves an expense category to its account code.
func (s *chartOfAccountsService) AccountForExpenseCategory(category domain.ExpenseCategory) (string, error) {
	code, ok := expenseCategoryAccounts[category]
	if !ok {
		return "", fmt.Errorf("%w: invalid expense category %q", apperrors.ErrValidation, category)
	}
	return code, nil
}

// AccountForPaymentMode resolves a payment method to its settling account code.
func (s *chartOfAccountsService) AccountForPaymentMode(mode domain.PaymentMethod) (string, error) {
	code, ok := paymentModeAccounts[mode]
	if !ok {
		return "", fmt.Errorf("%w: invalid payment mode %q", apperrors.ErrValidation, mode)
	}
	return code, nil
}

// uniqueStrings returns the unique values of in, preserving first-seen order.
func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
