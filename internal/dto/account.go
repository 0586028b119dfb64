package dto

import (
	"time"

	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
)

// CreateAccountRequest adds an ad hoc account to the tenant's chart of accounts.
type CreateAccountRequest struct {
	Code string             `json:"code" binding:"required"`
	Name string             `json:"name" binding:"required"`
	Type domain.AccountType `json:"type" binding:"required,oneof=asset liability equity revenue expense"`
}

// AccountResponse defines the data returned for one account.
type AccountResponse struct {
	AccountID string             `json:"accountID"`
	Code      string             `json:"code"`
	Name      string             `json:"name"`
	Type      domain.AccountType `json:"type"`
	CreatedAt time.Time          `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: a.AccountID,
		Code:      a.Code,
		Name:      a.Name,
		Type:      a.AccountType,
		CreatedAt: a.CreatedAt,
	}
}

// ListAccountsResponse is the full chart of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// LedgerResponse is the per-account running ledger view.
type LedgerResponse struct {
	Account AccountResponse     `json:"account"`
	Lines   []domain.LedgerLine `json:"lines"`
}
