package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Account is one entry in a tenant's chart of accounts. Code is unique per
// business and is what originators reference; the ID is internal.
type Account struct {
	AccountID   string      `json:"accountID"`
	BusinessID  string      `json:"businessID"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	AuditFields
}
