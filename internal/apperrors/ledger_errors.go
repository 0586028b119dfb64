package apperrors

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AccountResolutionError reports every account code that could not be
// resolved for the tenant, not just the first miss. Callers use the full
// list to fix the chart of accounts in one pass.
type AccountResolutionError struct {
	MissingCodes []string
}

func (e *AccountResolutionError) Error() string {
	return fmt.Sprintf("missing accounts: %s", strings.Join(e.MissingCodes, ", "))
}

// UnbalancedEntryError indicates the debit and credit sides of a journal
// entry do not match. It carries both totals so the originator's bug can be
// diagnosed without inspecting the database.
type UnbalancedEntryError struct {
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("journal entry does not balance: debits %s, credits %s",
		e.DebitTotal.StringFixed(2), e.CreditTotal.StringFixed(2))
}
