package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow holds per-account debit/credit totals. Summed across the
// tenant, total debits must equal total credits.
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// AccountAmount is one account's net contribution to a report section.
type AccountAmount struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	NetAmount   decimal.Decimal `json:"netAmount"`
}

// ProfitLossReport summarizes revenue against expenses for a period.
type ProfitLossReport struct {
	Revenue      []AccountAmount `json:"revenue"`
	Expenses     []AccountAmount `json:"expenses"`
	RevenueTotal decimal.Decimal `json:"revenueTotal"`
	ExpenseTotal decimal.Decimal `json:"expenseTotal"`
	Net          decimal.Decimal `json:"net"`
}

// BalanceSheetReport lists asset, liability and equity balances as of a
// point in time. The assets == liabilities + equity identity is not
// asserted here; it follows from posting correctness.
type BalanceSheetReport struct {
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}

// LedgerLine is one journal line joined with its entry's date/description
// for the per-account ledger view.
type LedgerLine struct {
	EntryID     string          `json:"entryID"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// DayBookLine is a journal line with account metadata for the day book view.
type DayBookLine struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// DayBookEntry is one journal entry with its lines, as listed in the day book.
type DayBookEntry struct {
	Entry JournalEntry  `json:"entry"`
	Lines []DayBookLine `json:"lines"`
}
