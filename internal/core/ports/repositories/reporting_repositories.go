package repositories

import (
	"context"
	"time"

	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
)

// ReportingRepository defines the read-side aggregation queries that derive
// financial views from journal rows. Nothing here mutates.
type ReportingRepository interface {
	// GetLedgerLines returns every journal line for one account joined with
	// its entry's date/description, date ascending.
	GetLedgerLines(ctx context.Context, accountID string) ([]domain.LedgerLine, error)

	// GetTrialBalanceData returns per-account debit/credit totals for the tenant.
	GetTrialBalanceData(ctx context.Context, businessID string) ([]domain.TrialBalanceRow, error)

	// GetProfitAndLossData returns net revenue and expense amounts per
	// account. Nil bounds mean unbounded.
	GetProfitAndLossData(ctx context.Context, businessID string, from, to *time.Time) (revenue, expenses []domain.AccountAmount, err error)

	// GetBalanceSheetData returns asset, liability and equity balances as of
	// a point in time.
	GetBalanceSheetData(ctx context.Context, businessID string, asOf time.Time) (assets, liabilities, equity []domain.AccountAmount, err error)

	// GetDayBookEntries returns every journal entry dated on the given day,
	// with lines and account metadata, in creation order.
	GetDayBookEntries(ctx context.Context, businessID string, date time.Time) ([]domain.DayBookEntry, error)
}
