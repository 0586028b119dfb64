package services

import (
	"context"
	"time"

	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
)

// ReportingSvcFacade derives read-only financial views from journal rows.
type ReportingSvcFacade interface {
	// GetLedger returns the per-account running ledger. Fails with
	// apperrors.ErrNotFound when the code is unknown for the tenant.
	GetLedger(ctx context.Context, businessID, accountCode string) (*dto.LedgerResponse, error)

	// TrialBalance returns per-account debit/credit totals.
	TrialBalance(ctx context.Context, businessID string) ([]domain.TrialBalanceRow, error)

	// ProfitAndLoss reports revenue vs. expenses; nil bounds are unbounded.
	ProfitAndLoss(ctx context.Context, businessID string, from, to *time.Time) (*domain.ProfitLossReport, error)

	// BalanceSheet reports asset/liability/equity balances as of a point in time.
	BalanceSheet(ctx context.Context, businessID string, asOf time.Time) (*domain.BalanceSheetReport, error)

	// DayBook lists every journal entry dated on the given day, in creation order.
	DayBook(ctx context.Context, businessID string, date time.Time) ([]domain.DayBookEntry, error)
}
