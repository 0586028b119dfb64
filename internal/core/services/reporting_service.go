package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portsrepo "github.com/tradekeep/tradekeep_backend/internal/core/ports/repositories"
	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
)

// reportingService derives financial views from journal rows. The heavy
// lifting happens in SQL aggregation; this layer only totals and shapes.
type reportingService struct {
	accountRepo   portsrepo.AccountRepositoryFacade
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, accountRepo portsrepo.AccountRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		accountRepo:   accountRepo,
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetLedger(ctx context.Context, businessID, accountCode string) (*dto.LedgerResponse, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, businessID, accountCode)
	if err != nil {
		return nil, err
	}

	lines, err := s.reportingRepo.GetLedgerLines(ctx, account.AccountID)
	if err != nil {
		return nil, err
	}

	return &dto.LedgerResponse{
		Account: dto.ToAccountResponse(account),
		Lines:   lines,
	}, nil
}

func (s *reportingService) TrialBalance(ctx context.Context, businessID string) ([]domain.TrialBalanceRow, error) {
	return s.reportingRepo.GetTrialBalanceData(ctx, businessID)
}

func (s *reportingService) ProfitAndLoss(ctx context.Context, businessID string, from, to *time.Time) (*domain.ProfitLossReport, error) {
	revenue, expenses, err := s.reportingRepo.GetProfitAndLossData(ctx, businessID, from, to)
	if err != nil {
		return nil, err
	}

	report := &domain.ProfitLossReport{
		Revenue:      revenue,
		Expenses:     expenses,
		RevenueTotal: sumAmounts(revenue),
		ExpenseTotal: sumAmounts(expenses),
	}
	report.Net = report.RevenueTotal.Sub(report.ExpenseTotal)
	return report, nil
}

func (s *reportingService) BalanceSheet(ctx context.Context, businessID string, asOf time.Time) (*domain.BalanceSheetReport, error) {
	assets, liabilities, equity, err := s.reportingRepo.GetBalanceSheetData(ctx, businessID, asOf)
	if err != nil {
		return nil, err
	}

	return &domain.BalanceSheetReport{
		Assets:           assets,
		Liabilities:      liabilities,
		Equity:           equity,
		TotalAssets:      sumAmounts(assets),
		TotalLiabilities: sumAmounts(liabilities),
		TotalEquity:      sumAmounts(equity),
	}, nil
}

func (s *reportingService) DayBook(ctx context.Context, businessID string, date time.Time) ([]domain.DayBookEntry, error) {
	return s.reportingRepo.GetDayBookEntries(ctx, businessID, date)
}

func sumAmounts(rows []domain.AccountAmount) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.NetAmount)
	}
	return total
}
