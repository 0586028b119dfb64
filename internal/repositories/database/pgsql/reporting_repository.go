package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portsrepo "github.com/tradekeep/tradekeep_backend/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetLedgerLines returns every journal line for one account joined with its
// entry's date and description, oldest first.
func (r *reportingRepository) GetLedgerLines(ctx context.Context, accountID string) ([]domain.LedgerLine, error) {
	query := `
		SELECT e.entry_id, e.entry_date, e.description, l.debit, l.credit
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE l.account_id = $1
		ORDER BY e.entry_date, e.created_at
	`

	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("error querying ledger lines: %w", err)
	}
	defer rows.Close()

	result := []domain.LedgerLine{}
	for rows.Next() {
		var line domain.LedgerLine
		if err := rows.Scan(&line.EntryID, &line.Date, &line.Description, &line.Debit, &line.Credit); err != nil {
			return nil, fmt.Errorf("error scanning ledger line: %w", err)
		}
		result = append(result, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger lines: %w", err)
	}
	return result, nil
}

// GetTrialBalanceData retrieves per-account debit/credit totals for the tenant
func (r *reportingRepository) GetTrialBalanceData(ctx context.Context, businessID string) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			a.code,
			a.name,
			a.account_type,
			COALESCE(SUM(l.debit), 0) AS total_debit,
			COALESCE(SUM(l.credit), 0) AS total_credit
		FROM journal_lines l
		JOIN accounts a ON l.account_id = a.account_id
		WHERE a.business_id = $1
		GROUP BY a.code, a.name, a.account_type
		ORDER BY a.code
	`

	rows, err := r.Pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType string

		if err := rows.Scan(
			&row.AccountCode,
			&row.AccountName,
			&accountType,
			&row.Debit,
			&row.Credit,
		); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}

		row.AccountType = domain.AccountType(accountType)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}
	return result, nil
}

// GetProfitAndLossData retrieves net revenue and expense amounts per account.
// Nil bounds mean unbounded.
func (r *reportingRepository) GetProfitAndLossData(ctx context.Context, businessID string, from, to *time.Time) ([]domain.AccountAmount, []domain.AccountAmount, error) {
	query := `
		SELECT
			a.account_type,
			a.code,
			a.name,
			SUM(l.debit - l.credit) AS net
		FROM journal_lines l
		JOIN accounts a ON l.account_id = a.account_id
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE a.business_id = $1
			AND ($2::timestamptz IS NULL OR e.entry_date >= $2)
			AND ($3::timestamptz IS NULL OR e.entry_date <= $3)
			AND a.account_type IN ('revenue', 'expense')
		GROUP BY a.account_type, a.code, a.name
		ORDER BY a.code
	`

	rows, err := r.Pool.Query(ctx, query, businessID, from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("error querying profit and loss data: %w", err)
	}
	defer rows.Close()

	revenue := []domain.AccountAmount{}
	expenses := []domain.AccountAmount{}

	for rows.Next() {
		var accountType, code, name string
		var net decimal.Decimal

		if err := rows.Scan(&accountType, &code, &name, &net); err != nil {
			return nil, nil, fmt.Errorf("error scanning profit and loss row: %w", err)
		}

		accountAmount := domain.AccountAmount{
			AccountCode: code,
			AccountName: name,
		}

		switch domain.AccountType(accountType) {
		case domain.AccountTypeRevenue:
			// Revenue accounts grow on the credit side.
			accountAmount.NetAmount = net.Neg()
			revenue = append(revenue, accountAmount)
		case domain.AccountTypeExpense:
			// Expense accounts grow on the debit side.
			accountAmount.NetAmount = net
			expenses = append(expenses, accountAmount)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating profit and loss rows: %w", err)
	}
	return revenue, expenses, nil
}

// GetBalanceSheetData retrieves asset, liability and equity balances as of a
// specific date
func (r *reportingRepository) GetBalanceSheetData(ctx context.Context, businessID string, asOf time.Time) ([]domain.AccountAmount, []domain.AccountAmount, []domain.AccountAmount, error) {
	query := `
		SELECT
			a.account_type,
			a.code,
			a.name,
			SUM(l.debit - l.credit) AS net
		FROM journal_lines l
		JOIN accounts a ON l.account_id = a.account_id
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE a.business_id = $1
			AND e.entry_date <= $2
			AND a.account_type IN ('asset', 'liability', 'equity')
		GROUP BY a.account_type, a.code, a.name
		ORDER BY a.code
	`

	rows, err := r.Pool.Query(ctx, query, businessID, asOf)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error querying balance sheet data: %w", err)
	}
	defer rows.Close()

	assets := []domain.AccountAmount{}
	liabilities := []domain.AccountAmount{}
	equity := []domain.AccountAmount{}

	for rows.Next() {
		var accountType, code, name string
		var net decimal.Decimal

		if err := rows.Scan(&accountType, &code, &name, &net); err != nil {
			return nil, nil, nil, fmt.Errorf("error scanning balance sheet row: %w", err)
		}

		accountAmount := domain.AccountAmount{
			AccountCode: code,
			AccountName: name,
			NetAmount:   net,
		}

		switch domain.AccountType(accountType) {
		case domain.AccountTypeAsset:
			assets = append(assets, accountAmount)
		case domain.AccountTypeLiability:
			accountAmount.NetAmount = net.Neg()
			liabilities = append(liabilities, accountAmount)
		case domain.AccountTypeEquity:
			accountAmount.NetAmount = net.Neg()
			equity = append(equity, accountAmount)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, nil, fmt.Errorf("error iterating balance sheet rows: %w", err)
	}
	return assets, liabilities, equity, nil
}

// GetDayBookEntries returns every journal entry dated on the given day with
// its lines and account metadata, in creation order.
func (r *reportingRepository) GetDayBookEntries(ctx context.Context, businessID string, date time.Time) ([]domain.DayBookEntry, error) {
	entryQuery := `
		SELECT entry_id, business_id, entry_date, description, reference_type, reference_id, created_at
		FROM journal_entries
		WHERE business_id = $1 AND entry_date::date = $2::date
		ORDER BY created_at
	`

	rows, err := r.Pool.Query(ctx, entryQuery, businessID, date)
	if err != nil {
		return nil, fmt.Errorf("error querying day book entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.DayBookEntry{}
	entryIndex := map[string]int{}
	entryIDs := []string{}
	for rows.Next() {
		var entry domain.JournalEntry
		if err := rows.Scan(
			&entry.EntryID,
			&entry.BusinessID,
			&entry.Date,
			&entry.Description,
			&entry.ReferenceType,
			&entry.ReferenceID,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning day book entry: %w", err)
		}
		entryIndex[entry.EntryID] = len(entries)
		entryIDs = append(entryIDs, entry.EntryID)
		entries = append(entries, domain.DayBookEntry{Entry: entry, Lines: []domain.DayBookLine{}})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating day book entries: %w", err)
	}

	if len(entries) == 0 {
		return entries, nil
	}

	lineQuery := `
		SELECT l.entry_id, a.code, a.name, l.debit, l.credit
		FROM journal_lines l
		JOIN accounts a ON l.account_id = a.account_id
		WHERE l.entry_id = ANY($1)
		ORDER BY l.line_id
	`
	lineRows, err := r.Pool.Query(ctx, lineQuery, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("error querying day book lines: %w", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var entryID string
		var line domain.DayBookLine
		if err := lineRows.Scan(&entryID, &line.AccountCode, &line.AccountName, &line.Debit, &line.Credit); err != nil {
			return nil, fmt.Errorf("error scanning day book line: %w", err)
		}
		idx := entryIndex[entryID]
		entries[idx].Lines = append(entries[idx].Lines, line)
	}
	if err := lineRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating day book lines: %w", err)
	}

	return entries, nil
}
