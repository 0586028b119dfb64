package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/tradekeep/tradekeep_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		JournalRepo:   newPgxJournalRepository(dbPool),
		BusinessRepo:  newPgxBusinessRepository(dbPool),
		ProfileRepo:   newPgxProfileRepository(dbPool),
		CustomerRepo:  newPgxCustomerRepository(dbPool),
		LeadRepo:      newPgxLeadRepository(dbPool),
		QuotationRepo: newPgxQuotationRepository(dbPool),
		InvoiceRepo:   newPgxInvoiceRepository(dbPool),
		PaymentRepo:   newPgxPaymentRepository(dbPool),
		ExpenseRepo:   newPgxExpenseRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
