package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portsrepo "github.com/tradekeep/tradekeep_backend/internal/core/ports/repositories"
	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, businessID, code string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByCodes(ctx context.Context, businessID string, codes []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, businessID, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, businessID string) ([]domain.Account, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	args := m.Called(ctx, entry, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, businessID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, businessID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) DeleteEntriesByReference(ctx context.Context, businessID string, refType domain.ReferenceType, refID string) (int64, error) {
	args := m.Called(ctx, businessID, refType, refID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ChartOfAccountsService ---

type MockChartOfAccountsService struct {
	mock.Mock
}

var _ portssvc.ChartOfAccountsSvcFacade = (*MockChartOfAccountsService)(nil)

func (m *MockChartOfAccountsService) SeedDefaultAccounts(ctx context.Context, businessID, creatorUserID string) error {
	args := m.Called(ctx, businessID, creatorUserID)
	return args.Error(0)
}

func (m *MockChartOfAccountsService) ResolveAccounts(ctx context.Context, businessID string, codes []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, businessID, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockChartOfAccountsService) CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockChartOfAccountsService) GetAccountByCode(ctx context.Context, businessID, code string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockChartOfAccountsService) ListAccounts(ctx context.Context, businessID string) ([]domain.Account, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockChartOfAccountsService) AccountForExpenseCategory(category domain.ExpenseCategory) (string, error) {
	args := m.Called(category)
	return args.String(0), args.Error(1)
}

func (m *MockChartOfAccountsService) AccountForPaymentMode(mode domain.PaymentMethod) (string, error) {
	args := m.Called(mode)
	return args.String(0), args.Error(1)
}

// --- Mock PostingService ---

type MockPostingService struct {
	mock.Mock
}

var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

func (m *MockPostingService) PostJournalEntry(ctx context.Context, businessID string, input portssvc.PostJournalEntryInput) (*domain.JournalEntry, error) {
	args := m.Called(ctx, businessID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockPostingService) GetJournalEntry(ctx context.Context, businessID, entryID string) (*domain.JournalEntry, []domain.JournalLine, error) {
	args := m.Called(ctx, businessID, entryID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.JournalEntry), args.Get(1).([]domain.JournalLine), args.Error(2)
}

func (m *MockPostingService) ReverseByReference(ctx context.Context, businessID string, refType domain.ReferenceType, refID string) error {
	args := m.Called(ctx, businessID, refType, refID)
	return args.Error(0)
}

// --- Mock InvoiceRepository ---

type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, items []domain.InvoiceItem) error {
	args := m.Called(ctx, invoice, items)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, businessID, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, businessID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceByQuotationID(ctx context.Context, businessID, quotationID string) (*domain.Invoice, error) {
	args := m.Called(ctx, businessID, quotationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, businessID string, limit, offset int) ([]domain.Invoice, error) {
	args := m.Called(ctx, businessID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) CountInvoices(ctx context.Context, businessID string) (int64, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoicePayment(ctx context.Context, businessID, invoiceID string, paid, balance decimal.Decimal, status domain.InvoiceStatus, updatedAt time.Time) error {
	args := m.Called(ctx, businessID, invoiceID, paid, balance, status, updatedAt)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, businessID, invoiceID string) error {
	args := m.Called(ctx, businessID, invoiceID)
	return args.Error(0)
}

// --- Mock QuotationRepository ---

type MockQuotationRepository struct {
	mock.Mock
}

var _ portsrepo.QuotationRepositoryFacade = (*MockQuotationRepository)(nil)

func (m *MockQuotationRepository) SaveQuotation(ctx context.Context, quotation domain.Quotation, items []domain.QuotationItem) error {
	args := m.Called(ctx, quotation, items)
	return args.Error(0)
}

func (m *MockQuotationRepository) FindQuotationByID(ctx context.Context, businessID, quotationID string) (*domain.Quotation, error) {
	args := m.Called(ctx, businessID, quotationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) ListQuotations(ctx context.Context, businessID string) ([]domain.Quotation, map[string][]domain.QuotationItem, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Quotation), args.Get(1).(map[string][]domain.QuotationItem), args.Error(2)
}

func (m *MockQuotationRepository) UpdateQuotation(ctx context.Context, quotation domain.Quotation, items []domain.QuotationItem) error {
	args := m.Called(ctx, quotation, items)
	return args.Error(0)
}

func (m *MockQuotationRepository) DeleteQuotation(ctx context.Context, businessID, quotationID string) error {
	args := m.Called(ctx, businessID, quotationID)
	return args.Error(0)
}

// --- Mock CustomerRepository ---

type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, businessID, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, businessID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByLeadID(ctx context.Context, businessID, leadID string) (*domain.Customer, error) {
	args := m.Called(ctx, businessID, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, businessID string, limit, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, businessID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) CountCustomers(ctx context.Context, businessID string) (int64, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, businessID, customerID string) error {
	args := m.Called(ctx, businessID, customerID)
	return args.Error(0)
}

// --- Mock LeadRepository ---

type MockLeadRepository struct {
	mock.Mock
}

var _ portsrepo.LeadRepositoryFacade = (*MockLeadRepository)(nil)

func (m *MockLeadRepository) SaveLead(ctx context.Context, lead domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindLeadByID(ctx context.Context, businessID, leadID string) (*domain.Lead, error) {
	args := m.Called(ctx, businessID, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) ListLeads(ctx context.Context, businessID string, limit, offset int) ([]domain.Lead, error) {
	args := m.Called(ctx, businessID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) CountLeads(ctx context.Context, businessID string) (int64, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeadRepository) UpdateLead(ctx context.Context, lead domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateLeadStatus(ctx context.Context, businessID, leadID string, status domain.LeadStatus) error {
	args := m.Called(ctx, businessID, leadID, status)
	return args.Error(0)
}

func (m *MockLeadRepository) DeleteLead(ctx context.Context, businessID, leadID string) error {
	args := m.Called(ctx, businessID, leadID)
	return args.Error(0)
}

func (m *MockLeadRepository) SaveLeadNote(ctx context.Context, note domain.LeadNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockLeadRepository) ListLeadNotes(ctx context.Context, businessID, leadID string) ([]domain.LeadNote, error) {
	args := m.Called(ctx, businessID, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeadNote), args.Error(1)
}

// --- Mock PaymentRepository ---

type MockPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, businessID string) ([]domain.Payment, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, businessID, paymentID string) error {
	args := m.Called(ctx, businessID, paymentID)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---

type MockExpenseRepository struct {
	mock.Mock
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, businessID, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, businessID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, businessID string, limit, offset int) ([]domain.Expense, error) {
	args := m.Called(ctx, businessID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) CountExpenses(ctx context.Context, businessID string) (int64, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, businessID, expenseID string) error {
	args := m.Called(ctx, businessID, expenseID)
	return args.Error(0)
}

// --- Mock BusinessRepository ---

type MockBusinessRepository struct {
	mock.Mock
}

var _ portsrepo.BusinessRepositoryFacade = (*MockBusinessRepository)(nil)

func (m *MockBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	args := m.Called(ctx, business)
	return args.Error(0)
}

func (m *MockBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

// --- Mock ProfileRepository ---

type MockProfileRepository struct {
	mock.Mock
}

var _ portsrepo.ProfileRepositoryFacade = (*MockProfileRepository)(nil)

func (m *MockProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetLedgerLines(ctx context.Context, accountID string) ([]domain.LedgerLine, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerLine), args.Error(1)
}

func (m *MockReportingRepository) GetTrialBalanceData(ctx context.Context, businessID string) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

func (m *MockReportingRepository) GetProfitAndLossData(ctx context.Context, businessID string, from, to *time.Time) ([]domain.AccountAmount, []domain.AccountAmount, error) {
	args := m.Called(ctx, businessID, from, to)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.AccountAmount), args.Get(1).([]domain.AccountAmount), args.Error(2)
}

func (m *MockReportingRepository) GetBalanceSheetData(ctx context.Context, businessID string, asOf time.Time) ([]domain.AccountAmount, []domain.AccountAmount, []domain.AccountAmount, error) {
	args := m.Called(ctx, businessID, asOf)
	if args.Get(0) == nil {
		return nil, nil, nil, args.Error(3)
	}
	return args.Get(0).([]domain.AccountAmount), args.Get(1).([]domain.AccountAmount), args.Get(2).([]domain.AccountAmount), args.Error(3)
}

func (m *MockReportingRepository) GetDayBookEntries(ctx context.Context, businessID string, date time.Time) ([]domain.DayBookEntry, error) {
	args := m.Called(ctx, businessID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DayBookEntry), args.Error(1)
}
