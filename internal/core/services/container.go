package services

import (
	portsrepo "github.com/tradekeep/tradekeep_backend/internal/core/ports/repositories"
	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
)

// Container holds all the services and manages their dependencies
type Container struct {
	Accounts  portssvc.ChartOfAccountsSvcFacade
	Posting   portssvc.PostingSvcFacade
	Reporting portssvc.ReportingSvcFacade
	Business  portssvc.BusinessSvcFacade
	Customer  portssvc.CustomerSvcFacade
	Lead      portssvc.LeadSvcFacade
	Quotation portssvc.QuotationSvcFacade
	Invoice   portssvc.InvoiceSvcFacade
	Payment   portssvc.PaymentSvcFacade
	Expense   portssvc.ExpenseSvcFacade
}

// NewContainer creates a new service container with properly initialized dependencies
func NewContainer(repos *portsrepo.RepositoryProvider) *Container {
	container := &Container{}

	// The chart of accounts and posting engine come first; every originator
	// depends on them.
	container.Accounts = NewChartOfAccountsService(repos.AccountRepo)
	container.Posting = NewPostingService(repos.JournalRepo, container.Accounts)

	container.Reporting = NewReportingService(repos.ReportingRepo, repos.AccountRepo)
	container.Business = NewBusinessService(repos.BusinessRepo, repos.ProfileRepo, container.Accounts)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Lead = NewLeadService(repos.LeadRepo, repos.CustomerRepo)
	container.Quotation = NewQuotationService(repos.QuotationRepo)

	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.QuotationRepo, repos.CustomerRepo, container.Posting)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.InvoiceRepo, container.Accounts, container.Posting)
	container.Expense = NewExpenseService(repos.ExpenseRepo, container.Accounts, container.Posting)

	return container
}
