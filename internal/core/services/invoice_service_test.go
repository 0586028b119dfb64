package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tradekeep/tradekeep_backend/internal/apperrors"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/core/services"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo   *MockInvoiceRepository
	mockQuotationRepo *MockQuotationRepository
	mockCustomerRepo  *MockCustomerRepository
	mockPostingSvc    *MockPostingService
	service           portssvc.InvoiceSvcFacade
	businessID        string
	userID            string
	customer          domain.Customer
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockQuotationRepo = new(MockQuotationRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockPostingSvc = new(MockPostingService)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockQuotationRepo, suite.mockCustomerRepo, suite.mockPostingSvc)

	suite.businessID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.customer = domain.Customer{
		CustomerID: uuid.NewString(),
		BusinessID: suite.businessID,
		Name:       "Acme Traders",
	}
}

func gstInvoiceRequest(customerID string) dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		CustomerID: customerID,
		Items: []dto.InvoiceItemRequest{
			{Description: "Widgets", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(100)},
		},
		Subtotal:     decimal.NewFromInt(1000),
		TaxPercent:   decimal.NewFromInt(18),
		DueDate:      "2026-10-15",
		IsGSTInvoice: true,
	}
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_GSTMath() {
	ctx := context.Background()
	req := gstInvoiceRequest(suite.customer.CustomerID)

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.businessID, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice"), mock.AnythingOfType("[]domain.InvoiceItem")).Return(nil).Once()
	suite.mockPostingSvc.On("PostJournalEntry", ctx, suite.businessID, mock.AnythingOfType("services.PostJournalEntryInput")).Return(&domain.JournalEntry{EntryID: uuid.NewString()}, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("180", invoice.TaxAmount.String())
	suite.Equal("1180", invoice.TotalAmount.String())
	suite.Equal("1180", invoice.BalanceAmount.String())
	suite.True(invoice.PaidAmount.IsZero())
	suite.Equal(domain.InvoicePending, invoice.Status)
	suite.Contains(invoice.InvoiceNumber, "INV-")

	// The posted entry debits AR for the total and credits sales and tax.
	input := suite.mockPostingSvc.Calls[0].Arguments.Get(2).(portssvc.PostJournalEntryInput)
	suite.Equal(domain.RefInvoice, input.ReferenceType)
	suite.Equal(invoice.InvoiceID, input.ReferenceID)
	suite.Require().Len(input.Lines, 3)
	suite.Equal("1003", input.Lines[0].AccountCode)
	suite.Equal("1180", input.Lines[0].Debit.String())
	suite.Equal("4001", input.Lines[1].AccountCode)
	suite.Equal("1000", input.Lines[1].Credit.String())
	suite.Equal("2001", input.Lines[2].AccountCode)
	suite.Equal("180", input.Lines[2].Credit.String())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ZeroTaxSkipsTaxLine() {
	ctx := context.Background()
	req := gstInvoiceRequest(suite.customer.CustomerID)
	req.TaxPercent = decimal.Zero
	req.IsGSTInvoice = false

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.businessID, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPostingSvc.On("PostJournalEntry", ctx, suite.businessID, mock.Anything).Return(&domain.JournalEntry{}, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("1000", invoice.TotalAmount.String())

	input := suite.mockPostingSvc.Calls[0].Arguments.Get(2).(portssvc.PostJournalEntryInput)
	suite.Len(input.Lines, 2)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NonGSTIgnoresTaxPercent() {
	ctx := context.Background()
	req := gstInvoiceRequest(suite.customer.CustomerID)
	req.IsGSTInvoice = false

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.businessID, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPostingSvc.On("PostJournalEntry", ctx, suite.businessID, mock.Anything).Return(&domain.JournalEntry{}, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(invoice.TaxAmount.IsZero())
	suite.Equal("1000", invoice.TotalAmount.String())
	suite.Equal("1000", invoice.BalanceAmount.String())

	input := suite.mockPostingSvc.Calls[0].Arguments.Get(2).(portssvc.PostJournalEntryInput)
	suite.Require().Len(input.Lines, 2)
	suite.Equal("1000", input.Lines[0].Debit.String())
	suite.Equal("1000", input.Lines[1].Credit.String())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_PostingFailureDeletesInvoice() {
	ctx := context.Background()
	req := gstInvoiceRequest(suite.customer.CustomerID)
	postErr := &apperrors.AccountResolutionError{MissingCodes: []string{"4001"}}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.businessID, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPostingSvc.On("PostJournalEntry", ctx, suite.businessID, mock.Anything).Return(nil, postErr).Once()
	suite.mockInvoiceRepo.On("DeleteInvoice", ctx, suite.businessID, mock.AnythingOfType("string")).Return(nil).Once()

	_, err := suite.service.CreateInvoice(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	var resErr *apperrors.AccountResolutionError
	suite.ErrorAs(err, &resErr)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_QuotationAlreadyInvoiced() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	req := gstInvoiceRequest("")
	req.QuotationID = quotationID
	existing := &domain.Invoice{InvoiceID: uuid.NewString(), InvoiceNumber: "INV-2026-1"}

	suite.mockInvoiceRepo.On("FindInvoiceByQuotationID", ctx, suite.businessID, quotationID).Return(existing, nil).Once()

	_, err := suite.service.CreateInvoice(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_InheritsCustomerFromQuotation() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	req := gstInvoiceRequest("")
	req.QuotationID = quotationID
	quotation := &domain.Quotation{QuotationID: quotationID, CustomerID: suite.customer.CustomerID}

	suite.mockInvoiceRepo.On("FindInvoiceByQuotationID", ctx, suite.businessID, quotationID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockQuotationRepo.On("FindQuotationByID", ctx, suite.businessID, quotationID).Return(quotation, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.businessID, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPostingSvc.On("PostJournalEntry", ctx, suite.businessID, mock.Anything).Return(&domain.JournalEntry{}, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(suite.customer.CustomerID, invoice.CustomerID)
	suite.Equal(quotationID, invoice.QuotationID)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NoCustomerOrQuotation() {
	ctx := context.Background()
	req := gstInvoiceRequest("")

	_, err := suite.service.CreateInvoice(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_BadDueDate() {
	ctx := context.Background()
	req := gstInvoiceRequest(suite.customer.CustomerID)
	req.DueDate = "15/10/2026"

	_, err := suite.service.CreateInvoice(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices() {
	ctx := context.Background()
	invoices := []domain.Invoice{
		{InvoiceID: uuid.NewString(), InvoiceNumber: "INV-2026-1"},
		{InvoiceID: uuid.NewString(), InvoiceNumber: "INV-2026-2"},
	}

	suite.mockInvoiceRepo.On("ListInvoices", ctx, suite.businessID, 20, 0).Return(invoices, nil).Once()
	suite.mockInvoiceRepo.On("CountInvoices", ctx, suite.businessID).Return(int64(42), nil).Once()

	resp, err := suite.service.ListInvoices(ctx, suite.businessID, dto.ListParams{Page: 1, Limit: 20})

	suite.Require().NoError(err)
	suite.Len(resp.Data, 2)
	suite.Equal(int64(42), resp.Pagination.TotalItems)
	suite.Equal(3, resp.Pagination.TotalPages)
	suite.True(resp.Pagination.HasNextPage)
	suite.False(resp.Pagination.HasPrevPage)
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_RepoError() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.businessID, invoiceID).Return(nil, assert.AnError).Once()

	_, err := suite.service.GetInvoiceByID(ctx, suite.businessID, invoiceID)

	suite.Require().Error(err)
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
