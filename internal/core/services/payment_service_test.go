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

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockInvoiceRepo *MockInvoiceRepository
	mockAccountSvc  *MockChartOfAccountsService
	mockPostingSvc  *MockPostingService
	service         portssvc.PaymentSvcFacade
	businessID      string
	userID          string
	invoice         domain.Invoice
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockAccountSvc = new(MockChartOfAccountsService)
	suite.mockPostingSvc = new(MockPostingService)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockInvoiceRepo, suite.mockAccountSvc, suite.mockPostingSvc)

	suite.businessID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.invoice = domain.Invoice{
		InvoiceID:     uuid.NewString(),
		BusinessID:    suite.businessID,
		CustomerID:    uuid.NewString(),
		InvoiceNumber: "INV-2026-1",
		TotalAmount:   decimal.NewFromInt(1180),
		PaidAmount:    decimal.Zero,
		BalanceAmount: decimal.NewFromInt(1180),
		Status:        domain.InvoicePending,
	}
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_Partial() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		InvoiceID:     suite.invoice.InvoiceID,
		Amount:        decimal.NewFromInt(500),
		PaymentMethod: domain.PayUPI,
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.businessID, suite.invoice.InvoiceID).Return(&suite.invoice, nil).Once()
	suite.mockAccountSvc.On("AccountForPaymentMode", domain.PayUPI).Return("1002", nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	suite.mockPostingSvc.On("PostJournalEntry", ctx, suite.businessID, mock.Anything).Return(&domain.JournalEntry{}, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoicePayment", ctx, suite.businessID, suite.invoice.InvoiceID,
		mock.Anything, mock.Anything, domain.InvoicePartiallyPaid, mock.AnythingOfType("time.Time")).Return(nil).Once()

	resp, err := suite.service.RecordPayment(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("500", resp.PaidAmount.String())
	suite.Equal("680", resp.BalanceAmount.String())
	suite.Equal("partially-paid", resp.Status)
	suite.Contains(resp.ReceiptNumber, "RCPT-")

	// Settlement account debited, receivable credited.
	input := suite.mockPostingSvc.Calls[0].Arguments.Get(2).(portssvc.PostJournalEntryInput)
	suite.Equal(domain.RefPayment, input.ReferenceType)
	suite.Require().Len(input.Lines, 2)
	suite.Equal("1002", input.Lines[0].AccountCode)
	suite.Equal("500", input.Lines[0].Debit.String())
	suite.Equal("1003", input.Lines[1].AccountCode)
	suite.Equal("500", input.Lines[1].Credit.String())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_FullSettlement() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		InvoiceID:     suite.invoice.InvoiceID,
		Amount:        decimal.NewFromInt(1180),
		PaymentMethod: domain.PayCash,
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.businessID, suite.invoice.InvoiceID).Return(&suite.invoice, nil).Once()
	suite.mockAccountSvc.On("AccountForPaymentMode", domain.PayCash).Return("1001", nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.Anything).Return(nil).Once()
	suite.mockPostingSvc.On("PostJournalEntry", ctx, suite.businessID, mock.Anything).Return(&domain.JournalEntry{}, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoicePayment", ctx, suite.businessID, suite.invoice.InvoiceID,
		mock.Anything, mock.Anything, domain.InvoicePaid, mock.AnythingOfType("time.Time")).Return(nil).Once()

	resp, err := suite.service.RecordPayment(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("paid", resp.Status)
	suite.True(resp.BalanceAmount.IsZero())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_OverpaymentRejectedBeforeWrites() {
	ctx := context.Background()
	suite.invoice.PaidAmount = decimal.NewFromInt(500)
	suite.invoice.BalanceAmount = decimal.NewFromInt(680)
	req := dto.RecordPaymentRequest{
		InvoiceID:     suite.invoice.InvoiceID,
		Amount:        decimal.NewFromInt(700),
		PaymentMethod: domain.PayCash,
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.businessID, suite.invoice.InvoiceID).Return(&suite.invoice, nil).Once()

	_, err := suite.service.RecordPayment(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
	suite.mockPostingSvc.AssertNotCalled(suite.T(), "PostJournalEntry", mock.Anything, mock.Anything, mock.Anything)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoicePayment",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		InvoiceID:     suite.invoice.InvoiceID,
		Amount:        decimal.Zero,
		PaymentMethod: domain.PayCash,
	}

	_, err := suite.service.RecordPayment(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "FindInvoiceByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_PostingFailureDeletesPayment() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		InvoiceID:     suite.invoice.InvoiceID,
		Amount:        decimal.NewFromInt(500),
		PaymentMethod: domain.PayCash,
	}
	postErr := assert.AnError

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.businessID, suite.invoice.InvoiceID).Return(&suite.invoice, nil).Once()
	suite.mockAccountSvc.On("AccountForPaymentMode", domain.PayCash).Return("1001", nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.Anything).Return(nil).Once()
	suite.mockPostingSvc.On("PostJournalEntry", ctx, suite.businessID, mock.Anything).Return(nil, postErr).Once()
	suite.mockPaymentRepo.On("DeletePayment", ctx, suite.businessID, mock.AnythingOfType("string")).Return(nil).Once()

	_, err := suite.service.RecordPayment(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, postErr)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoicePayment",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_UnknownInvoice() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		InvoiceID:     uuid.NewString(),
		Amount:        decimal.NewFromInt(100),
		PaymentMethod: domain.PayCash,
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.businessID, req.InvoiceID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordPayment(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
