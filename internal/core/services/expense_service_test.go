package services_test

import (
	"context"
	"testing"
	"time"

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

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo *MockExpenseRepository
	mockAccountSvc  *MockChartOfAccountsService
	mockPostingSvc  *MockPostingService
	service         portssvc.ExpenseSvcFacade
	businessID      string
	userID          string
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockAccountSvc = new(MockChartOfAccountsService)
	suite.mockPostingSvc = new(MockPostingService)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockAccountSvc, suite.mockPostingSvc)

	suite.businessID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *ExpenseServiceTestSuite) pendingExpense() *domain.Expense {
	return &domain.Expense{
		ExpenseID:     uuid.NewString(),
		BusinessID:    suite.businessID,
		ExpenseNumber: "EXP-2026-1",
		Category:      domain.CatRent,
		Amount:        decimal.NewFromInt(5000),
		Description:   "Workshop rent",
		ExpenseDate:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		PaymentMode:   domain.PayBankTransfer,
		Status:        domain.ExpensePending,
		CreatedBy:     suite.userID,
	}
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_PostsJournalEntry() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Category:    domain.CatRent,
		VendorName:  "Landlord Co",
		Amount:      decimal.NewFromInt(5000),
		Description: "Workshop rent",
		ExpenseDate: "2026-08-01",
		PaymentMode: domain.PayBankTransfer,
	}

	suite.mockAccountSvc.On("AccountForExpenseCategory", domain.CatRent).Return("6002", nil).Once()
	suite.mockAccountSvc.On("AccountForPaymentMode", domain.PayBankTransfer).Return("1002", nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()
	suite.mockPostingSvc.On("PostJournalEntry", ctx, suite.businessID, mock.Anything).Return(&domain.JournalEntry{}, nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ExpensePending, expense.Status)
	suite.Equal(suite.userID, expense.CreatedBy)
	suite.Contains(expense.ExpenseNumber, "EXP-")

	input := suite.mockPostingSvc.Calls[0].Arguments.Get(2).(portssvc.PostJournalEntryInput)
	suite.Equal(domain.RefExpense, input.ReferenceType)
	suite.Equal(expense.ExpenseID, input.ReferenceID)
	suite.Equal(expense.ExpenseDate, input.Date)
	suite.Require().Len(input.Lines, 2)
	suite.Equal("6002", input.Lines[0].AccountCode)
	suite.Equal("5000", input.Lines[0].Debit.String())
	suite.Equal("1002", input.Lines[1].AccountCode)
	suite.Equal("5000", input.Lines[1].Credit.String())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_DefaultsToCash() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Category:    domain.CatOther,
		VendorName:  "Corner Shop",
		Amount:      decimal.NewFromInt(200),
		Description: "Stationery",
		ExpenseDate: "2026-08-02",
	}

	suite.mockAccountSvc.On("AccountForExpenseCategory", domain.CatOther).Return("6008", nil).Once()
	suite.mockAccountSvc.On("AccountForPaymentMode", domain.PayCash).Return("1001", nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.Anything).Return(nil).Once()
	suite.mockPostingSvc.On("PostJournalEntry", ctx, suite.businessID, mock.Anything).Return(&domain.JournalEntry{}, nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.PayCash, expense.PaymentMode)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_PostingFailureDeletesExpense() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Category:    domain.CatRent,
		VendorName:  "Landlord Co",
		Amount:      decimal.NewFromInt(5000),
		Description: "Workshop rent",
		ExpenseDate: "2026-08-01",
		PaymentMode: domain.PayCash,
	}

	suite.mockAccountSvc.On("AccountForExpenseCategory", domain.CatRent).Return("6002", nil).Once()
	suite.mockAccountSvc.On("AccountForPaymentMode", domain.PayCash).Return("1001", nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.Anything).Return(nil).Once()
	suite.mockPostingSvc.On("PostJournalEntry", ctx, suite.businessID, mock.Anything).Return(nil, assert.AnError).Once()
	suite.mockExpenseRepo.On("DeleteExpense", ctx, suite.businessID, mock.AnythingOfType("string")).Return(nil).Once()

	_, err := suite.service.CreateExpense(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_InvalidCategory() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Category:    "no-such-category",
		VendorName:  "Vendor",
		Amount:      decimal.NewFromInt(100),
		Description: "Something",
		ExpenseDate: "2026-08-01",
	}

	suite.mockAccountSvc.On("AccountForExpenseCategory", domain.ExpenseCategory("no-such-category")).
		Return("", apperrors.ErrValidation).Once()

	_, err := suite.service.CreateExpense(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_AmountChangeReposts() {
	ctx := context.Background()
	expense := suite.pendingExpense()
	newAmount := decimal.NewFromInt(6000)
	req := dto.UpdateExpenseRequest{Amount: &newAmount}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, suite.businessID, expense.ExpenseID).Return(expense, nil).Once()
	suite.mockAccountSvc.On("AccountForExpenseCategory", domain.CatRent).Return("6002", nil).Once()
	suite.mockAccountSvc.On("AccountForPaymentMode", domain.PayBankTransfer).Return("1002", nil).Once()
	suite.mockPostingSvc.On("ReverseByReference", ctx, suite.businessID, domain.RefExpense, expense.ExpenseID).Return(nil).Once()
	suite.mockPostingSvc.On("PostJournalEntry", ctx, suite.businessID, mock.Anything).Return(&domain.JournalEntry{}, nil).Once()
	suite.mockExpenseRepo.On("UpdateExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	updated, err := suite.service.UpdateExpense(ctx, suite.businessID, expense.ExpenseID, req)

	suite.Require().NoError(err)
	suite.Equal("6000", updated.Amount.String())
	suite.mockPostingSvc.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_RepostFailureRestoresRowAndLedger() {
	ctx := context.Background()
	expense := suite.pendingExpense()
	newAmount := decimal.NewFromInt(6000)
	req := dto.UpdateExpenseRequest{Amount: &newAmount}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, suite.businessID, expense.ExpenseID).Return(expense, nil).Once()
	suite.mockAccountSvc.On("AccountForExpenseCategory", domain.CatRent).Return("6002", nil).Twice()
	suite.mockAccountSvc.On("AccountForPaymentMode", domain.PayBankTransfer).Return("1002", nil).Twice()
	suite.mockExpenseRepo.On("UpdateExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Twice()
	suite.mockPostingSvc.On("ReverseByReference", ctx, suite.businessID, domain.RefExpense, expense.ExpenseID).Return(nil).Once()
	suite.mockPostingSvc.On("PostJournalEntry", ctx, suite.businessID, mock.Anything).Return(nil, assert.AnError).Once()
	suite.mockPostingSvc.On("PostJournalEntry", ctx, suite.businessID, mock.Anything).Return(&domain.JournalEntry{}, nil).Once()

	_, err := suite.service.UpdateExpense(ctx, suite.businessID, expense.ExpenseID, req)

	suite.Require().Error(err)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockPostingSvc.AssertExpectations(suite.T())

	// The row write that follows the failed post restores the old amount.
	restored := suite.mockExpenseRepo.Calls[2].Arguments.Get(1).(domain.Expense)
	suite.Equal("UpdateExpense", suite.mockExpenseRepo.Calls[2].Method)
	suite.Equal("5000", restored.Amount.String())

	// The compensating entry carries the old amount as well.
	reposted := suite.mockPostingSvc.Calls[2].Arguments.Get(2).(portssvc.PostJournalEntryInput)
	suite.Require().Len(reposted.Lines, 2)
	suite.Equal("5000", reposted.Lines[0].Debit.String())
	suite.Equal("5000", reposted.Lines[1].Credit.String())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_NotesOnlyDoesNotRepost() {
	ctx := context.Background()
	expense := suite.pendingExpense()
	notes := "paid late"
	req := dto.UpdateExpenseRequest{Notes: &notes}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, suite.businessID, expense.ExpenseID).Return(expense, nil).Once()
	suite.mockExpenseRepo.On("UpdateExpense", ctx, mock.Anything).Return(nil).Once()

	updated, err := suite.service.UpdateExpense(ctx, suite.businessID, expense.ExpenseID, req)

	suite.Require().NoError(err)
	suite.Equal("paid late", updated.Notes)
	suite.mockPostingSvc.AssertNotCalled(suite.T(), "ReverseByReference", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockPostingSvc.AssertNotCalled(suite.T(), "PostJournalEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_NonPendingRejected() {
	ctx := context.Background()
	expense := suite.pendingExpense()
	expense.Status = domain.ExpenseApproved
	notes := "x"
	req := dto.UpdateExpenseRequest{Notes: &notes}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, suite.businessID, expense.ExpenseID).Return(expense, nil).Once()

	_, err := suite.service.UpdateExpense(ctx, suite.businessID, expense.ExpenseID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_ReversesJournal() {
	ctx := context.Background()
	expense := suite.pendingExpense()

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, suite.businessID, expense.ExpenseID).Return(expense, nil).Once()
	suite.mockPostingSvc.On("ReverseByReference", ctx, suite.businessID, domain.RefExpense, expense.ExpenseID).Return(nil).Once()
	suite.mockExpenseRepo.On("DeleteExpense", ctx, suite.businessID, expense.ExpenseID).Return(nil).Once()

	err := suite.service.DeleteExpense(ctx, suite.businessID, expense.ExpenseID)

	suite.Require().NoError(err)
	suite.mockPostingSvc.AssertExpectations(suite.T())
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestApproveExpense() {
	ctx := context.Background()
	expense := suite.pendingExpense()
	approver := uuid.NewString()

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, suite.businessID, expense.ExpenseID).Return(expense, nil).Once()
	suite.mockExpenseRepo.On("UpdateExpense", ctx, mock.Anything).Return(nil).Once()

	approved, err := suite.service.ApproveExpense(ctx, suite.businessID, expense.ExpenseID, approver)

	suite.Require().NoError(err)
	suite.Equal(domain.ExpenseApproved, approved.Status)
	suite.Equal(approver, approved.ApprovedBy)
	suite.NotNil(approved.ApprovedAt)
	// Approval never touches the ledger; the entry was posted at creation.
	suite.mockPostingSvc.AssertNotCalled(suite.T(), "ReverseByReference", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestRejectExpense_ReversesJournal() {
	ctx := context.Background()
	expense := suite.pendingExpense()
	rejecter := uuid.NewString()

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, suite.businessID, expense.ExpenseID).Return(expense, nil).Once()
	suite.mockPostingSvc.On("ReverseByReference", ctx, suite.businessID, domain.RefExpense, expense.ExpenseID).Return(nil).Once()
	suite.mockExpenseRepo.On("UpdateExpense", ctx, mock.Anything).Return(nil).Once()

	rejected, err := suite.service.RejectExpense(ctx, suite.businessID, expense.ExpenseID, rejecter, "duplicate claim")

	suite.Require().NoError(err)
	suite.Equal(domain.ExpenseRejected, rejected.Status)
	suite.Equal(rejecter, rejected.RejectedBy)
	suite.Equal("duplicate claim", rejected.RejectionReason)
	suite.NotNil(rejected.RejectedAt)
	suite.mockPostingSvc.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestRejectExpense_SucceedsWhenCleanupFails() {
	ctx := context.Background()
	expense := suite.pendingExpense()

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, suite.businessID, expense.ExpenseID).Return(expense, nil).Once()
	suite.mockExpenseRepo.On("UpdateExpense", ctx, mock.Anything).Return(nil).Once()
	suite.mockPostingSvc.On("ReverseByReference", ctx, suite.businessID, domain.RefExpense, expense.ExpenseID).
		Return(assert.AnError).Once()

	rejected, err := suite.service.RejectExpense(ctx, suite.businessID, expense.ExpenseID, suite.userID, "duplicate claim")

	suite.Require().NoError(err)
	suite.Equal(domain.ExpenseRejected, rejected.Status)
}

func (suite *ExpenseServiceTestSuite) TestRejectExpense_AlreadyRejected() {
	ctx := context.Background()
	expense := suite.pendingExpense()
	expense.Status = domain.ExpenseRejected

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, suite.businessID, expense.ExpenseID).Return(expense, nil).Once()

	_, err := suite.service.RejectExpense(ctx, suite.businessID, expense.ExpenseID, suite.userID, "again")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPostingSvc.AssertNotCalled(suite.T(), "ReverseByReference", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExpenseService(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
