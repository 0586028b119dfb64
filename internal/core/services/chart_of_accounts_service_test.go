package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tradekeep/tradekeep_backend/internal/apperrors"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/core/services"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
)

type ChartOfAccountsServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.ChartOfAccountsSvcFacade
	businessID      string
	userID          string
}

func (suite *ChartOfAccountsServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewChartOfAccountsService(suite.mockAccountRepo)
	suite.businessID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *ChartOfAccountsServiceTestSuite) TestSeedDefaultAccounts() {
	ctx := context.Background()

	suite.mockAccountRepo.On("SaveAccounts", ctx, mock.AnythingOfType("[]domain.Account")).Return(nil).Once()

	err := suite.service.SeedDefaultAccounts(ctx, suite.businessID, suite.userID)

	suite.Require().NoError(err)

	seeded := suite.mockAccountRepo.Calls[0].Arguments.Get(1).([]domain.Account)
	suite.Len(seeded, 15)

	byCode := make(map[string]domain.Account, len(seeded))
	for _, acc := range seeded {
		suite.Equal(suite.businessID, acc.BusinessID)
		suite.Equal(suite.userID, acc.CreatedBy)
		suite.NotEmpty(acc.AccountID)
		byCode[acc.Code] = acc
	}

	// The core accounts the originators depend on must all be present.
	suite.Equal(domain.AccountTypeAsset, byCode["1001"].AccountType)
	suite.Equal(domain.AccountTypeAsset, byCode["1002"].AccountType)
	suite.Equal(domain.AccountTypeAsset, byCode["1003"].AccountType)
	suite.Equal(domain.AccountTypeLiability, byCode["2001"].AccountType)
	suite.Equal(domain.AccountTypeRevenue, byCode["4001"].AccountType)
	suite.Equal(domain.AccountTypeExpense, byCode["5001"].AccountType)
	suite.Equal(domain.AccountTypeExpense, byCode["6008"].AccountType)
}

func (suite *ChartOfAccountsServiceTestSuite) TestResolveAccounts_AllFound() {
	ctx := context.Background()
	accounts := map[string]domain.Account{
		"1001": {AccountID: uuid.NewString(), Code: "1001"},
		"4001": {AccountID: uuid.NewString(), Code: "4001"},
	}

	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, suite.businessID, []string{"1001", "4001"}).Return(accounts, nil).Once()

	got, err := suite.service.ResolveAccounts(ctx, suite.businessID, []string{"1001", "4001"})

	suite.Require().NoError(err)
	suite.Equal(accounts, got)
}

func (suite *ChartOfAccountsServiceTestSuite) TestResolveAccounts_DeduplicatesCodes() {
	ctx := context.Background()
	accounts := map[string]domain.Account{
		"1001": {AccountID: uuid.NewString(), Code: "1001"},
	}

	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, suite.businessID, []string{"1001"}).Return(accounts, nil).Once()

	_, err := suite.service.ResolveAccounts(ctx, suite.businessID, []string{"1001", "1001", "1001"})

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *ChartOfAccountsServiceTestSuite) TestResolveAccounts_ReportsEveryMiss() {
	ctx := context.Background()
	accounts := map[string]domain.Account{
		"1001": {AccountID: uuid.NewString(), Code: "1001"},
	}

	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, suite.businessID, mock.Anything).Return(accounts, nil).Once()

	_, err := suite.service.ResolveAccounts(ctx, suite.businessID, []string{"1001", "7777", "8888"})

	suite.Require().Error(err)
	var resErr *apperrors.AccountResolutionError
	suite.Require().ErrorAs(err, &resErr)
	suite.Equal([]string{"7777", "8888"}, resErr.MissingCodes)
}

func (suite *ChartOfAccountsServiceTestSuite) TestCreateAccount() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "7001", Name: "Freight", Type: domain.AccountTypeExpense}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("7001", account.Code)
	suite.Equal(domain.AccountTypeExpense, account.AccountType)
	suite.Equal(suite.businessID, account.BusinessID)
	suite.NotEmpty(account.AccountID)
}

func (suite *ChartOfAccountsServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "1001", Name: "Cash Again", Type: domain.AccountTypeAsset}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateAccount(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ChartOfAccountsServiceTestSuite) TestAccountForExpenseCategory() {
	code, err := suite.service.AccountForExpenseCategory(domain.CatRawMaterials)
	suite.Require().NoError(err)
	suite.Equal("5001", code)

	code, err = suite.service.AccountForExpenseCategory(domain.CatRent)
	suite.Require().NoError(err)
	suite.Equal("6002", code)

	_, err = suite.service.AccountForExpenseCategory("no-such-category")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ChartOfAccountsServiceTestSuite) TestAccountForPaymentMode() {
	code, err := suite.service.AccountForPaymentMode(domain.PayCash)
	suite.Require().NoError(err)
	suite.Equal("1001", code)

	code, err = suite.service.AccountForPaymentMode(domain.PayUPI)
	suite.Require().NoError(err)
	suite.Equal("1002", code)

	code, err = suite.service.AccountForPaymentMode(domain.PayBankTransfer)
	suite.Require().NoError(err)
	suite.Equal("1002", code)

	_, err = suite.service.AccountForPaymentMode("barter")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestChartOfAccountsService(t *testing.T) {
	suite.Run(t, new(ChartOfAccountsServiceTestSuite))
}
