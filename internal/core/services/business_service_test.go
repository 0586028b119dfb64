package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tradekeep/tradekeep_backend/internal/apperrors"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/core/services"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
)

type BusinessServiceTestSuite struct {
	suite.Suite
	mockBusinessRepo *MockBusinessRepository
	mockProfileRepo  *MockProfileRepository
	mockAccountSvc   *MockChartOfAccountsService
	service          portssvc.BusinessSvcFacade
	userID           string
}

func (suite *BusinessServiceTestSuite) SetupTest() {
	suite.mockBusinessRepo = new(MockBusinessRepository)
	suite.mockProfileRepo = new(MockProfileRepository)
	suite.mockAccountSvc = new(MockChartOfAccountsService)
	suite.service = services.NewBusinessService(suite.mockBusinessRepo, suite.mockProfileRepo, suite.mockAccountSvc)

	suite.userID = uuid.NewString()
}

func (suite *BusinessServiceTestSuite) TestCompleteSignup_ProvisionsBusinessProfileAndAccounts() {
	ctx := context.Background()

	suite.mockProfileRepo.On("FindProfileByUserID", ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockBusinessRepo.On("SaveBusiness", ctx, mock.AnythingOfType("domain.Business")).Return(nil).Once()
	suite.mockProfileRepo.On("SaveProfile", ctx, mock.AnythingOfType("domain.Profile")).Return(nil).Once()
	suite.mockAccountSvc.On("SeedDefaultAccounts", ctx, mock.AnythingOfType("string"), suite.userID).Return(nil).Once()

	business, err := suite.service.CompleteSignup(ctx, suite.userID, "Ravi")

	suite.Require().NoError(err)
	suite.Equal("Ravi's Business", business.Name)
	suite.Equal(suite.userID, business.OwnerID)

	profile := suite.mockProfileRepo.Calls[1].Arguments.Get(1).(domain.Profile)
	suite.Equal(suite.userID, profile.UserID)
	suite.Equal(domain.RoleSuperadmin, profile.Role)
	suite.Equal(business.BusinessID, profile.BusinessID)
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *BusinessServiceTestSuite) TestCompleteSignup_UserAlreadyInBusiness() {
	ctx := context.Background()
	existing := &domain.Profile{UserID: suite.userID, BusinessID: uuid.NewString(), Role: domain.RoleStaff}

	suite.mockProfileRepo.On("FindProfileByUserID", ctx, suite.userID).Return(existing, nil).Once()

	_, err := suite.service.CompleteSignup(ctx, suite.userID, "Ravi Fabrications")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockBusinessRepo.AssertNotCalled(suite.T(), "SaveBusiness", mock.Anything, mock.Anything)
	suite.mockAccountSvc.AssertNotCalled(suite.T(), "SeedDefaultAccounts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BusinessServiceTestSuite) TestProvisionBusiness_SeparateOwnerAndBusinessName() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := dto.ProvisionBusinessRequest{
		OwnerUserID:  ownerID,
		OwnerName:    "Sunita",
		BusinessName: "Sunita Glass Works",
	}

	suite.mockProfileRepo.On("FindProfileByUserID", ctx, ownerID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockBusinessRepo.On("SaveBusiness", ctx, mock.Anything).Return(nil).Once()
	suite.mockProfileRepo.On("SaveProfile", ctx, mock.Anything).Return(nil).Once()
	suite.mockAccountSvc.On("SeedDefaultAccounts", ctx, mock.Anything, ownerID).Return(nil).Once()

	business, err := suite.service.ProvisionBusiness(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Sunita Glass Works", business.Name)
	suite.Equal(ownerID, business.OwnerID)

	profile := suite.mockProfileRepo.Calls[1].Arguments.Get(1).(domain.Profile)
	suite.Equal("Sunita", profile.Name)
}

func (suite *BusinessServiceTestSuite) TestCompleteSignup_SeedFailureSurfaces() {
	ctx := context.Background()

	suite.mockProfileRepo.On("FindProfileByUserID", ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockBusinessRepo.On("SaveBusiness", ctx, mock.Anything).Return(nil).Once()
	suite.mockProfileRepo.On("SaveProfile", ctx, mock.Anything).Return(nil).Once()
	suite.mockAccountSvc.On("SeedDefaultAccounts", ctx, mock.Anything, suite.userID).
		Return(assert.AnError).Once()

	_, err := suite.service.CompleteSignup(ctx, suite.userID, "Ravi Fabrications")

	suite.Require().Error(err)
	suite.Contains(err.Error(), "chart of accounts")
}

func (suite *BusinessServiceTestSuite) TestGetProfileByUserID() {
	ctx := context.Background()
	profile := &domain.Profile{UserID: suite.userID, BusinessID: uuid.NewString(), Role: domain.RoleSuperadmin}

	suite.mockProfileRepo.On("FindProfileByUserID", ctx, suite.userID).Return(profile, nil).Once()

	got, err := suite.service.GetProfileByUserID(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(profile.BusinessID, got.BusinessID)
}

func TestBusinessService(t *testing.T) {
	suite.Run(t, new(BusinessServiceTestSuite))
}
