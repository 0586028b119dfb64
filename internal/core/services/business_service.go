package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tradekeep/tradekeep_backend/internal/apperrors"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portsrepo "github.com/tradekeep/tradekeep_backend/internal/core/ports/repositories"
	portssvc "github.com/tradekeep/tradekeep_backend/internal/core/ports/services"
	"github.com/tradekeep/tradekeep_backend/internal/dto"
	"github.com/tradekeep/tradekeep_backend/internal/middleware"
)

type businessService struct {
	businessRepo portsrepo.BusinessRepositoryFacade
	profileRepo  portsrepo.ProfileRepositoryFacade
	accountSvc   portssvc.ChartOfAccountsSvcFacade
}

// NewBusinessService creates a new business provisioning service.
func NewBusinessService(
	businessRepo portsrepo.BusinessRepositoryFacade,
	profileRepo portsrepo.ProfileRepositoryFacade,
	accountSvc portssvc.ChartOfAccountsSvcFacade,
) portssvc.BusinessSvcFacade {
	return &businessService{
		businessRepo: businessRepo,
		profileRepo:  profileRepo,
		accountSvc:   accountSvc,
	}
}

var _ portssvc.BusinessSvcFacade = (*businessService)(nil)

// provision creates the business, the owner profile and the default chart of
// accounts. Both signup and admin provisioning funnel through here.
func (s *businessService) provision(ctx context.Context, ownerUserID, ownerName, businessName string, role domain.ProfileRole) (*domain.Business, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// A user owns at most one business.
	existing, err := s.profileRepo.FindProfileByUserID(ctx, ownerUserID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.BusinessID != "" {
		return nil, fmt.Errorf("%w: user already belongs to a business", apperrors.ErrDuplicate)
	}

	now := time.Now().UTC()
	business := domain.Business{
		BusinessID: uuid.NewString(),
		Name:       businessName,
		OwnerID:    ownerUserID,
		CreatedAt:  now,
	}
	if err := s.businessRepo.SaveBusiness(ctx, business); err != nil {
		return nil, err
	}

	profile := domain.Profile{
		UserID:     ownerUserID,
		Name:       ownerName,
		Role:       role,
		BusinessID: business.BusinessID,
		CreatedAt:  now,
	}
	if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	if err := s.accountSvc.SeedDefaultAccounts(ctx, business.BusinessID, ownerUserID); err != nil {
		return nil, fmt.Errorf("failed to seed chart of accounts: %w", err)
	}

	logger.Info("Business provisioned",
		slog.String("business_id", business.BusinessID),
		slog.String("owner_id", ownerUserID))
	return &business, nil
}

func (s *businessService) CompleteSignup(ctx context.Context, userID, name string) (*domain.Business, error) {
	return s.provision(ctx, userID, name, fmt.Sprintf("%s's Business", name), domain.RoleSuperadmin)
}

func (s *businessService) ProvisionBusiness(ctx context.Context, req dto.ProvisionBusinessRequest, creatorUserID string) (*domain.Business, error) {
	return s.provision(ctx, req.OwnerUserID, req.OwnerName, req.BusinessName, domain.RoleSuperadmin)
}

func (s *businessService) GetProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profileRepo.FindProfileByUserID(ctx, userID)
}
