package repositories

import (
	"context"

	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
)

// BusinessRepositoryFacade defines persistence operations for tenants.
type BusinessRepositoryFacade interface {
	SaveBusiness(ctx context.Context, business domain.Business) error
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)
}

// ProfileRepositoryFacade defines persistence operations for user profiles.
type ProfileRepositoryFacade interface {
	SaveProfile(ctx context.Context, profile domain.Profile) error

	// FindProfileByUserID resolves the tenant association for an
	// authenticated user. apperrors.ErrNotFound when no profile exists yet.
	FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}
