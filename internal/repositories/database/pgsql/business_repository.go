package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tradekeep/tradekeep_backend/internal/apperrors"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portsrepo "github.com/tradekeep/tradekeep_backend/internal/core/ports/repositories"
)

type PgxBusinessRepository struct {
	BaseRepository
}

// newPgxBusinessRepository creates a new repository for tenant data.
func newPgxBusinessRepository(pool *pgxpool.Pool) portsrepo.BusinessRepositoryFacade {
	return &PgxBusinessRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BusinessRepositoryFacade = (*PgxBusinessRepository)(nil)

func (r *PgxBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	query := `
		INSERT INTO businesses (business_id, name, owner_id, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, business.BusinessID, business.Name, business.OwnerID, business.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: business %s already exists", apperrors.ErrDuplicate, business.BusinessID)
		}
		return fmt.Errorf("failed to save business %s: %w", business.BusinessID, err)
	}
	return nil
}

func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `
		SELECT business_id, name, owner_id, created_at
		FROM businesses
		WHERE business_id = $1;
	`
	var business domain.Business
	err := r.Pool.QueryRow(ctx, query, businessID).Scan(
		&business.BusinessID,
		&business.Name,
		&business.OwnerID,
		&business.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: business %s", apperrors.ErrNotFound, businessID)
		}
		return nil, fmt.Errorf("failed to find business %s: %w", businessID, err)
	}
	return &business, nil
}

type PgxProfileRepository struct {
	BaseRepository
}

// newPgxProfileRepository creates a new repository for profile data.
func newPgxProfileRepository(pool *pgxpool.Pool) portsrepo.ProfileRepositoryFacade {
	return &PgxProfileRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProfileRepositoryFacade = (*PgxProfileRepository)(nil)

func (r *PgxProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	query := `
		INSERT INTO profiles (user_id, name, role, business_id, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, profile.UserID, profile.Name, profile.Role, profile.BusinessID, profile.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: profile for user %s already exists", apperrors.ErrDuplicate, profile.UserID)
		}
		return fmt.Errorf("failed to save profile for user %s: %w", profile.UserID, err)
	}
	return nil
}

func (r *PgxProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `
		SELECT user_id, name, role, business_id, created_at
		FROM profiles
		WHERE user_id = $1;
	`
	var profile domain.Profile
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Name,
		&profile.Role,
		&profile.BusinessID,
		&profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: profile for user %s", apperrors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to find profile for user %s: %w", userID, err)
	}
	return &profile, nil
}
