package dto

import (
	"time"

	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
)

// CompleteSignupRequest finishes the signup lifecycle for an authenticated
// user who has no business yet.
type CompleteSignupRequest struct {
	Name string `json:"name" binding:"required"`
}

// ProvisionBusinessRequest is the admin path for creating a tenant on behalf
// of an owner.
type ProvisionBusinessRequest struct {
	OwnerUserID  string `json:"ownerUserId" binding:"required"`
	OwnerName    string `json:"ownerName" binding:"required"`
	BusinessName string `json:"businessName" binding:"required"`
}

// BusinessResponse defines the data returned for one business.
type BusinessResponse struct {
	BusinessID string    `json:"businessID"`
	Name       string    `json:"name"`
	OwnerID    string    `json:"ownerID"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToBusinessResponse converts a domain.Business to BusinessResponse.
func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		BusinessID: b.BusinessID,
		Name:       b.Name,
		OwnerID:    b.OwnerID,
		CreatedAt:  b.CreatedAt,
	}
}
