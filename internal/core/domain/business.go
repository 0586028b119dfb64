package domain

import "time"

// Business is the tenant boundary. Every domain row carries its ID.
type Business struct {
	BusinessID string    `json:"businessID"`
	Name       string    `json:"name"`
	OwnerID    string    `json:"ownerID"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ProfileRole is the role a profile holds within its business.
type ProfileRole string

const (
	RoleSuperadmin ProfileRole = "superadmin"
	RoleStaff      ProfileRole = "staff"
)

// Profile links an auth-provider user to a business. The auth provider owns
// credentials; we only keep the tenant association.
type Profile struct {
	UserID     string      `json:"userID"` // same ID the auth provider issued
	Name       string      `json:"name"`
	Role       ProfileRole `json:"role"`
	BusinessID string      `json:"businessID"`
	CreatedAt  time.Time   `json:"createdAt"`
}
