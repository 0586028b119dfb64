package dto

import (
	"time"

	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
)

// CreateLeadRequest captures a new lead. FollowUpDate is "2006-01-02".
type CreateLeadRequest struct {
	Name         string            `json:"name" binding:"required"`
	Phone        string            `json:"phone"`
	Email        string            `json:"email"`
	Address      string            `json:"address"`
	Location     string            `json:"location"`
	Source       string            `json:"source"`
	Status       domain.LeadStatus `json:"status"`
	FollowUpDate string            `json:"followUpDate"`
	Notes        string            `json:"notes"`
}

// UpdateLeadRequest rewrites the lead's details.
type UpdateLeadRequest struct {
	Name         string            `json:"name" binding:"required"`
	Phone        string            `json:"phone"`
	Email        string            `json:"email"`
	Address      string            `json:"address"`
	Location     string            `json:"location"`
	Source       string            `json:"source"`
	Status       domain.LeadStatus `json:"status"`
	FollowUpDate string            `json:"followUpDate"`
	Notes        string            `json:"notes"`
}

// AddLeadNoteRequest attaches a note to a lead. NoteDate is "2006-01-02"
// and defaults to today.
type AddLeadNoteRequest struct {
	Note     string `json:"note" binding:"required"`
	NoteDate string `json:"noteDate"`
}

// LeadResponse defines the data returned for one lead.
type LeadResponse struct {
	LeadID       string            `json:"leadID"`
	AssignedTo   string            `json:"assignedTo"`
	Name         string            `json:"name"`
	Phone        string            `json:"phone,omitempty"`
	Email        string            `json:"email,omitempty"`
	Address      string            `json:"address,omitempty"`
	Location     string            `json:"location,omitempty"`
	Source       string            `json:"source,omitempty"`
	Status       domain.LeadStatus `json:"status"`
	FollowUpDate *time.Time        `json:"followUpDate,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// ToLeadResponse converts a domain.Lead to LeadResponse.
func ToLeadResponse(l *domain.Lead) LeadResponse {
	return LeadResponse{
		LeadID:       l.LeadID,
		AssignedTo:   l.AssignedTo,
		Name:         l.Name,
		Phone:        l.Phone,
		Email:        l.Email,
		Address:      l.Address,
		Location:     l.Location,
		Source:       l.Source,
		Status:       l.Status,
		FollowUpDate: l.FollowUpDate,
		Notes:        l.Notes,
		CreatedAt:    l.CreatedAt,
	}
}

// ListLeadsResponse is the paginated lead list envelope.
type ListLeadsResponse struct {
	Data       []LeadResponse `json:"data"`
	Pagination Pagination     `json:"pagination"`
}
