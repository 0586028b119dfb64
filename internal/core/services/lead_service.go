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

type leadService struct {
	leadRepo     portsrepo.LeadRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewLeadService creates a new lead service.
func NewLeadService(leadRepo portsrepo.LeadRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade) portssvc.LeadSvcFacade {
	return &leadService{
		leadRepo:     leadRepo,
		customerRepo: customerRepo,
	}
}

var _ portssvc.LeadSvcFacade = (*leadService)(nil)

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	return &parsed, nil
}

func (s *leadService) CreateLead(ctx context.Context, businessID string, req dto.CreateLeadRequest, creatorUserID string) (*domain.Lead, error) {
	followUp, err := parseOptionalDate(req.FollowUpDate)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.LeadNew
	}

	now := time.Now().UTC()
	lead := domain.Lead{
		LeadID:       uuid.NewString(),
		BusinessID:   businessID,
		AssignedTo:   creatorUserID,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		Location:     req.Location,
		Source:       req.Source,
		Status:       status,
		FollowUpDate: followUp,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.leadRepo.SaveLead(ctx, lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (s *leadService) ListLeads(ctx context.Context, businessID string, params dto.ListParams) (*dto.ListLeadsResponse, error) {
	leads, err := s.leadRepo.ListLeads(ctx, businessID, params.Limit, params.Offset())
	if err != nil {
		return nil, err
	}
	total, err := s.leadRepo.CountLeads(ctx, businessID)
	if err != nil {
		return nil, err
	}

	data := make([]dto.LeadResponse, len(leads))
	for i := range leads {
		data[i] = dto.ToLeadResponse(&leads[i])
	}
	return &dto.ListLeadsResponse{
		Data:       data,
		Pagination: dto.NewPagination(params, total),
	}, nil
}

func (s *leadService) UpdateLead(ctx context.Context, businessID, leadID string, req dto.UpdateLeadRequest) error {
	lead, err := s.leadRepo.FindLeadByID(ctx, businessID, leadID)
	if err != nil {
		return err
	}

	followUp, err := parseOptionalDate(req.FollowUpDate)
	if err != nil {
		return err
	}

	lead.Name = req.Name
	lead.Phone = req.Phone
	lead.Email = req.Email
	lead.Address = req.Address
	lead.Location = req.Location
	lead.Source = req.Source
	if req.Status != "" {
		lead.Status = req.Status
	}
	lead.FollowUpDate = followUp
	lead.Notes = req.Notes
	lead.UpdatedAt = time.Now().UTC()

	return s.leadRepo.UpdateLead(ctx, *lead)
}

func (s *leadService) DeleteLead(ctx context.Context, businessID, leadID string) error {
	if _, err := s.leadRepo.FindLeadByID(ctx, businessID, leadID); err != nil {
		return err
	}
	return s.leadRepo.DeleteLead(ctx, businessID, leadID)
}

// ConvertLead creates a customer from the lead and marks the lead converted.
// Converting twice is idempotent: the existing customer is returned.
func (s *leadService) ConvertLead(ctx context.Context, businessID, leadID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	lead, err := s.leadRepo.FindLeadByID(ctx, businessID, leadID)
	if err != nil {
		return nil, err
	}

	existing, err := s.customerRepo.FindCustomerByLeadID(ctx, businessID, leadID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		BusinessID: businessID,
		LeadID:     lead.LeadID,
		Name:       lead.Name,
		Phone:      lead.Phone,
		Email:      lead.Email,
		Address:    lead.Address,
		Location:   lead.Location,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, err
	}

	if err := s.leadRepo.UpdateLeadStatus(ctx, businessID, leadID, domain.LeadConverted); err != nil {
		logger.Error("Customer created but lead status update failed",
			slog.String("lead_id", leadID),
			slog.String("customer_id", customer.CustomerID),
			slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Lead converted",
		slog.String("lead_id", leadID),
		slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *leadService) AddLeadNote(ctx context.Context, businessID, leadID, userID string, req dto.AddLeadNoteRequest) (*domain.LeadNote, error) {
	if _, err := s.leadRepo.FindLeadByID(ctx, businessID, leadID); err != nil {
		return nil, err
	}

	noteDate := time.Now().UTC()
	if req.NoteDate != "" {
		parsed, err := parseOptionalDate(req.NoteDate)
		if err != nil {
			return nil, err
		}
		noteDate = *parsed
	}

	note := domain.LeadNote{
		NoteID:     uuid.NewString(),
		BusinessID: businessID,
		LeadID:     leadID,
		UserID:     userID,
		Note:       req.Note,
		NoteDate:   noteDate,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.leadRepo.SaveLeadNote(ctx, note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *leadService) ListLeadNotes(ctx context.Context, businessID, leadID string) ([]domain.LeadNote, error) {
	if _, err := s.leadRepo.FindLeadByID(ctx, businessID, leadID); err != nil {
		return nil, err
	}
	return s.leadRepo.ListLeadNotes(ctx, businessID, leadID)
}
