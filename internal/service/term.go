package service

import (
	"errors"
	"fmt"
	"time"

	"smart-erd-backend/internal/authz"
	"smart-erd-backend/internal/database/models"
	apperrors "smart-erd-backend/internal/errors"
	"smart-erd-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TermService handles business logic for dictionary terms
type TermService struct {
	accessChecker
	termRepo   repository.TermRepositoryInterface
	domainRepo repository.DomainRepositoryInterface
	validator  *validator.Validate
}

// NewTermService creates a new term service
func NewTermService(userRepo repository.UserRepositoryInterface, teamRepo repository.TeamRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, termRepo repository.TermRepositoryInterface, domainRepo repository.DomainRepositoryInterface, validator *validator.Validate) *TermService {
	return &TermService{
		accessChecker: accessChecker{
			userRepo:   userRepo,
			teamRepo:   teamRepo,
			memberRepo: memberRepo,
		},
		termRepo:   termRepo,
		domainRepo: domainRepo,
		validator:  validator,
	}
}

// CreateTermRequest represents the request to create a dictionary term
type CreateTermRequest struct {
	LogicalName  string     `json:"logical_name" validate:"required,min=1,max=100" example:"Customer"`
	PhysicalName string     `json:"physical_name" validate:"required,min=1,max=100" example:"customer"`
	DomainID     *uuid.UUID `json:"domain_id,omitempty"`
}

// UpdateTermRequest represents the request to update a dictionary term
type UpdateTermRequest struct {
	LogicalName  string     `json:"logical_name" validate:"required,min=1,max=100"`
	PhysicalName string     `json:"physical_name" validate:"required,min=1,max=100"`
	DomainID     *uuid.UUID `json:"domain_id,omitempty"`
}

// TermResponse represents the response for term operations
type TermResponse struct {
	ID           uuid.UUID  `json:"id"`
	TeamID       uuid.UUID  `json:"team_id"`
	LogicalName  string     `json:"logical_name"`
	PhysicalName string     `json:"physical_name"`
	DomainID     *uuid.UUID `json:"domain_id,omitempty"`
	CreatedAt    string     `json:"created_at"`
	UpdatedAt    string     `json:"updated_at"`
}

// Create creates a term in the team's dictionary. A referenced domain must
// belong to the same team. VIEWER members are rejected.
func (s *TermService) Create(requesterLoginID string, teamID uuid.UUID, req *CreateTermRequest) (*TermResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	_, team, member, err := s.resolveScope(requesterLoginID, teamID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireWriter(member); err != nil {
		return nil, err
	}
	if err := s.verifyDomain(team.ID, req.DomainID); err != nil {
		return nil, err
	}

	term := &models.Term{
		TeamID:       team.ID,
		LogicalName:  req.LogicalName,
		PhysicalName: req.PhysicalName,
		DomainID:     req.DomainID,
	}
	if err := s.termRepo.Create(term); err != nil {
		return nil, fmt.Errorf("failed to create term: %w", err)
	}

	return toTermResponse(term), nil
}

// List lists the team's dictionary terms; any member may call this
func (s *TermService) List(requesterLoginID string, teamID uuid.UUID) ([]TermResponse, error) {
	_, team, member, err := s.resolveScope(requesterLoginID, teamID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireMembership(member); err != nil {
		return nil, err
	}

	terms, err := s.termRepo.GetByTeamID(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list terms: %w", err)
	}

	responses := make([]TermResponse, len(terms))
	for i := range terms {
		responses[i] = *toTermResponse(&terms[i])
	}
	return responses, nil
}

// Update replaces a term's names and domain reference. VIEWER members are
// rejected.
func (s *TermService) Update(requesterLoginID string, teamID, termID uuid.UUID, req *UpdateTermRequest) (*TermResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	_, team, member, err := s.resolveScope(requesterLoginID, teamID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireWriter(member); err != nil {
		return nil, err
	}

	term, err := s.resolveTerm(team.ID, termID)
	if err != nil {
		return nil, err
	}
	if err := s.verifyDomain(team.ID, req.DomainID); err != nil {
		return nil, err
	}

	term.LogicalName = req.LogicalName
	term.PhysicalName = req.PhysicalName
	term.DomainID = req.DomainID
	if err := s.termRepo.Update(term); err != nil {
		return nil, fmt.Errorf("failed to update term: %w", err)
	}

	return toTermResponse(term), nil
}

// Delete removes a term. VIEWER members are rejected.
func (s *TermService) Delete(requesterLoginID string, teamID, termID uuid.UUID) error {
	_, team, member, err := s.resolveScope(requesterLoginID, teamID)
	if err != nil {
		return err
	}
	if err := authz.RequireWriter(member); err != nil {
		return err
	}

	term, err := s.resolveTerm(team.ID, termID)
	if err != nil {
		return err
	}

	if err := s.termRepo.Delete(term.ID); err != nil {
		return fmt.Errorf("failed to delete term: %w", err)
	}
	return nil
}

// resolveTerm loads a term and rejects IDs that belong to another team
func (s *TermService) resolveTerm(teamID, termID uuid.UUID) (*models.Term, error) {
	term, err := s.termRepo.GetByID(termID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTermNotFound
		}
		return nil, fmt.Errorf("failed to look up term: %w", err)
	}
	if term.TeamID != teamID {
		return nil, apperrors.ErrTermTeamMismatch
	}
	return term, nil
}

// verifyDomain checks that a referenced domain exists and is scoped to the
// same team. A nil reference is fine; terms without a domain are allowed.
func (s *TermService) verifyDomain(teamID uuid.UUID, domainID *uuid.UUID) error {
	if domainID == nil {
		return nil
	}
	domain, err := s.domainRepo.GetByID(*domainID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDomainNotFound
		}
		return fmt.Errorf("failed to look up domain: %w", err)
	}
	if domain.TeamID != teamID {
		return apperrors.ErrDomainTeamMismatch
	}
	return nil
}

func toTermResponse(term *models.Term) *TermResponse {
	return &TermResponse{
		ID:           term.ID,
		TeamID:       term.TeamID,
		LogicalName:  term.LogicalName,
		PhysicalName: term.PhysicalName,
		DomainID:     term.DomainID,
		CreatedAt:    term.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    term.UpdatedAt.Format(time.RFC3339),
	}
}
