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

// DomainService handles business logic for dictionary domains
type DomainService struct {
	accessChecker
	domainRepo repository.DomainRepositoryInterface
	termRepo   repository.TermRepositoryInterface
	validator  *validator.Validate
}

// NewDomainService creates a new domain service
func NewDomainService(userRepo repository.UserRepositoryInterface, teamRepo repository.TeamRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, domainRepo repository.DomainRepositoryInterface, termRepo repository.TermRepositoryInterface, validator *validator.Validate) *DomainService {
	return &DomainService{
		accessChecker: accessChecker{
			userRepo:   userRepo,
			teamRepo:   teamRepo,
			memberRepo: memberRepo,
		},
		domainRepo: domainRepo,
		termRepo:   termRepo,
		validator:  validator,
	}
}

// CreateDomainRequest represents the request to create a dictionary domain
type CreateDomainRequest struct {
	LogicalName  string `json:"logical_name" validate:"required,min=1,max=100" example:"Money"`
	PhysicalType string `json:"physical_type" validate:"required,min=1,max=50" example:"NUMERIC(18,2)"`
}

// UpdateDomainRequest represents the request to update a dictionary domain
type UpdateDomainRequest struct {
	LogicalName  string `json:"logical_name" validate:"required,min=1,max=100"`
	PhysicalType string `json:"physical_type" validate:"required,min=1,max=50"`
}

// DomainResponse represents the response for domain operations
type DomainResponse struct {
	ID           uuid.UUID `json:"id"`
	TeamID       uuid.UUID `json:"team_id"`
	LogicalName  string    `json:"logical_name"`
	PhysicalType string    `json:"physical_type"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// Create creates a domain in the team's dictionary. VIEWER members are
// rejected.
func (s *DomainService) Create(requesterLoginID string, teamID uuid.UUID, req *CreateDomainRequest) (*DomainResponse, error) {
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

	domain := &models.Domain{
		TeamID:       team.ID,
		LogicalName:  req.LogicalName,
		PhysicalType: req.PhysicalType,
	}
	if err := s.domainRepo.Create(domain); err != nil {
		return nil, fmt.Errorf("failed to create domain: %w", err)
	}

	return toDomainResponse(domain), nil
}

// List lists the team's dictionary domains; any member may call this
func (s *DomainService) List(requesterLoginID string, teamID uuid.UUID) ([]DomainResponse, error) {
	_, team, member, err := s.resolveScope(requesterLoginID, teamID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireMembership(member); err != nil {
		return nil, err
	}

	domains, err := s.domainRepo.GetByTeamID(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}

	responses := make([]DomainResponse, len(domains))
	for i := range domains {
		responses[i] = *toDomainResponse(&domains[i])
	}
	return responses, nil
}

// Update replaces a domain's logical name and physical type. VIEWER members
// are rejected.
func (s *DomainService) Update(requesterLoginID string, teamID, domainID uuid.UUID, req *UpdateDomainRequest) (*DomainResponse, error) {
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

	domain, err := s.resolveDomain(team.ID, domainID)
	if err != nil {
		return nil, err
	}

	domain.LogicalName = req.LogicalName
	domain.PhysicalType = req.PhysicalType
	if err := s.domainRepo.Update(domain); err != nil {
		return nil, fmt.Errorf("failed to update domain: %w", err)
	}

	return toDomainResponse(domain), nil
}

// Delete removes a domain. A domain still referenced by terms cannot be
// deleted; unlink the terms first.
func (s *DomainService) Delete(requesterLoginID string, teamID, domainID uuid.UUID) error {
	_, team, member, err := s.resolveScope(requesterLoginID, teamID)
	if err != nil {
		return err
	}
	if err := authz.RequireWriter(member); err != nil {
		return err
	}

	domain, err := s.resolveDomain(team.ID, domainID)
	if err != nil {
		return err
	}

	count, err := s.termRepo.CountByDomainID(domain.ID)
	if err != nil {
		return fmt.Errorf("failed to count terms using domain: %w", err)
	}
	if count > 0 {
		return apperrors.ErrDomainInUse
	}

	if err := s.domainRepo.Delete(domain.ID); err != nil {
		return fmt.Errorf("failed to delete domain: %w", err)
	}
	return nil
}

// resolveDomain loads a domain and rejects IDs that belong to another team
func (s *DomainService) resolveDomain(teamID, domainID uuid.UUID) (*models.Domain, error) {
	domain, err := s.domainRepo.GetByID(domainID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDomainNotFound
		}
		return nil, fmt.Errorf("failed to look up domain: %w", err)
	}
	if domain.TeamID != teamID {
		return nil, apperrors.ErrDomainTeamMismatch
	}
	return domain, nil
}

func toDomainResponse(domain *models.Domain) *DomainResponse {
	return &DomainResponse{
		ID:           domain.ID,
		TeamID:       domain.TeamID,
		LogicalName:  domain.LogicalName,
		PhysicalType: domain.PhysicalType,
		CreatedAt:    domain.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    domain.UpdatedAt.Format(time.RFC3339),
	}
}
