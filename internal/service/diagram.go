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

// DiagramService handles business logic for diagrams
type DiagramService struct {
	accessChecker
	projectRepo repository.ProjectRepositoryInterface
	diagramRepo repository.DiagramRepositoryInterface
	validator   *validator.Validate
}

// NewDiagramService creates a new diagram service
func NewDiagramService(userRepo repository.UserRepositoryInterface, teamRepo repository.TeamRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, projectRepo repository.ProjectRepositoryInterface, diagramRepo repository.DiagramRepositoryInterface, validator *validator.Validate) *DiagramService {
	return &DiagramService{
		accessChecker: accessChecker{
			userRepo:   userRepo,
			teamRepo:   teamRepo,
			memberRepo: memberRepo,
		},
		projectRepo: projectRepo,
		diagramRepo: diagramRepo,
		validator:   validator,
	}
}

// CreateDiagramRequest represents the request to create a diagram
type CreateDiagramRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100" example:"Order ERD"`
	Content string `json:"content" example:"{}"`
}

// UpdateDiagramContentRequest represents the request to save a diagram's
// serialized content
type UpdateDiagramContentRequest struct {
	Content string `json:"content" validate:"required"`
}

// DiagramResponse represents the response for diagram operations
type DiagramResponse struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// Create creates a diagram under the project. VIEWER members are rejected.
func (s *DiagramService) Create(requesterLoginID string, teamID, projectID uuid.UUID, req *CreateDiagramRequest) (*DiagramResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	project, err := s.writerScope(requesterLoginID, teamID, projectID)
	if err != nil {
		return nil, err
	}

	diagram := &models.Diagram{
		ProjectID: project.ID,
		Name:      req.Name,
		Content:   req.Content,
	}
	if err := s.diagramRepo.Create(diagram); err != nil {
		return nil, fmt.Errorf("failed to create diagram: %w", err)
	}

	return toDiagramResponse(diagram), nil
}

// List lists the project's diagrams; any member may call this
func (s *DiagramService) List(requesterLoginID string, teamID, projectID uuid.UUID) ([]DiagramResponse, error) {
	project, err := s.readerScope(requesterLoginID, teamID, projectID)
	if err != nil {
		return nil, err
	}

	diagrams, err := s.diagramRepo.GetByProjectID(project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list diagrams: %w", err)
	}

	responses := make([]DiagramResponse, len(diagrams))
	for i := range diagrams {
		responses[i] = *toDiagramResponse(&diagrams[i])
	}
	return responses, nil
}

// GetByID retrieves a diagram within the project's scope
func (s *DiagramService) GetByID(requesterLoginID string, teamID, projectID, diagramID uuid.UUID) (*DiagramResponse, error) {
	project, err := s.readerScope(requesterLoginID, teamID, projectID)
	if err != nil {
		return nil, err
	}

	diagram, err := s.resolveDiagram(project.ID, diagramID)
	if err != nil {
		return nil, err
	}

	return toDiagramResponse(diagram), nil
}

// UpdateContent overwrites the diagram's serialized content. The payload is
// opaque to the server; clients own its shape. Last write wins.
func (s *DiagramService) UpdateContent(requesterLoginID string, teamID, projectID, diagramID uuid.UUID, req *UpdateDiagramContentRequest) (*DiagramResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	project, err := s.writerScope(requesterLoginID, teamID, projectID)
	if err != nil {
		return nil, err
	}

	diagram, err := s.resolveDiagram(project.ID, diagramID)
	if err != nil {
		return nil, err
	}

	diagram.Content = req.Content
	if err := s.diagramRepo.Update(diagram); err != nil {
		return nil, fmt.Errorf("failed to update diagram: %w", err)
	}

	return toDiagramResponse(diagram), nil
}

// Delete removes a diagram. VIEWER members are rejected.
func (s *DiagramService) Delete(requesterLoginID string, teamID, projectID, diagramID uuid.UUID) error {
	project, err := s.writerScope(requesterLoginID, teamID, projectID)
	if err != nil {
		return err
	}

	diagram, err := s.resolveDiagram(project.ID, diagramID)
	if err != nil {
		return err
	}

	if err := s.diagramRepo.Delete(diagram.ID); err != nil {
		return fmt.Errorf("failed to delete diagram: %w", err)
	}
	return nil
}

// readerScope verifies membership and resolves the project inside the team
func (s *DiagramService) readerScope(requesterLoginID string, teamID, projectID uuid.UUID) (*models.Project, error) {
	_, team, member, err := s.resolveScope(requesterLoginID, teamID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireMembership(member); err != nil {
		return nil, err
	}
	return s.resolveProject(team.ID, projectID)
}

// writerScope verifies write access and resolves the project inside the team
func (s *DiagramService) writerScope(requesterLoginID string, teamID, projectID uuid.UUID) (*models.Project, error) {
	_, team, member, err := s.resolveScope(requesterLoginID, teamID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireWriter(member); err != nil {
		return nil, err
	}
	return s.resolveProject(team.ID, projectID)
}

func (s *DiagramService) resolveProject(teamID, projectID uuid.UUID) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to look up project: %w", err)
	}
	if project.TeamID != teamID {
		return nil, apperrors.ErrProjectTeamMismatch
	}
	return project, nil
}

// resolveDiagram loads a diagram and rejects IDs from another project
func (s *DiagramService) resolveDiagram(projectID, diagramID uuid.UUID) (*models.Diagram, error) {
	diagram, err := s.diagramRepo.GetByID(diagramID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDiagramNotFound
		}
		return nil, fmt.Errorf("failed to look up diagram: %w", err)
	}
	if diagram.ProjectID != projectID {
		return nil, apperrors.ErrDiagramScopeMismatch
	}
	return diagram, nil
}

func toDiagramResponse(diagram *models.Diagram) *DiagramResponse {
	return &DiagramResponse{
		ID:        diagram.ID,
		ProjectID: diagram.ProjectID,
		Name:      diagram.Name,
		Content:   diagram.Content,
		CreatedAt: diagram.CreatedAt.Format(time.RFC3339),
		UpdatedAt: diagram.UpdatedAt.Format(time.RFC3339),
	}
}
