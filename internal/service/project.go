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

// ProjectService handles business logic for projects
type ProjectService struct {
	accessChecker
	projectRepo repository.ProjectRepositoryInterface
	validator   *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(userRepo repository.UserRepositoryInterface, teamRepo repository.TeamRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, projectRepo repository.ProjectRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		accessChecker: accessChecker{
			userRepo:   userRepo,
			teamRepo:   teamRepo,
			memberRepo: memberRepo,
		},
		projectRepo: projectRepo,
		validator:   validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100" example:"Order System"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team_id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// Create creates a project inside the team's scope. VIEWER members are
// rejected.
func (s *ProjectService) Create(requesterLoginID string, teamID uuid.UUID, req *CreateProjectRequest) (*ProjectResponse, error) {
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

	project := &models.Project{
		TeamID: team.ID,
		Name:   req.Name,
	}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return toProjectResponse(project), nil
}

// List lists the team's projects; any member may call this
func (s *ProjectService) List(requesterLoginID string, teamID uuid.UUID) ([]ProjectResponse, error) {
	_, team, member, err := s.resolveScope(requesterLoginID, teamID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireMembership(member); err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.GetByTeamID(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *toProjectResponse(&projects[i])
	}
	return responses, nil
}

// GetByID retrieves a project within the team's scope
func (s *ProjectService) GetByID(requesterLoginID string, teamID, projectID uuid.UUID) (*ProjectResponse, error) {
	_, team, member, err := s.resolveScope(requesterLoginID, teamID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireMembership(member); err != nil {
		return nil, err
	}

	project, err := s.resolveProject(team.ID, projectID)
	if err != nil {
		return nil, err
	}

	return toProjectResponse(project), nil
}

// Delete removes a project and its diagrams. VIEWER members are rejected.
func (s *ProjectService) Delete(requesterLoginID string, teamID, projectID uuid.UUID) error {
	_, team, member, err := s.resolveScope(requesterLoginID, teamID)
	if err != nil {
		return err
	}
	if err := authz.RequireWriter(member); err != nil {
		return err
	}

	project, err := s.resolveProject(team.ID, projectID)
	if err != nil {
		return err
	}

	if err := s.projectRepo.Delete(project.ID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// resolveProject loads a project and rejects IDs that belong to another
// team, so a member of team A cannot reach team B's projects by guessing
// IDs.
func (s *ProjectService) resolveProject(teamID, projectID uuid.UUID) (*models.Project, error) {
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

func toProjectResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:        project.ID,
		TeamID:    project.TeamID,
		Name:      project.Name,
		CreatedAt: project.CreatedAt.Format(time.RFC3339),
		UpdatedAt: project.UpdatedAt.Format(time.RFC3339),
	}
}
