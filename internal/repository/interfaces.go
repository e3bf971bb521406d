package repository

import (
	"smart-erd-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByLoginID(loginID string) (*models.User, error)
	ExistsByLoginID(loginID string) (bool, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	CreateWithOwner(team *models.Team, owner *models.TeamMember) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByUserID(userID uuid.UUID) ([]models.Team, error)
	Delete(id uuid.UUID) error
}

// TeamMemberRepositoryInterface defines the interface for membership repository operations
type TeamMemberRepositoryInterface interface {
	Create(member *models.TeamMember) error
	GetByTeamAndUser(teamID, userID uuid.UUID) (*models.TeamMember, error)
	ExistsByTeamAndUser(teamID, userID uuid.UUID) (bool, error)
	GetByTeamID(teamID uuid.UUID) ([]models.TeamMember, error)
	UpdateRole(teamID, userID uuid.UUID, role models.TeamRole) error
	Delete(teamID, userID uuid.UUID) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Project, error)
	Delete(id uuid.UUID) error
}

// DiagramRepositoryInterface defines the interface for diagram repository operations
type DiagramRepositoryInterface interface {
	Create(diagram *models.Diagram) error
	GetByID(id uuid.UUID) (*models.Diagram, error)
	GetByProjectID(projectID uuid.UUID) ([]models.Diagram, error)
	Update(diagram *models.Diagram) error
	Delete(id uuid.UUID) error
}

// DomainRepositoryInterface defines the interface for dictionary domain repository operations
type DomainRepositoryInterface interface {
	Create(domain *models.Domain) error
	GetByID(id uuid.UUID) (*models.Domain, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Domain, error)
	Update(domain *models.Domain) error
	Delete(id uuid.UUID) error
}

// TermRepositoryInterface defines the interface for dictionary term repository operations
type TermRepositoryInterface interface {
	Create(term *models.Term) error
	GetByID(id uuid.UUID) (*models.Term, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Term, error)
	Update(term *models.Term) error
	Delete(id uuid.UUID) error
	CountByDomainID(domainID uuid.UUID) (int64, error)
}
