package testutils

import (
	"time"

	"smart-erd-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	// Unique login id per instance so tests can create several users
	loginID := "user" + id.String()[:6]

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		LoginID:  loginID,
		Password: HashPassword("password123"),
		Name:     "Test User",
	}
}

// WithLoginID sets a custom login id
func (f *UserFactory) WithLoginID(loginID string) *models.User {
	user := f.Create()
	user.LoginID = loginID
	return user
}

// WithName sets a custom display name
func (f *UserFactory) WithName(name string) *models.User {
	user := f.Create()
	user.Name = name
	return user
}

// HashPassword bcrypt-hashes a plaintext password the way the auth service does
func HashPassword(plain string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team owned by the given user
func (f *TeamFactory) Create(ownerID uuid.UUID) *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:    "Test Team",
		OwnerID: ownerID,
	}
}

// WithName sets a custom team name
func (f *TeamFactory) WithName(ownerID uuid.UUID, name string) *models.Team {
	team := f.Create(ownerID)
	team.Name = name
	return team
}

// TeamMemberFactory provides methods to create test membership data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a membership with the given role
func (f *TeamMemberFactory) Create(teamID, userID uuid.UUID, role models.TeamRole) *models.TeamMember {
	return &models.TeamMember{
		TeamID:    teamID,
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project in the given team
func (f *ProjectFactory) Create(teamID uuid.UUID) *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID: teamID,
		Name:   "Test Project",
	}
}

// WithName sets a custom project name
func (f *ProjectFactory) WithName(teamID uuid.UUID, name string) *models.Project {
	project := f.Create(teamID)
	project.Name = name
	return project
}

// DiagramFactory provides methods to create test Diagram data
type DiagramFactory struct{}

// NewDiagramFactory creates a new DiagramFactory
func NewDiagramFactory() *DiagramFactory {
	return &DiagramFactory{}
}

// Create creates a test Diagram in the given project
func (f *DiagramFactory) Create(projectID uuid.UUID) *models.Diagram {
	return &models.Diagram{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID: projectID,
		Name:      "Test Diagram",
		Content:   `{"entities":[],"relationships":[]}`,
	}
}

// WithContent sets custom serialized content
func (f *DiagramFactory) WithContent(projectID uuid.UUID, content string) *models.Diagram {
	diagram := f.Create(projectID)
	diagram.Content = content
	return diagram
}

// DomainFactory provides methods to create test dictionary Domain data
type DomainFactory struct{}

// NewDomainFactory creates a new DomainFactory
func NewDomainFactory() *DomainFactory {
	return &DomainFactory{}
}

// Create creates a test Domain in the given team
func (f *DomainFactory) Create(teamID uuid.UUID) *models.Domain {
	return &models.Domain{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:       teamID,
		LogicalName:  "Amount",
		PhysicalType: "NUMERIC(18,2)",
	}
}

// TermFactory provides methods to create test dictionary Term data
type TermFactory struct{}

// NewTermFactory creates a new TermFactory
func NewTermFactory() *TermFactory {
	return &TermFactory{}
}

// Create creates a test Term in the given team
func (f *TermFactory) Create(teamID uuid.UUID) *models.Term {
	return &models.Term{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:       teamID,
		LogicalName:  "Customer",
		PhysicalName: "customer",
	}
}

// WithDomain links the term to a domain
func (f *TermFactory) WithDomain(teamID, domainID uuid.UUID) *models.Term {
	term := f.Create(teamID)
	term.DomainID = &domainID
	return term
}
