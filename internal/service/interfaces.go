package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team and membership operations.
// Every method takes the requester's login id explicitly; authorization is
// decided from that identity, never from ambient state.
type TeamServiceInterface interface {
	Create(requesterLoginID string, req *CreateTeamRequest) (*TeamResponse, error)
	GetMyTeams(requesterLoginID string) ([]TeamResponse, error)
	GetByID(requesterLoginID string, teamID uuid.UUID) (*TeamResponse, error)
	Delete(requesterLoginID string, teamID uuid.UUID) error
	AddMember(requesterLoginID string, teamID uuid.UUID, req *AddMemberRequest) (*TeamMemberResponse, error)
	RemoveMember(requesterLoginID string, teamID, targetUserID uuid.UUID) error
	ChangeRole(requesterLoginID string, teamID, targetUserID uuid.UUID, req *UpdateMemberRoleRequest) (*TeamMemberResponse, error)
	ListMembers(requesterLoginID string, teamID uuid.UUID) ([]TeamMemberResponse, error)
}

// ProjectServiceInterface defines the interface for project operations
type ProjectServiceInterface interface {
	Create(requesterLoginID string, teamID uuid.UUID, req *CreateProjectRequest) (*ProjectResponse, error)
	List(requesterLoginID string, teamID uuid.UUID) ([]ProjectResponse, error)
	GetByID(requesterLoginID string, teamID, projectID uuid.UUID) (*ProjectResponse, error)
	Delete(requesterLoginID string, teamID, projectID uuid.UUID) error
}

// DiagramServiceInterface defines the interface for diagram operations
type DiagramServiceInterface interface {
	Create(requesterLoginID string, teamID, projectID uuid.UUID, req *CreateDiagramRequest) (*DiagramResponse, error)
	List(requesterLoginID string, teamID, projectID uuid.UUID) ([]DiagramResponse, error)
	GetByID(requesterLoginID string, teamID, projectID, diagramID uuid.UUID) (*DiagramResponse, error)
	UpdateContent(requesterLoginID string, teamID, projectID, diagramID uuid.UUID, req *UpdateDiagramContentRequest) (*DiagramResponse, error)
	Delete(requesterLoginID string, teamID, projectID, diagramID uuid.UUID) error
}

// TermServiceInterface defines the interface for dictionary term operations
type TermServiceInterface interface {
	Create(requesterLoginID string, teamID uuid.UUID, req *CreateTermRequest) (*TermResponse, error)
	List(requesterLoginID string, teamID uuid.UUID) ([]TermResponse, error)
	Update(requesterLoginID string, teamID, termID uuid.UUID, req *UpdateTermRequest) (*TermResponse, error)
	Delete(requesterLoginID string, teamID, termID uuid.UUID) error
}

// DomainServiceInterface defines the interface for dictionary domain operations
type DomainServiceInterface interface {
	Create(requesterLoginID string, teamID uuid.UUID, req *CreateDomainRequest) (*DomainResponse, error)
	List(requesterLoginID string, teamID uuid.UUID) ([]DomainResponse, error)
	Update(requesterLoginID string, teamID, domainID uuid.UUID, req *UpdateDomainRequest) (*DomainResponse, error)
	Delete(requesterLoginID string, teamID, domainID uuid.UUID) error
}
