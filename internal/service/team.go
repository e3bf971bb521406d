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

// TeamService handles business logic for teams and memberships
type TeamService struct {
	accessChecker
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(userRepo repository.UserRepositoryInterface, teamRepo repository.TeamRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		accessChecker: accessChecker{
			userRepo:   userRepo,
			teamRepo:   teamRepo,
			memberRepo: memberRepo,
		},
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100" example:"Backend Team"`
}

// AddMemberRequest represents the request to invite a user into a team
type AddMemberRequest struct {
	LoginID string          `json:"login_id" validate:"required,max=50" example:"kim"`
	Role    models.TeamRole `json:"role" validate:"required,oneof=ADMIN MEMBER VIEWER" example:"MEMBER"`
}

// UpdateMemberRoleRequest represents the request to change a member's role
type UpdateMemberRoleRequest struct {
	Role models.TeamRole `json:"role" validate:"required,oneof=ADMIN MEMBER VIEWER" example:"VIEWER"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// TeamMemberResponse represents the response for membership operations
type TeamMemberResponse struct {
	TeamID    uuid.UUID       `json:"team_id"`
	UserID    uuid.UUID       `json:"user_id"`
	LoginID   string          `json:"login_id"`
	Name      string          `json:"name"`
	Role      models.TeamRole `json:"role"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// Create creates a team; the requester becomes owner and receives an ADMIN
// membership in the same transaction.
func (s *TeamService) Create(requesterLoginID string, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	user, err := s.resolveUser(requesterLoginID)
	if err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:    req.Name,
		OwnerID: user.ID,
	}
	owner := &models.TeamMember{
		UserID: user.ID,
		Role:   models.TeamRoleAdmin,
	}
	if err := s.teamRepo.CreateWithOwner(team, owner); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return toTeamResponse(team), nil
}

// GetMyTeams lists the teams the requester belongs to
func (s *TeamService) GetMyTeams(requesterLoginID string) ([]TeamResponse, error) {
	user, err := s.resolveUser(requesterLoginID)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.GetByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *toTeamResponse(&teams[i])
	}
	return responses, nil
}

// GetByID retrieves a team; the requester must be a member
func (s *TeamService) GetByID(requesterLoginID string, teamID uuid.UUID) (*TeamResponse, error) {
	_, team, member, err := s.resolveScope(requesterLoginID, teamID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireMembership(member); err != nil {
		return nil, err
	}

	return toTeamResponse(team), nil
}

// Delete removes a team and everything scoped to it. Only the owner may do
// this; ADMIN alone is not enough.
func (s *TeamService) Delete(requesterLoginID string, teamID uuid.UUID) error {
	user, team, member, err := s.resolveScope(requesterLoginID, teamID)
	if err != nil {
		return err
	}
	if err := authz.RequireAdmin(member); err != nil {
		return err
	}
	if team.OwnerID != user.ID {
		return apperrors.NewAuthorizationError("only the team owner can delete the team")
	}

	if err := s.teamRepo.Delete(team.ID); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// AddMember invites an existing user into the team. Requires the requester
// to hold ADMIN; rejects a duplicate (team, user) pair with a conflict.
func (s *TeamService) AddMember(requesterLoginID string, teamID uuid.UUID, req *AddMemberRequest) (*TeamMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	_, team, requester, err := s.resolveScope(requesterLoginID, teamID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireAdmin(requester); err != nil {
		return nil, err
	}

	target, err := s.userRepo.GetByLoginID(req.LoginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up target user: %w", err)
	}

	exists, err := s.memberRepo.ExistsByTeamAndUser(team.ID, target.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}
	if exists {
		return nil, apperrors.ErrMembershipExists
	}

	member := &models.TeamMember{
		TeamID: team.ID,
		UserID: target.ID,
		Role:   req.Role,
	}
	if err := s.memberRepo.Create(member); err != nil {
		// Concurrent invites for the same pair race on the composite key;
		// exactly one wins, the loser sees a conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrMembershipExists
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return toMemberResponse(member, target), nil
}

// RemoveMember removes a member from the team. Requires ADMIN; the owner's
// membership is protected no matter who asks.
func (s *TeamService) RemoveMember(requesterLoginID string, teamID, targetUserID uuid.UUID) error {
	_, team, requester, err := s.resolveScope(requesterLoginID, teamID)
	if err != nil {
		return err
	}
	if err := authz.RequireAdmin(requester); err != nil {
		return err
	}
	if err := authz.RequireOwnerUntouched(team, targetUserID); err != nil {
		return err
	}

	if _, err := s.memberRepo.GetByTeamAndUser(team.ID, targetUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to look up membership: %w", err)
	}

	if err := s.memberRepo.Delete(team.ID, targetUserID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

// ChangeRole mutates a member's role in place, preserving the membership's
// creation timestamp. Same guards as removal.
func (s *TeamService) ChangeRole(requesterLoginID string, teamID, targetUserID uuid.UUID, req *UpdateMemberRoleRequest) (*TeamMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	_, team, requester, err := s.resolveScope(requesterLoginID, teamID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireAdmin(requester); err != nil {
		return nil, err
	}
	if err := authz.RequireOwnerUntouched(team, targetUserID); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.GetByTeamAndUser(team.ID, targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to look up membership: %w", err)
	}

	if err := s.memberRepo.UpdateRole(team.ID, targetUserID, req.Role); err != nil {
		return nil, fmt.Errorf("failed to change role: %w", err)
	}
	member.Role = req.Role

	target, err := s.userRepo.GetByID(targetUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up target user: %w", err)
	}

	return toMemberResponse(member, target), nil
}

// ListMembers lists the team's memberships; any member may call this
func (s *TeamService) ListMembers(requesterLoginID string, teamID uuid.UUID) ([]TeamMemberResponse, error) {
	_, team, member, err := s.resolveScope(requesterLoginID, teamID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireMembership(member); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.GetByTeamID(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]TeamMemberResponse, len(members))
	for i := range members {
		responses[i] = *toMemberResponse(&members[i], &members[i].User)
	}
	return responses, nil
}

func toTeamResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		OwnerID:   team.OwnerID,
		CreatedAt: team.CreatedAt.Format(time.RFC3339),
		UpdatedAt: team.UpdatedAt.Format(time.RFC3339),
	}
}

func toMemberResponse(member *models.TeamMember, user *models.User) *TeamMemberResponse {
	return &TeamMemberResponse{
		TeamID:    member.TeamID,
		UserID:    member.UserID,
		LoginID:   user.LoginID,
		Name:      user.Name,
		Role:      member.Role,
		CreatedAt: member.CreatedAt.Format(time.RFC3339),
		UpdatedAt: member.UpdatedAt.Format(time.RFC3339),
	}
}
