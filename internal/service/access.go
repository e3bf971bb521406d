package service

import (
	"errors"
	"fmt"

	"smart-erd-backend/internal/database/models"
	apperrors "smart-erd-backend/internal/errors"
	"smart-erd-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// accessChecker resolves the requester and target team for team-scoped
// services. Authorization itself is decided by the authz package on the
// membership the checker returns.
type accessChecker struct {
	userRepo   repository.UserRepositoryInterface
	teamRepo   repository.TeamRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
}

// resolveUser maps a login id to the user record
func (a *accessChecker) resolveUser(loginID string) (*models.User, error) {
	user, err := a.userRepo.GetByLoginID(loginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}

// resolveTeam fetches the team record
func (a *accessChecker) resolveTeam(teamID uuid.UUID) (*models.Team, error) {
	team, err := a.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to look up team: %w", err)
	}
	return team, nil
}

// membership returns the requester's membership for the team, or nil when no
// membership row exists. Callers feed the result to the authz checks.
func (a *accessChecker) membership(teamID, userID uuid.UUID) (*models.TeamMember, error) {
	member, err := a.memberRepo.GetByTeamAndUser(teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up membership: %w", err)
	}
	return member, nil
}

// resolveScope resolves requester, team and the requester's membership in one
// pass, the common prefix of every team-scoped operation.
func (a *accessChecker) resolveScope(requesterLoginID string, teamID uuid.UUID) (*models.User, *models.Team, *models.TeamMember, error) {
	user, err := a.resolveUser(requesterLoginID)
	if err != nil {
		return nil, nil, nil, err
	}
	team, err := a.resolveTeam(teamID)
	if err != nil {
		return nil, nil, nil, err
	}
	member, err := a.membership(team.ID, user.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	return user, team, member, nil
}

// toValidationError converts the first validator violation into an app-level
// ValidationError so the boundary layer can map it to a 400.
func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.NewValidationError(verrs[0].Field(), verrs[0].Tag())
	}
	return apperrors.NewValidationError("", err.Error())
}
