// Package authz holds the pure access-control decisions for team-scoped
// resources. Services resolve the requester's membership and the target team,
// then compose these checks; no operation bypasses them.
package authz

import (
	"smart-erd-backend/internal/database/models"
	apperrors "smart-erd-backend/internal/errors"

	"github.com/google/uuid"
)

// RequireMembership denies unless a membership exists for the requester.
func RequireMembership(member *models.TeamMember) error {
	if member == nil {
		return apperrors.ErrNotTeamMember
	}
	return nil
}

// RequireAdmin denies unless the requester holds an ADMIN membership. The
// role switch is exhaustive; an unknown role never grants access.
func RequireAdmin(member *models.TeamMember) error {
	if err := RequireMembership(member); err != nil {
		return err
	}
	switch member.Role {
	case models.TeamRoleAdmin:
		return nil
	case models.TeamRoleMember, models.TeamRoleViewer:
		return apperrors.ErrAdminRequired
	}
	return apperrors.ErrAdminRequired
}

// RequireWriter denies unless the requester may modify team resources.
// VIEWER is read-only everywhere outside membership management.
func RequireWriter(member *models.TeamMember) error {
	if err := RequireMembership(member); err != nil {
		return err
	}
	switch member.Role {
	case models.TeamRoleAdmin, models.TeamRoleMember:
		return nil
	case models.TeamRoleViewer:
		return apperrors.ErrReadOnlyRole
	}
	return apperrors.ErrReadOnlyRole
}

// RequireOwnerUntouched denies any membership mutation targeting the team
// owner, regardless of who asks. The owner's ADMIN membership is immutable.
func RequireOwnerUntouched(team *models.Team, targetUserID uuid.UUID) error {
	if team.OwnerID == targetUserID {
		return apperrors.ErrOwnerImmutable
	}
	return nil
}
