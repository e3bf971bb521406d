package repository

import (
	"smart-erd-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team memberships
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create creates a new membership. The composite primary key rejects a
// duplicate (team, user) pair; callers map gorm.ErrDuplicatedKey to a
// conflict error.
func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// GetByTeamAndUser retrieves the membership for a (team, user) pair
func (r *TeamMemberRepository) GetByTeamAndUser(teamID, userID uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "team_id = ? AND user_id = ?", teamID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ExistsByTeamAndUser checks whether a membership exists for a (team, user) pair
func (r *TeamMemberRepository) ExistsByTeamAndUser(teamID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error
	return count > 0, err
}

// GetByTeamID retrieves all memberships for a team with user details
func (r *TeamMemberRepository) GetByTeamID(teamID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Preload("User").Where("team_id = ?", teamID).Find(&members).Error
	return members, err
}

// UpdateRole mutates the role in place on the composite key, preserving the
// membership's creation timestamp.
func (r *TeamMemberRepository) UpdateRole(teamID, userID uuid.UUID, role models.TeamRole) error {
	return r.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Update("role", role).Error
}

// Delete removes the membership for a (team, user) pair
func (r *TeamMemberRepository) Delete(teamID, userID uuid.UUID) error {
	return r.db.Delete(&models.TeamMember{}, "team_id = ? AND user_id = ?", teamID, userID).Error
}
