package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamRole represents the role of a member within a team
type TeamRole string

const (
	TeamRoleAdmin  TeamRole = "ADMIN"
	TeamRoleMember TeamRole = "MEMBER"
	TeamRoleViewer TeamRole = "VIEWER"
)

// Valid reports whether the role is one of the closed set
func (r TeamRole) Valid() bool {
	switch r {
	case TeamRoleAdmin, TeamRoleMember, TeamRoleViewer:
		return true
	}
	return false
}

// TeamMember is the (team, user, role) relation governing access. The
// composite primary key guarantees at most one membership per (team, user)
// pair; a racing duplicate insert fails on the constraint.
type TeamMember struct {
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	Role      TeamRole  `json:"role" gorm:"type:varchar(20);not null" validate:"required,oneof=ADMIN MEMBER VIEWER"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
