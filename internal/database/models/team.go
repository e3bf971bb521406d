package models

import (
	"github.com/google/uuid"
)

// Team represents a named group of users. The owner always holds an ADMIN
// membership that cannot be removed or downgraded.
type Team struct {
	BaseModel
	Name    string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	OwnerID uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Owner    User         `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Members  []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Projects []Project    `json:"projects,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Terms    []Term       `json:"terms,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Domains  []Domain     `json:"domains,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
