package models

import (
	"github.com/google/uuid"
)

// Project belongs to exactly one team and groups related diagrams.
type Project struct {
	BaseModel
	TeamID uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name   string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`

	// Relationships
	Team     Team      `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Diagrams []Diagram `json:"diagrams,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
