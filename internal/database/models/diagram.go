package models

import (
	"github.com/google/uuid"
)

// Diagram is an ERD document inside a project. Content is an opaque
// serialized blob; the backend never interprets it.
type Diagram struct {
	BaseModel
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name      string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Content   string    `json:"content" gorm:"type:text"`

	// Relationships
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Diagram
func (Diagram) TableName() string {
	return "diagrams"
}
