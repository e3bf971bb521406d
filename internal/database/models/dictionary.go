package models

import (
	"github.com/google/uuid"
)

// Domain is a reusable physical type definition in a team's naming
// dictionary, e.g. logical "amount" mapped to "DECIMAL(19,4)".
type Domain struct {
	BaseModel
	TeamID       uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	LogicalName  string    `json:"logical_name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	PhysicalType string    `json:"physical_type" gorm:"not null;size:50" validate:"required,min=1,max=50"`

	// Relationships
	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Domain
func (Domain) TableName() string {
	return "domains"
}

// Term maps a logical column name to its physical name, optionally tied to a
// Domain for type standardization.
type Term struct {
	BaseModel
	TeamID       uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	LogicalName  string     `json:"logical_name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	PhysicalName string     `json:"physical_name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	DomainID     *uuid.UUID `json:"domain_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Team   Team    `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Domain *Domain `json:"domain,omitempty" gorm:"foreignKey:DomainID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Term
func (Term) TableName() string {
	return "terms"
}
