package repository

import (
	"smart-erd-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DomainRepository handles database operations for dictionary domains
type DomainRepository struct {
	db *gorm.DB
}

// NewDomainRepository creates a new domain repository
func NewDomainRepository(db *gorm.DB) *DomainRepository {
	return &DomainRepository{db: db}
}

// Create creates a new domain
func (r *DomainRepository) Create(domain *models.Domain) error {
	return r.db.Create(domain).Error
}

// GetByID retrieves a domain by ID
func (r *DomainRepository) GetByID(id uuid.UUID) (*models.Domain, error) {
	var domain models.Domain
	err := r.db.First(&domain, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &domain, nil
}

// GetByTeamID retrieves all domains belonging to a team
func (r *DomainRepository) GetByTeamID(teamID uuid.UUID) ([]models.Domain, error) {
	var domains []models.Domain
	err := r.db.Where("team_id = ?", teamID).Find(&domains).Error
	return domains, err
}

// Update updates a domain
func (r *DomainRepository) Update(domain *models.Domain) error {
	return r.db.Save(domain).Error
}

// Delete deletes a domain
func (r *DomainRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Domain{}, "id = ?", id).Error
}
