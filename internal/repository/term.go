package repository

import (
	"smart-erd-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TermRepository handles database operations for dictionary terms
type TermRepository struct {
	db *gorm.DB
}

// NewTermRepository creates a new term repository
func NewTermRepository(db *gorm.DB) *TermRepository {
	return &TermRepository{db: db}
}

// Create creates a new term
func (r *TermRepository) Create(term *models.Term) error {
	return r.db.Create(term).Error
}

// GetByID retrieves a term by ID
func (r *TermRepository) GetByID(id uuid.UUID) (*models.Term, error) {
	var term models.Term
	err := r.db.First(&term, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &term, nil
}

// GetByTeamID retrieves all terms belonging to a team with their domains
func (r *TermRepository) GetByTeamID(teamID uuid.UUID) ([]models.Term, error) {
	var terms []models.Term
	err := r.db.Preload("Domain").Where("team_id = ?", teamID).Find(&terms).Error
	return terms, err
}

// Update updates a term
func (r *TermRepository) Update(term *models.Term) error {
	return r.db.Save(term).Error
}

// Delete deletes a term
func (r *TermRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Term{}, "id = ?", id).Error
}

// CountByDomainID returns the number of terms referencing a domain
func (r *TermRepository) CountByDomainID(domainID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Term{}).Where("domain_id = ?", domainID).Count(&count).Error
	return count, err
}
