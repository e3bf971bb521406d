package repository

import (
	"smart-erd-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DiagramRepository handles database operations for diagrams
type DiagramRepository struct {
	db *gorm.DB
}

// NewDiagramRepository creates a new diagram repository
func NewDiagramRepository(db *gorm.DB) *DiagramRepository {
	return &DiagramRepository{db: db}
}

// Create creates a new diagram
func (r *DiagramRepository) Create(diagram *models.Diagram) error {
	return r.db.Create(diagram).Error
}

// GetByID retrieves a diagram by ID
func (r *DiagramRepository) GetByID(id uuid.UUID) (*models.Diagram, error) {
	var diagram models.Diagram
	err := r.db.First(&diagram, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &diagram, nil
}

// GetByProjectID retrieves all diagrams belonging to a project
func (r *DiagramRepository) GetByProjectID(projectID uuid.UUID) ([]models.Diagram, error) {
	var diagrams []models.Diagram
	err := r.db.Where("project_id = ?", projectID).Find(&diagrams).Error
	return diagrams, err
}

// Update updates a diagram
func (r *DiagramRepository) Update(diagram *models.Diagram) error {
	return r.db.Save(diagram).Error
}

// Delete deletes a diagram
func (r *DiagramRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Diagram{}, "id = ?", id).Error
}
