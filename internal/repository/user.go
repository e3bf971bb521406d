package repository

import (
	"smart-erd-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByLoginID retrieves a user by login id
func (r *UserRepository) GetByLoginID(loginID string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "login_id = ?", loginID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByLoginID checks whether a user with the given login id exists
func (r *UserRepository) ExistsByLoginID(loginID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("login_id = ?", loginID).Count(&count).Error
	return count > 0, err
}
