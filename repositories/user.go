package repositories

import (
	"time"

	"github.com/sitedock/sitedock/models"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID retrieves a user by ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := r.db.First(&user, "id = ?", id)
	return user, result.Error
}

// FindByEmail retrieves a user by email address
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := r.db.First(&user, "email = ?", email)
	return user, result.Error
}

// Create inserts a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Count returns the total number of registered users
func (r *UserRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&models.User{}).Count(&count)
	return count, result.Error
}

// UpdateLastLogin stamps the user's last successful login time
func (r *UserRepository) UpdateLastLogin(id string, at time.Time) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}
