package repositories

import (
	"errors"

	"github.com/sitedock/sitedock/models"
	"gorm.io/gorm"
)

// AccessRepository handles site access grants
type AccessRepository struct {
	db *gorm.DB
}

// NewAccessRepository creates a new access repository instance
func NewAccessRepository(db *gorm.DB) *AccessRepository {
	return &AccessRepository{db: db}
}

// FindRole returns the access role a user holds on a site, or "" when none.
func (r *AccessRepository) FindRole(siteID, userID string) (models.AccessRole, error) {
	var access models.SiteAccess
	result := r.db.First(&access, "site_id = ? AND user_id = ?", siteID, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}
	return access.Role, nil
}

// Grant gives a user access to a site. Granting twice is a no-op thanks to
// the (site, user) unique index.
func (r *AccessRepository) Grant(siteID, userID string, role models.AccessRole) error {
	access := models.SiteAccess{
		SiteID: siteID,
		UserID: userID,
		Role:   role,
	}
	err := r.db.Create(&access).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}
