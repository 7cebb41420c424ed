package repositories

import (
	"github.com/sitedock/sitedock/models"
	"gorm.io/gorm"
)

// SiteRepository handles database operations for sites
type SiteRepository struct {
	db *gorm.DB
}

// NewSiteRepository creates a new site repository instance
func NewSiteRepository(db *gorm.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

// FindByID retrieves a site by its ID
func (r *SiteRepository) FindByID(id string) (models.Site, error) {
	var site models.Site
	result := r.db.First(&site, "id = ?", id)
	return site, result.Error
}

// FindDetail retrieves a site with its configuration, domains, certificates
// and most recent deployments preloaded.
func (r *SiteRepository) FindDetail(id string) (models.Site, error) {
	var site models.Site
	result := r.db.
		Preload("Configuration").
		Preload("Domains").
		Preload("Certificates").
		Preload("Deployments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Limit(10)
		}).
		First(&site, "id = ?", id)
	return site, result.Error
}

// FindAccessible retrieves every site the user owns plus those shared with
// them through site access grants.
func (r *SiteRepository) FindAccessible(userID string) ([]models.Site, error) {
	var sites []models.Site
	result := r.db.
		Where("owner_id = ?", userID).
		Or("id IN (?)", r.db.Model(&models.SiteAccess{}).Select("site_id").Where("user_id = ?", userID)).
		Order("created_at DESC").
		Find(&sites)
	return sites, result.Error
}

// FindShared retrieves sites shared with the user, excluding ones they own.
func (r *SiteRepository) FindShared(userID string) ([]models.Site, error) {
	var sites []models.Site
	result := r.db.
		Where("owner_id <> ?", userID).
		Where("id IN (?)", r.db.Model(&models.SiteAccess{}).Select("site_id").Where("user_id = ?", userID)).
		Order("created_at DESC").
		Find(&sites)
	return sites, result.Error
}

// Exists reports whether a site row exists.
func (r *SiteRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Site{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
