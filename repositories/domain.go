package repositories

import (
	"github.com/sitedock/sitedock/models"
	"gorm.io/gorm"
)

// DomainRepository handles database operations for site domains
type DomainRepository struct {
	db *gorm.DB
}

// NewDomainRepository creates a new domain repository instance
func NewDomainRepository(db *gorm.DB) *DomainRepository {
	return &DomainRepository{db: db}
}

// FindByID retrieves a domain by its ID
func (r *DomainRepository) FindByID(id string) (models.Domain, error) {
	var domain models.Domain
	result := r.db.First(&domain, "id = ?", id)
	return domain, result.Error
}

// FindBySiteID retrieves all domains attached to a site
func (r *DomainRepository) FindBySiteID(siteID string) ([]models.Domain, error) {
	var domains []models.Domain
	result := r.db.Where("site_id = ?", siteID).Order("created_at ASC").Find(&domains)
	return domains, result.Error
}
