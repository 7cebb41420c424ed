package repositories

import (
	"github.com/sitedock/sitedock/models"
	"gorm.io/gorm"
)

// CertificateRepository handles database operations for certificates
type CertificateRepository struct {
	db *gorm.DB
}

// NewCertificateRepository creates a new certificate repository instance
func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

// FindBySiteID retrieves all certificates for a site
func (r *CertificateRepository) FindBySiteID(siteID string) ([]models.Certificate, error) {
	var certificates []models.Certificate
	result := r.db.Where("site_id = ?", siteID).Order("created_at DESC").Find(&certificates)
	return certificates, result.Error
}

// FindByID retrieves a certificate by its ID
func (r *CertificateRepository) FindByID(id string) (models.Certificate, error) {
	var certificate models.Certificate
	result := r.db.First(&certificate, "id = ?", id)
	return certificate, result.Error
}

// Create inserts a new certificate. The (site, domain) unique index rejects
// a second certificate for the same domain.
func (r *CertificateRepository) Create(certificate *models.Certificate) error {
	return r.db.Create(certificate).Error
}

// Delete removes a certificate belonging to a site and reports whether a
// row was removed.
func (r *CertificateRepository) Delete(siteID, id string) (bool, error) {
	result := r.db.Where("site_id = ? AND id = ?", siteID, id).Delete(&models.Certificate{})
	return result.RowsAffected > 0, result.Error
}
