package repositories

import (
	"time"

	"github.com/sitedock/sitedock/models"
	"gorm.io/gorm"
)

// DeploymentRepository handles database operations for deployments
type DeploymentRepository struct {
	db *gorm.DB
}

// NewDeploymentRepository creates a new deployment repository instance
func NewDeploymentRepository(db *gorm.DB) *DeploymentRepository {
	return &DeploymentRepository{db: db}
}

// FindBySiteID retrieves deployments for a site, newest first, with
// limit/offset pagination.
func (r *DeploymentRepository) FindBySiteID(siteID string, limit, offset int) ([]models.Deployment, error) {
	var deployments []models.Deployment
	result := r.db.Where("site_id = ?", siteID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&deployments)
	return deployments, result.Error
}

// FindByID retrieves a deployment by its ID
func (r *DeploymentRepository) FindByID(id string) (models.Deployment, error) {
	var deployment models.Deployment
	result := r.db.First(&deployment, "id = ?", id)
	return deployment, result.Error
}

// Create inserts a new deployment
func (r *DeploymentRepository) Create(deployment *models.Deployment) error {
	return r.db.Create(deployment).Error
}

// CountBySiteID counts the deployments recorded for a site
func (r *DeploymentRepository) CountBySiteID(siteID string) (int64, error) {
	var count int64
	result := r.db.Model(&models.Deployment{}).Where("site_id = ?", siteID).Count(&count)
	return count, result.Error
}

// UpdateStatus advances the status of a deployment. A successful deployment
// also stamps deployed_at and the site's last_deployed_at.
func (r *DeploymentRepository) UpdateStatus(id string, status models.DeploymentStatus) error {
	updates := map[string]interface{}{
		"status": status,
	}
	if status == models.DeploymentStatusSuccess {
		now := time.Now()
		updates["deployed_at"] = &now
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var deployment models.Deployment
		if err := tx.First(&deployment, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Deployment{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		if status == models.DeploymentStatusSuccess {
			now := time.Now()
			if err := tx.Model(&models.Site{}).
				Where("id = ?", deployment.SiteID).
				Update("last_deployed_at", &now).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
