package repositories

import (
	"errors"

	"github.com/sitedock/sitedock/models"
	"gorm.io/gorm"
)

// ConfigVarRepository handles database operations for config vars
type ConfigVarRepository struct {
	db *gorm.DB
}

// NewConfigVarRepository creates a new config var repository instance
func NewConfigVarRepository(db *gorm.DB) *ConfigVarRepository {
	return &ConfigVarRepository{db: db}
}

// FindBySiteID retrieves all config vars for a site
func (r *ConfigVarRepository) FindBySiteID(siteID string) ([]models.ConfigVar, error) {
	var vars []models.ConfigVar
	result := r.db.Where("site_id = ?", siteID).Order("key ASC").Find(&vars)
	return vars, result.Error
}

// Upsert inserts a config var, falling back to an update of value and
// sensitivity when the (site, key, environment) row already exists. The
// unique index arbitrates between concurrent writers; no screening SELECT.
func (r *ConfigVarRepository) Upsert(v *models.ConfigVar) (created bool, err error) {
	err = r.db.Create(v).Error
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, err
	}

	result := r.db.Model(&models.ConfigVar{}).
		Where("site_id = ? AND key = ? AND environment = ?", v.SiteID, v.Key, v.Environment).
		Updates(map[string]interface{}{
			"value":        v.Value,
			"is_sensitive": v.IsSensitive,
		})
	if result.Error != nil {
		return false, result.Error
	}

	// Re-read so callers get the stored row (id, timestamps) instead of the
	// zero values left over from the rejected insert.
	var stored models.ConfigVar
	if err := r.db.First(&stored, "site_id = ? AND key = ? AND environment = ?", v.SiteID, v.Key, v.Environment).Error; err != nil {
		return false, err
	}
	*v = stored
	return false, nil
}

// Delete removes a config var by its natural key and reports whether a row
// was removed.
func (r *ConfigVarRepository) Delete(siteID, key, environment string) (bool, error) {
	result := r.db.
		Where("site_id = ? AND key = ? AND environment = ?", siteID, key, environment).
		Delete(&models.ConfigVar{})
	return result.RowsAffected > 0, result.Error
}
