package models

import (
	"time"
)

// ConfigVar is a key/value pair injected into a site's build and runtime
// environment. Uniqueness per (site, key, environment) is a database
// constraint; duplicate inserts are translated into conflicts.
type ConfigVar struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SiteID      string    `json:"siteId" gorm:"type:uuid;not null;index;uniqueIndex:idx_config_vars_site_key_env"`
	Key         string    `json:"key" gorm:"not null;uniqueIndex:idx_config_vars_site_key_env"`
	Value       string    `json:"value" gorm:"not null"`
	IsSensitive bool      `json:"isSensitive"`
	Environment string    `json:"environment" gorm:"not null;uniqueIndex:idx_config_vars_site_key_env"`
	CreatedBy   string    `json:"createdBy" gorm:"type:uuid"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
