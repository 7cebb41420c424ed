package services

import (
	"github.com/sitedock/sitedock/dto"
	"github.com/sitedock/sitedock/models"
	"github.com/sitedock/sitedock/repositories"
	"gorm.io/gorm"
)

// ConfigVarService handles business logic for site config vars
type ConfigVarService struct {
	vars  *repositories.ConfigVarRepository
	sites *SiteService
}

// NewConfigVarService creates a new config var service instance
func NewConfigVarService(db *gorm.DB, sites *SiteService) *ConfigVarService {
	return &ConfigVarService{
		vars:  repositories.NewConfigVarRepository(db),
		sites: sites,
	}
}

// ListConfigVars retrieves all config vars for a site
func (s *ConfigVarService) ListConfigVars(siteID, userID string) ([]models.ConfigVar, error) {
	if _, err := s.sites.Authorize(siteID, userID, false); err != nil {
		return nil, err
	}
	return s.vars.FindBySiteID(siteID)
}

// UpsertConfigVar creates or replaces a config var. Returns the stored var
// and whether it was newly created.
func (s *ConfigVarService) UpsertConfigVar(siteID, userID string, req dto.UpsertConfigVarRequest) (*models.ConfigVar, bool, error) {
	if _, err := s.sites.Authorize(siteID, userID, true); err != nil {
		return nil, false, err
	}

	environment := req.Environment
	if environment == "" {
		environment = "production"
	}

	v := models.ConfigVar{
		SiteID:      siteID,
		Key:         req.Key,
		Value:       req.Value,
		IsSensitive: req.IsSensitive,
		Environment: environment,
		CreatedBy:   userID,
	}
	created, err := s.vars.Upsert(&v)
	if err != nil {
		return nil, false, err
	}
	return &v, created, nil
}

// DeleteConfigVar removes a config var by its natural key.
func (s *ConfigVarService) DeleteConfigVar(siteID, userID string, req dto.DeleteConfigVarRequest) error {
	if _, err := s.sites.Authorize(siteID, userID, true); err != nil {
		return err
	}

	environment := req.Environment
	if environment == "" {
		environment = "production"
	}

	removed, err := s.vars.Delete(siteID, req.Key, environment)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewNotFoundError("Config var not found")
	}
	return nil
}
