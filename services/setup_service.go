package services

import (
	"github.com/sitedock/sitedock/dto"
	"github.com/sitedock/sitedock/models"
	"github.com/sitedock/sitedock/repositories"
	"gorm.io/gorm"
)

// SetupService backs the first-run experience of the dashboard.
type SetupService struct {
	users *repositories.UserRepository
	sites *SiteService
}

// NewSetupService creates a new setup service instance
func NewSetupService(db *gorm.DB, sites *SiteService) *SetupService {
	return &SetupService{
		users: repositories.NewUserRepository(db),
		sites: sites,
	}
}

// CheckFirstTime reports whether any user has been registered yet.
func (s *SetupService) CheckFirstTime() (*dto.FirstTimeResponse, error) {
	count, err := s.users.Count()
	if err != nil {
		return nil, err
	}
	return &dto.FirstTimeResponse{
		IsFirstTime: count == 0,
		UserCount:   count,
	}, nil
}

// CreateInitialSite provisions the user's first site. The bootstrap
// deployment is recorded as already successful so the dashboard has
// something to show.
func (s *SetupService) CreateInitialSite(req dto.CreateSiteRequest, userID string) (*models.Site, error) {
	return s.sites.CreateSite(req, userID, models.DeploymentStatusSuccess)
}
