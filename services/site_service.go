package services

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sitedock/sitedock/config"
	"github.com/sitedock/sitedock/dto"
	"github.com/sitedock/sitedock/models"
	"github.com/sitedock/sitedock/repositories"
	"github.com/sitedock/sitedock/utils"
	"gorm.io/gorm"
)

// Fixed defaults written into every new site's configuration.
const (
	defaultBuildCommand    = "npm run build"
	defaultStartCommand    = "npm run start"
	defaultInstallCommand  = "npm install"
	defaultOutputDirectory = "dist"
	defaultRuntimeVersion  = "20"
	certificateIssuer      = "Let's Encrypt"
	certificateValidity    = 90 * 24 * time.Hour
)

// subdomainTaken is the historical client-facing conflict message; clients
// match on it, so it stays verbatim.
const subdomainTaken = "Bu subdomain zaten kullanımda"

// SiteService handles business logic for sites, including the transactional
// provisioning workflow and the best-effort deletion cascade.
type SiteService struct {
	db       *gorm.DB
	siteRepo *repositories.SiteRepository
	access   *repositories.AccessRepository
}

// NewSiteService creates a new site service instance
func NewSiteService(db *gorm.DB) *SiteService {
	return &SiteService{
		db:       db,
		siteRepo: repositories.NewSiteRepository(db),
		access:   repositories.NewAccessRepository(db),
	}
}

// authorize loads a site and checks the user may see it (manage=false) or
// administer it (manage=true: owner or admin access grant).
func (s *SiteService) authorize(siteID, userID string, manage bool) (models.Site, error) {
	site, err := s.siteRepo.FindByID(siteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Site{}, models.NewNotFoundError("Site not found")
		}
		return models.Site{}, err
	}

	if site.OwnerID == userID {
		return site, nil
	}

	role, err := s.access.FindRole(siteID, userID)
	if err != nil {
		return models.Site{}, err
	}
	if role == "" || (manage && role != models.AccessRoleAdmin) {
		return models.Site{}, models.NewForbiddenError("You do not have access to this site")
	}

	return site, nil
}

// Authorize exposes the site access check to sibling services.
func (s *SiteService) Authorize(siteID, userID string, manage bool) (models.Site, error) {
	return s.authorize(siteID, userID, manage)
}

// ListSites retrieves the sites a user owns or has shared access to.
func (s *SiteService) ListSites(userID string) ([]models.Site, error) {
	return s.siteRepo.FindAccessible(userID)
}

// ListSharedSites retrieves sites shared with the user, excluding owned ones.
func (s *SiteService) ListSharedSites(userID string) ([]models.Site, error) {
	return s.siteRepo.FindShared(userID)
}

// GetSiteDetail retrieves a site with its aggregate children preloaded.
func (s *SiteService) GetSiteDetail(siteID, userID string) (models.Site, error) {
	if _, err := s.authorize(siteID, userID, false); err != nil {
		return models.Site{}, err
	}
	return s.siteRepo.FindDetail(siteID)
}

// CreateSite provisions a fully formed site aggregate in one transaction:
// the site row, its configuration, default config vars, the platform
// domain, a pending certificate, deploy notifications, a disabled webhook
// and the bootstrap deployment. Any failure rolls the whole aggregate back;
// no partial site is ever visible.
func (s *SiteService) CreateSite(req dto.CreateSiteRequest, userID string, bootstrapStatus models.DeploymentStatus) (*models.Site, error) {
	if req.Name == "" || req.Subdomain == "" || req.Framework == "" {
		return nil, models.NewValidationError("Name, subdomain and framework are required")
	}

	subdomain := utils.NormalizeSubdomain(req.Subdomain)
	if !utils.IsValidSubdomain(subdomain) {
		return nil, models.NewValidationError("Subdomain must be a valid DNS label")
	}

	branch := req.Branch
	if branch == "" {
		branch = "main"
	}
	visibility := req.Visibility
	if visibility == "" {
		visibility = "private"
	}
	autoDeploy := true
	if req.AutoDeploy != nil {
		autoDeploy = *req.AutoDeploy
	}

	site := models.Site{
		UUID:          uuid.NewString(),
		Name:          req.Name,
		Subdomain:     subdomain,
		OwnerID:       userID,
		Framework:     req.Framework,
		Language:      req.Language,
		Status:        models.SiteStatusActive,
		Visibility:    visibility,
		Branch:        branch,
		RepositoryURL: req.RepositoryURL,
		AutoDeploy:    autoDeploy,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// The unique index on subdomain arbitrates between concurrent
		// creators; no screening SELECT.
		if err := tx.Create(&site).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return models.NewConflictError(subdomainTaken)
			}
			return err
		}

		configuration := models.SiteConfiguration{
			SiteID:          site.ID,
			BuildCommand:    defaultBuildCommand,
			StartCommand:    defaultStartCommand,
			InstallCommand:  defaultInstallCommand,
			OutputDirectory: defaultOutputDirectory,
			RuntimeVersion:  defaultRuntimeVersion,
			AutoDeploy:      autoDeploy,
			HTTPSOnly:       true,
		}
		if err := tx.Create(&configuration).Error; err != nil {
			return err
		}

		configVars := []models.ConfigVar{
			{SiteID: site.ID, Key: "NODE_ENV", Value: "production", Environment: "production", CreatedBy: userID},
			{SiteID: site.ID, Key: "PORT", Value: "3000", Environment: "production", CreatedBy: userID},
		}
		for i := range configVars {
			if err := tx.Create(&configVars[i]).Error; err != nil {
				return err
			}
		}

		domain := models.Domain{
			SiteID:    site.ID,
			Hostname:  subdomain + "." + config.PlatformDomain(),
			IsPrimary: true,
			Verified:  true,
		}
		if err := tx.Create(&domain).Error; err != nil {
			return err
		}

		now := time.Now()
		certificate := models.Certificate{
			SiteID:     site.ID,
			DomainID:   domain.ID,
			Domain:     domain.Hostname,
			Issuer:     certificateIssuer,
			Status:     models.CertificateStatusPending,
			IssueDate:  now,
			ExpiryDate: now.Add(certificateValidity),
			AutoRenew:  true,
		}
		if err := tx.Create(&certificate).Error; err != nil {
			return err
		}

		var owner models.User
		if err := tx.First(&owner, "id = ?", userID).Error; err != nil {
			return err
		}
		notifications := []models.EmailNotification{
			{SiteID: site.ID, Event: models.EventDeploySuccess, Email: owner.Email, Enabled: true},
			{SiteID: site.ID, Event: models.EventDeployFail, Email: owner.Email, Enabled: true},
		}
		for i := range notifications {
			if err := tx.Create(&notifications[i]).Error; err != nil {
				return err
			}
		}

		webhook := models.Webhook{
			SiteID:  site.ID,
			Event:   "deployment",
			Enabled: false,
			Secret:  utils.GenerateSecret(32),
		}
		if err := tx.Create(&webhook).Error; err != nil {
			return err
		}

		deployment := models.Deployment{
			SiteID:           site.ID,
			UserID:           userID,
			Status:           bootstrapStatus,
			CommitMessage:    "Initial deployment",
			Branch:           branch,
			IsProduction:     true,
			IsAutoDeployment: true,
		}
		if err := tx.Create(&deployment).Error; err != nil {
			return err
		}

		site.Configuration = &configuration
		site.Domains = []models.Domain{domain}
		site.Certificates = []models.Certificate{certificate}
		site.ConfigVars = configVars
		site.Notifications = notifications
		site.Webhooks = []models.Webhook{webhook}
		site.Deployments = []models.Deployment{deployment}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &site, nil
}

// UpdateSite applies a partial update to a site's metadata inside a
// transaction. Only the owner or an admin grantee may update.
func (s *SiteService) UpdateSite(siteID, userID string, req dto.UpdateSiteRequest) (models.Site, error) {
	if _, err := s.authorize(siteID, userID, true); err != nil {
		return models.Site{}, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Language != nil {
		updates["language"] = *req.Language
	}
	if req.Branch != nil {
		updates["branch"] = *req.Branch
	}
	if req.RepositoryURL != nil {
		updates["repository_url"] = *req.RepositoryURL
	}
	if req.Visibility != nil {
		updates["visibility"] = *req.Visibility
	}
	if req.AutoDeploy != nil {
		updates["auto_deploy"] = *req.AutoDeploy
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) == 0 {
		return models.Site{}, models.NewValidationError("No fields to update")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Site{}).Where("id = ?", siteID).Updates(updates).Error
	})
	if err != nil {
		return models.Site{}, err
	}

	return s.siteRepo.FindByID(siteID)
}

// dependent tables removed during site deletion, in delete order.
var siteChildTables = []struct {
	name  string
	model interface{}
}{
	{"certificates", &models.Certificate{}},
	{"domains", &models.Domain{}},
	{"config_vars", &models.ConfigVar{}},
	{"deployments", &models.Deployment{}},
	{"email_notifications", &models.EmailNotification{}},
	{"webhooks", &models.Webhook{}},
	{"site_configurations", &models.SiteConfiguration{}},
	{"site_accesses", &models.SiteAccess{}},
	{"site_invitations", &models.SiteInvitation{}},
}

// DeleteSite removes a site and its dependent rows. The cascade is
// deliberately best effort: each child table is deleted independently and
// individual failures are recorded and skipped. Only a failure to delete
// the site row itself fails the operation — as a 409 when a foreign key
// constraint blocks it, 500 otherwise.
func (s *SiteService) DeleteSite(siteID, userID string) (*dto.DeleteSiteResponse, error) {
	if _, err := s.authorize(siteID, userID, true); err != nil {
		return nil, err
	}

	response := &dto.DeleteSiteResponse{SiteID: siteID}

	for _, child := range siteChildTables {
		outcome := dto.TableOutcome{Table: child.name}
		result := s.db.Where("site_id = ?", siteID).Delete(child.model)
		if result.Error != nil {
			outcome.Error = result.Error.Error()
			log.Printf("Failed to delete %s for site %s: %v", child.name, siteID, result.Error)
		} else {
			outcome.Rows = result.RowsAffected
		}
		response.Deleted = append(response.Deleted, outcome)
	}

	result := s.db.Delete(&models.Site{}, "id = ?", siteID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			constraint := ""
			var pgErr *pgconn.PgError
			if errors.As(result.Error, &pgErr) {
				constraint = pgErr.ConstraintName
			}
			return nil, models.NewForeignKeyError("Site deletion blocked by a foreign key constraint", constraint)
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Site not found")
	}

	return response, nil
}
