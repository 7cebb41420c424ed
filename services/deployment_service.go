package services

import (
	"errors"

	"github.com/sitedock/sitedock/dto"
	"github.com/sitedock/sitedock/models"
	"github.com/sitedock/sitedock/repositories"
	"gorm.io/gorm"
)

// DeploymentService handles business logic for deployments. Builds are
// executed by an external system; this service records deployments and lets
// that system advance their status.
type DeploymentService struct {
	deployments *repositories.DeploymentRepository
	sites       *SiteService
}

// NewDeploymentService creates a new deployment service instance
func NewDeploymentService(db *gorm.DB, sites *SiteService) *DeploymentService {
	return &DeploymentService{
		deployments: repositories.NewDeploymentRepository(db),
		sites:       sites,
	}
}

// ListDeployments retrieves a page of a site's deployments plus the total
// count.
func (s *DeploymentService) ListDeployments(siteID, userID string, limit, offset int) ([]models.Deployment, int64, error) {
	if _, err := s.sites.Authorize(siteID, userID, false); err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	deployments, err := s.deployments.FindBySiteID(siteID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.deployments.CountBySiteID(siteID)
	if err != nil {
		return nil, 0, err
	}
	return deployments, total, nil
}

// TriggerDeployment records a manually requested deployment in queued state.
func (s *DeploymentService) TriggerDeployment(siteID, userID string, req dto.CreateDeploymentRequest) (*models.Deployment, error) {
	site, err := s.sites.Authorize(siteID, userID, true)
	if err != nil {
		return nil, err
	}

	branch := req.Branch
	if branch == "" {
		branch = site.Branch
	}
	isProduction := true
	if req.IsProduction != nil {
		isProduction = *req.IsProduction
	}

	deployment := models.Deployment{
		SiteID:           siteID,
		UserID:           userID,
		Status:           models.DeploymentStatusQueued,
		CommitMessage:    req.CommitMessage,
		Branch:           branch,
		IsProduction:     isProduction,
		IsAutoDeployment: false,
	}
	if err := s.deployments.Create(&deployment); err != nil {
		return nil, err
	}
	return &deployment, nil
}

// valid deployment status transitions as reported by the build system.
var validDeploymentStatuses = map[models.DeploymentStatus]bool{
	models.DeploymentStatusQueued:   true,
	models.DeploymentStatusBuilding: true,
	models.DeploymentStatusSuccess:  true,
	models.DeploymentStatusError:    true,
	models.DeploymentStatusCanceled: true,
}

// UpdateDeploymentStatus advances a deployment's status on behalf of the
// external build system.
func (s *DeploymentService) UpdateDeploymentStatus(siteID, userID, deploymentID string, status string) (*models.Deployment, error) {
	if _, err := s.sites.Authorize(siteID, userID, true); err != nil {
		return nil, err
	}

	newStatus := models.DeploymentStatus(status)
	if !validDeploymentStatuses[newStatus] {
		return nil, models.NewValidationError("Unknown deployment status")
	}

	deployment, err := s.deployments.FindByID(deploymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Deployment not found")
		}
		return nil, err
	}
	if deployment.SiteID != siteID {
		return nil, models.NewNotFoundError("Deployment not found")
	}

	if err := s.deployments.UpdateStatus(deploymentID, newStatus); err != nil {
		return nil, err
	}

	updated, err := s.deployments.FindByID(deploymentID)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
