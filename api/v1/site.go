package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitedock/sitedock/dto"
	"github.com/sitedock/sitedock/models"
	"github.com/sitedock/sitedock/services"
)

// SiteController handles site CRUD and the provisioning/deletion workflows
type SiteController struct {
	sites *services.SiteService
}

// NewSiteController creates a new site controller
func NewSiteController(sites *services.SiteService) *SiteController {
	return &SiteController{sites: sites}
}

// ListSites retrieves sites the user owns or has shared access to
func (ctl *SiteController) ListSites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sites, err := ctl.sites.ListSites(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SiteListResponse{Sites: sites, Total: len(sites)})
}

// ListSharedSites retrieves sites shared with the user, excluding owned ones
func (ctl *SiteController) ListSharedSites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sites, err := ctl.sites.ListSharedSites(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SiteListResponse{Sites: sites, Total: len(sites)})
}

// CreateSite provisions a new site aggregate
func (ctl *SiteController) CreateSite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	site, err := ctl.sites.CreateSite(req, userID, models.DeploymentStatusQueued)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"site": site})
}

// GetSite retrieves a site with its aggregate children
func (ctl *SiteController) GetSite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	site, err := ctl.sites.GetSiteDetail(c.Param("siteId"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"site": site})
}

// UpdateSite applies a partial update to site metadata
func (ctl *SiteController) UpdateSite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	site, err := ctl.sites.UpdateSite(c.Param("siteId"), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"site": site})
}

// DeleteSite removes a site and reports the per-table cascade outcome
func (ctl *SiteController) DeleteSite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	response, err := ctl.sites.DeleteSite(c.Param("siteId"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
