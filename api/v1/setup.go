package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitedock/sitedock/dto"
	"github.com/sitedock/sitedock/services"
)

// SetupController handles first-run endpoints
type SetupController struct {
	setup *services.SetupService
}

// NewSetupController creates a new setup controller
func NewSetupController(setup *services.SetupService) *SetupController {
	return &SetupController{setup: setup}
}

// CheckFirstTime reports whether the instance has any users yet
func (ctl *SetupController) CheckFirstTime(c *gin.Context) {
	response, err := ctl.setup.CheckFirstTime()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// CreateInitialSite provisions the authenticated user's first site
func (ctl *SetupController) CreateInitialSite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	site, err := ctl.setup.CreateInitialSite(req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"site": site})
}
