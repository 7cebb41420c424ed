package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitedock/sitedock/dto"
	"github.com/sitedock/sitedock/services"
)

// ConfigVarController handles per-site config var endpoints
type ConfigVarController struct {
	vars *services.ConfigVarService
}

// NewConfigVarController creates a new config var controller
func NewConfigVarController(vars *services.ConfigVarService) *ConfigVarController {
	return &ConfigVarController{vars: vars}
}

// ListConfigVars retrieves a site's config vars
func (ctl *ConfigVarController) ListConfigVars(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	vars, err := ctl.vars.ListConfigVars(c.Param("siteId"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"configVars": vars})
}

// UpsertConfigVar creates or replaces a config var
func (ctl *ConfigVarController) UpsertConfigVar(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpsertConfigVarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Key and value are required"})
		return
	}

	v, created, err := ctl.vars.UpsertConfigVar(c.Param("siteId"), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"configVar": v})
}

// DeleteConfigVar removes a config var
func (ctl *ConfigVarController) DeleteConfigVar(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.DeleteConfigVarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Key is required"})
		return
	}

	if err := ctl.vars.DeleteConfigVar(c.Param("siteId"), userID, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
