package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sitedock/sitedock/dto"
	"github.com/sitedock/sitedock/services"
)

// DeploymentController handles per-site deployment endpoints
type DeploymentController struct {
	deployments *services.DeploymentService
}

// NewDeploymentController creates a new deployment controller
func NewDeploymentController(deployments *services.DeploymentService) *DeploymentController {
	return &DeploymentController{deployments: deployments}
}

// ListDeployments retrieves a page of a site's deployments
func (ctl *DeploymentController) ListDeployments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		offset = 0
	}

	deployments, total, err := ctl.deployments.ListDeployments(c.Param("siteId"), userID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"deployments": deployments,
		"total":       total,
		"limit":       limit,
		"offset":      offset,
	})
}

// TriggerDeployment records a manually requested deployment
func (ctl *DeploymentController) TriggerDeployment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateDeploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	deployment, err := ctl.deployments.TriggerDeployment(c.Param("siteId"), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"deployment": deployment})
}

// UpdateDeploymentStatus advances a deployment's status
func (ctl *DeploymentController) UpdateDeploymentStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateDeploymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	deployment, err := ctl.deployments.UpdateDeploymentStatus(c.Param("siteId"), userID, c.Param("deploymentId"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deployment": deployment})
}
