package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitedock/sitedock/dto"
	"github.com/sitedock/sitedock/services"
)

// ShareController handles site invitation links
type ShareController struct {
	share *services.ShareService
}

// NewShareController creates a new share controller
func NewShareController(share *services.ShareService) *ShareController {
	return &ShareController{share: share}
}

// ShareSite generates a single-use invitation link for a site
func (ctl *ShareController) ShareSite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.ShareSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// The body is optional; an invitation without a pinned email is valid.
		req = dto.ShareSiteRequest{}
	}

	response, err := ctl.share.CreateInvitation(c.Param("siteId"), userID, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}
