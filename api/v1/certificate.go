package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitedock/sitedock/dto"
	"github.com/sitedock/sitedock/services"
)

// CertificateController handles per-site certificate endpoints
type CertificateController struct {
	certificates *services.CertificateService
}

// NewCertificateController creates a new certificate controller
func NewCertificateController(certificates *services.CertificateService) *CertificateController {
	return &CertificateController{certificates: certificates}
}

// ListCertificates retrieves a site's certificates
func (ctl *CertificateController) ListCertificates(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	certificates, err := ctl.certificates.ListCertificates(c.Param("siteId"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"certificates": certificates})
}

// CreateCertificate issues a certificate for one of the site's domains
func (ctl *CertificateController) CreateCertificate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Domain ID is required"})
		return
	}

	certificate, err := ctl.certificates.CreateCertificate(c.Param("siteId"), userID, req.DomainID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"certificate": certificate})
}

// DeleteCertificate removes a certificate from a site
func (ctl *CertificateController) DeleteCertificate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := ctl.certificates.DeleteCertificate(c.Param("siteId"), userID, c.Param("certId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
