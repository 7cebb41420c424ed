package services

import (
	"errors"
	"time"

	"github.com/sitedock/sitedock/models"
	"github.com/sitedock/sitedock/repositories"
	"gorm.io/gorm"
)

// CertificateService handles business logic for site certificates
type CertificateService struct {
	db           *gorm.DB
	certificates *repositories.CertificateRepository
	domains      *repositories.DomainRepository
	sites        *SiteService
}

// NewCertificateService creates a new certificate service instance
func NewCertificateService(db *gorm.DB, sites *SiteService) *CertificateService {
	return &CertificateService{
		db:           db,
		certificates: repositories.NewCertificateRepository(db),
		domains:      repositories.NewDomainRepository(db),
		sites:        sites,
	}
}

// ListCertificates retrieves all certificates for a site
func (s *CertificateService) ListCertificates(siteID, userID string) ([]models.Certificate, error) {
	if _, err := s.sites.Authorize(siteID, userID, false); err != nil {
		return nil, err
	}
	return s.certificates.FindBySiteID(siteID)
}

// CreateCertificate issues a pending certificate for one of the site's
// domains. The (site, domain) unique index rejects a second certificate for
// the same domain; the duplicate surfaces as a conflict.
func (s *CertificateService) CreateCertificate(siteID, userID, domainID string) (*models.Certificate, error) {
	if _, err := s.sites.Authorize(siteID, userID, true); err != nil {
		return nil, err
	}

	domain, err := s.domains.FindByID(domainID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Domain not found")
		}
		return nil, err
	}
	if domain.SiteID != siteID {
		return nil, models.NewValidationError("Domain does not belong to this site")
	}

	now := time.Now()
	certificate := models.Certificate{
		SiteID:     siteID,
		DomainID:   domain.ID,
		Domain:     domain.Hostname,
		Issuer:     certificateIssuer,
		Status:     models.CertificateStatusPending,
		IssueDate:  now,
		ExpiryDate: now.Add(certificateValidity),
		AutoRenew:  true,
	}
	if err := s.certificates.Create(&certificate); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("A certificate already exists for this domain")
		}
		return nil, err
	}

	return &certificate, nil
}

// DeleteCertificate removes a certificate from a site.
func (s *CertificateService) DeleteCertificate(siteID, userID, certificateID string) error {
	if _, err := s.sites.Authorize(siteID, userID, true); err != nil {
		return err
	}

	removed, err := s.certificates.Delete(siteID, certificateID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewNotFoundError("Certificate not found")
	}
	return nil
}
