package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sitedock/sitedock/config"
	"github.com/sitedock/sitedock/dto"
	"github.com/sitedock/sitedock/models"
	"github.com/sitedock/sitedock/repositories"
	"gorm.io/gorm"
)

// invitationTTL is how long a share link stays redeemable.
const invitationTTL = 7 * 24 * time.Hour

// ShareService creates persisted, single-use site invitation links.
type ShareService struct {
	invitations *repositories.InvitationRepository
	sites       *SiteService
}

// NewShareService creates a new share service instance
func NewShareService(db *gorm.DB, sites *SiteService) *ShareService {
	return &ShareService{
		invitations: repositories.NewInvitationRepository(db),
		sites:       sites,
	}
}

// CreateInvitation generates an invitation link for a site. The token is
// stored with an expiry and consumed at most once during signup.
func (s *ShareService) CreateInvitation(siteID, userID, email string) (*dto.ShareSiteResponse, error) {
	if _, err := s.sites.Authorize(siteID, userID, true); err != nil {
		return nil, err
	}

	invitation := models.SiteInvitation{
		SiteID:    siteID,
		Token:     uuid.NewString(),
		CreatedBy: userID,
		ExpiresAt: time.Now().Add(invitationTTL),
	}
	if email != "" {
		invitation.Email = &email
	}
	if err := s.invitations.Create(&invitation); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/signup?invite=%s&siteId=%s", config.BaseURL(), invitation.Token, siteID)
	return &dto.ShareSiteResponse{
		Token:     invitation.Token,
		URL:       url,
		ExpiresAt: invitation.ExpiresAt.Format(time.RFC3339),
	}, nil
}
