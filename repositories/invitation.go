package repositories

import (
	"time"

	"github.com/sitedock/sitedock/models"
	"gorm.io/gorm"
)

// InvitationRepository handles persisted site share links
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository instance
func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create inserts a new invitation
func (r *InvitationRepository) Create(invitation *models.SiteInvitation) error {
	return r.db.Create(invitation).Error
}

// FindValidByToken retrieves an invitation that is unexpired and unused.
func (r *InvitationRepository) FindValidByToken(token string) (models.SiteInvitation, error) {
	var invitation models.SiteInvitation
	result := r.db.
		Where("token = ? AND used_at IS NULL AND expires_at > ?", token, time.Now()).
		First(&invitation)
	return invitation, result.Error
}

// MarkUsed stamps the invitation as redeemed. One-time use: a second
// redemption no longer matches FindValidByToken.
func (r *InvitationRepository) MarkUsed(id string) error {
	now := time.Now()
	return r.db.Model(&models.SiteInvitation{}).
		Where("id = ?", id).
		Update("used_at", &now).Error
}
