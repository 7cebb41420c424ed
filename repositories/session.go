package repositories

import (
	"errors"
	"time"

	"github.com/sitedock/sitedock/models"
	"gorm.io/gorm"
)

// SessionRepository is the durable record of which tokens are currently
// valid for which user.
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository instance
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Replace installs token as the user's single active session. The delete
// and insert run in one transaction so a concurrent reader never observes
// the user with zero sessions for longer than the commit.
func (r *SessionRepository) Replace(userID, token string, expiresAt time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		session := models.Session{
			Token:     token,
			UserID:    userID,
			ExpiresAt: expiresAt,
		}
		return tx.Create(&session).Error
	})
}

// FindByToken retrieves a session row by exact token match
func (r *SessionRepository) FindByToken(token string) (models.Session, error) {
	var session models.Session
	result := r.db.First(&session, "token = ?", token)
	return session, result.Error
}

// Validate resolves a token to its owning user ID. Returns "" when the row
// is absent; an expired row is deleted on sight (lazy expiry, no background
// sweep) and also resolves to "".
func (r *SessionRepository) Validate(token string) (string, error) {
	session, err := r.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}

	if time.Now().After(session.ExpiresAt) {
		if err := r.Destroy(token); err != nil {
			return "", err
		}
		return "", nil
	}

	return session.UserID, nil
}

// Destroy removes a session row by token. Destroying an absent token is not
// an error.
func (r *SessionRepository) Destroy(token string) error {
	return r.db.Where("token = ?", token).Delete(&models.Session{}).Error
}

// DestroyReport removes a session row and reports whether one was actually
// there.
func (r *SessionRepository) DestroyReport(token string) (bool, error) {
	result := r.db.Where("token = ?", token).Delete(&models.Session{})
	return result.RowsAffected > 0, result.Error
}
