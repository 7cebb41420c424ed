package models

import (
	"time"
)

// Session stores an issued login token. A token is only accepted while a
// matching row exists and has not expired, which makes logout and session
// replacement effective immediately even though the token itself is signed.
type Session struct {
	Token     string    `json:"-" gorm:"primaryKey"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}
