package models

import (
	"time"
)

// Notification events a site can emit.
const (
	EventDeploySuccess = "deploy_success"
	EventDeployFail    = "deploy_fail"
)

// EmailNotification subscribes an address to a site event.
type EmailNotification struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SiteID    string    `json:"siteId" gorm:"type:uuid;not null;index"`
	Event     string    `json:"event" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Webhook posts deployment events to an external URL. Disabled until the
// user fills in a destination.
type Webhook struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SiteID    string    `json:"siteId" gorm:"type:uuid;not null;index"`
	URL       string    `json:"url"`
	Event     string    `json:"event" gorm:"not null"`
	Enabled   bool      `json:"enabled"`
	Secret    string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
