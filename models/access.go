package models

import (
	"time"
)

// AccessRole is the level of access a shared user has on a site.
type AccessRole string

const (
	AccessRoleMember AccessRole = "member"
	AccessRoleAdmin  AccessRole = "admin"
)

// SiteAccess grants a non-owner user access to a site. Backs the shared
// sites listing and the owner-or-admin authorization checks.
type SiteAccess struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SiteID    string     `json:"siteId" gorm:"type:uuid;not null;index;uniqueIndex:idx_site_access_site_user"`
	UserID    string     `json:"userId" gorm:"type:uuid;not null;index;uniqueIndex:idx_site_access_site_user"`
	Role      AccessRole `json:"role" gorm:"type:varchar(10)"`
	CreatedAt time.Time  `json:"createdAt"`
}

// SiteInvitation is a persisted share link. The token is single-use and
// expires; redeeming it during signup grants SiteAccess.
type SiteInvitation struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SiteID    string     `json:"siteId" gorm:"type:uuid;not null;index"`
	Token     string     `json:"token" gorm:"uniqueIndex;not null"`
	Email     *string    `json:"email" gorm:"default:null"`
	CreatedBy string     `json:"createdBy" gorm:"type:uuid;not null"`
	ExpiresAt time.Time  `json:"expiresAt" gorm:"not null"`
	UsedAt    *time.Time `json:"usedAt" gorm:"default:null"`
	CreatedAt time.Time  `json:"createdAt"`
}
