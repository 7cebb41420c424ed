package models

import (
	"time"
)

// Domain represents a hostname routed to a site. Every site gets a primary
// `<subdomain>.<platform-domain>` entry at provisioning time; custom domains
// are added afterwards and start unverified.
type Domain struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SiteID    string    `json:"siteId" gorm:"type:uuid;not null;index"`
	Hostname  string    `json:"hostname" gorm:"not null"`
	IsPrimary bool      `json:"isPrimary"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CertificateStatus represents the issuance state of a certificate
type CertificateStatus string

const (
	CertificateStatusPending CertificateStatus = "pending"
	CertificateStatusActive  CertificateStatus = "active"
	CertificateStatusExpired CertificateStatus = "expired"
	CertificateStatusFailed  CertificateStatus = "failed"
)

// Certificate represents a TLS certificate for one of a site's domains.
// The (site_id, domain_id) unique index enforces one certificate per domain;
// a duplicate insert surfaces as gorm.ErrDuplicatedKey and is reported as a
// conflict instead of being screened with a prior SELECT.
type Certificate struct {
	ID         string            `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SiteID     string            `json:"siteId" gorm:"type:uuid;not null;index;uniqueIndex:idx_certificates_site_domain"`
	DomainID   string            `json:"domainId" gorm:"type:uuid;not null;uniqueIndex:idx_certificates_site_domain"`
	Domain     string            `json:"domain" gorm:"not null"`
	Issuer     string            `json:"issuer"`
	Status     CertificateStatus `json:"status" gorm:"type:varchar(20)"`
	IssueDate  time.Time         `json:"issueDate"`
	ExpiryDate time.Time         `json:"expiryDate"`
	AutoRenew  bool              `json:"autoRenew"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}
