package models

import (
	"time"
)

// SiteStatus represents the lifecycle state of a site
type SiteStatus string

const (
	SiteStatusActive   SiteStatus = "active"
	SiteStatusBuilding SiteStatus = "building"
	SiteStatusStopped  SiteStatus = "stopped"
	SiteStatusFailed   SiteStatus = "failed"
)

// Site represents a deployable project. It is the root aggregate: its
// configuration, domains, certificates, config vars, deployments,
// notifications and webhooks are created with it and deleted with it.
type Site struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UUID           string     `json:"uuid" gorm:"uniqueIndex;not null"`
	Name           string     `json:"name" gorm:"not null"`
	Subdomain      string     `json:"subdomain" gorm:"uniqueIndex;not null"`
	OwnerID        string     `json:"ownerId" gorm:"type:uuid;not null;index"`
	TeamID         *string    `json:"teamId" gorm:"type:uuid;default:null"`
	Framework      string     `json:"framework" gorm:"not null"`
	Language       string     `json:"language" gorm:"default:null"`
	Status         SiteStatus `json:"status" gorm:"type:varchar(20)"`
	Visibility     string     `json:"visibility" gorm:"type:varchar(20)"`
	Branch         string     `json:"branch"`
	RepositoryURL  string     `json:"repositoryUrl" gorm:"default:null"`
	AutoDeploy     bool       `json:"autoDeploy"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	LastDeployedAt *time.Time `json:"lastDeployedAt" gorm:"default:null"`

	// Relations
	Owner         User                `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Configuration *SiteConfiguration  `json:"configuration,omitempty" gorm:"foreignKey:SiteID"`
	Domains       []Domain            `json:"domains,omitempty" gorm:"foreignKey:SiteID"`
	Certificates  []Certificate       `json:"certificates,omitempty" gorm:"foreignKey:SiteID"`
	ConfigVars    []ConfigVar         `json:"configVars,omitempty" gorm:"foreignKey:SiteID"`
	Deployments   []Deployment        `json:"deployments,omitempty" gorm:"foreignKey:SiteID"`
	Notifications []EmailNotification `json:"notifications,omitempty" gorm:"foreignKey:SiteID"`
	Webhooks      []Webhook           `json:"webhooks,omitempty" gorm:"foreignKey:SiteID"`
}

// SiteConfiguration holds the build and runtime settings for a site (1:1).
type SiteConfiguration struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SiteID          string    `json:"siteId" gorm:"type:uuid;not null;uniqueIndex"`
	BuildCommand    string    `json:"buildCommand"`
	StartCommand    string    `json:"startCommand"`
	InstallCommand  string    `json:"installCommand"`
	OutputDirectory string    `json:"outputDirectory"`
	RuntimeVersion  string    `json:"runtimeVersion"`
	AutoDeploy      bool      `json:"autoDeploy"`
	HTTPSOnly       bool      `json:"httpsOnly"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
