package models

import (
	"time"
)

// DeploymentStatus represents the status of a deployment
type DeploymentStatus string

const (
	DeploymentStatusQueued   DeploymentStatus = "queued"
	DeploymentStatusBuilding DeploymentStatus = "building"
	DeploymentStatusSuccess  DeploymentStatus = "success"
	DeploymentStatusError    DeploymentStatus = "error"
	DeploymentStatusCanceled DeploymentStatus = "canceled"
)

// Deployment represents one build/release of a site. Rows are created here;
// status is advanced by the external build system through the status
// endpoint.
type Deployment struct {
	ID               string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SiteID           string           `json:"siteId" gorm:"type:uuid;not null;index"`
	UserID           string           `json:"userId" gorm:"type:uuid;not null"`
	Status           DeploymentStatus `json:"status" gorm:"type:varchar(20)"`
	CommitMessage    string           `json:"commitMessage"`
	Branch           string           `json:"branch"`
	IsProduction     bool             `json:"isProduction"`
	IsAutoDeployment bool             `json:"isAutoDeployment"`
	IsRollback       bool             `json:"isRollback"`
	RollbackFromID   *string          `json:"rollbackFromId" gorm:"type:uuid;default:null"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	DeployedAt       *time.Time       `json:"deployedAt" gorm:"default:null"`
}
