package dto

import (
	"github.com/sitedock/sitedock/models"
)

// CreateSiteRequest represents the payload for provisioning a new site.
// Name, subdomain and framework are the required trio; everything else
// falls back to platform defaults.
type CreateSiteRequest struct {
	Name          string `json:"name"`
	Subdomain     string `json:"subdomain"`
	Framework     string `json:"framework"`
	Language      string `json:"language"`
	Branch        string `json:"branch"`
	RepositoryURL string `json:"repositoryUrl"`
	Visibility    string `json:"visibility"`
	AutoDeploy    *bool  `json:"autoDeploy"`
}

// UpdateSiteRequest represents a partial site update. Nil fields are left
// untouched.
type UpdateSiteRequest struct {
	Name          *string `json:"name"`
	Language      *string `json:"language"`
	Branch        *string `json:"branch"`
	RepositoryURL *string `json:"repositoryUrl"`
	Visibility    *string `json:"visibility"`
	AutoDeploy    *bool   `json:"autoDeploy"`
	Status        *string `json:"status"`
}

// TableOutcome reports the result of one dependent-table delete during site
// deletion.
type TableOutcome struct {
	Table string `json:"table"`
	Rows  int64  `json:"rows"`
	Error string `json:"error,omitempty"`
}

// DeleteSiteResponse reports what the best-effort cascade removed.
type DeleteSiteResponse struct {
	SiteID  string         `json:"siteId"`
	Deleted []TableOutcome `json:"deleted"`
}

// SiteListResponse wraps a site listing.
type SiteListResponse struct {
	Sites []models.Site `json:"sites"`
	Total int           `json:"total"`
}
