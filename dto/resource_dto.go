package dto

// CreateCertificateRequest represents a request to issue a certificate for
// one of a site's domains.
type CreateCertificateRequest struct {
	DomainID string `json:"domainId" binding:"required"`
}

// UpsertConfigVarRequest creates or replaces a config var for a site. The
// environment defaults to "production" when omitted.
type UpsertConfigVarRequest struct {
	Key         string `json:"key" binding:"required"`
	Value       string `json:"value" binding:"required"`
	IsSensitive bool   `json:"isSensitive"`
	Environment string `json:"environment"`
}

// DeleteConfigVarRequest identifies the var to remove.
type DeleteConfigVarRequest struct {
	Key         string `json:"key" binding:"required"`
	Environment string `json:"environment"`
}

// CreateDeploymentRequest triggers a manual deployment.
type CreateDeploymentRequest struct {
	CommitMessage string `json:"commitMessage"`
	Branch        string `json:"branch"`
	IsProduction  *bool  `json:"isProduction"`
}

// UpdateDeploymentStatusRequest advances a deployment's status; called by
// the external build system.
type UpdateDeploymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ShareSiteRequest creates an invitation link for a site.
type ShareSiteRequest struct {
	Email string `json:"email"`
}

// ShareSiteResponse carries the generated invitation.
type ShareSiteResponse struct {
	Token     string `json:"token"`
	URL       string `json:"url"`
	ExpiresAt string `json:"expiresAt"`
}

// FirstTimeResponse reports whether any user exists yet.
type FirstTimeResponse struct {
	IsFirstTime bool  `json:"isFirstTime"`
	UserCount   int64 `json:"userCount"`
}
