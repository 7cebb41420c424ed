package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sitedock/sitedock/models"
)

// TokenClaims represents our custom JWT claims
type TokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest represents registration data
type SignupRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	InviteToken string `json:"inviteToken"`
	SiteID      string `json:"siteId"`
}

// AuthResponse represents the response after authentication
type AuthResponse struct {
	Token     string            `json:"token"`
	User      models.PublicUser `json:"user"`
	ExpiresAt time.Time         `json:"expiresAt"`
}

// SignupResponse represents the response after registration
type SignupResponse struct {
	User           models.PublicUser      `json:"user"`
	SiteInvitation *models.SiteInvitation `json:"siteInvitation,omitempty"`
}
