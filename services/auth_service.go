package services

import (
	"errors"
	"log"
	"time"

	"github.com/sitedock/sitedock/dto"
	"github.com/sitedock/sitedock/models"
	"github.com/sitedock/sitedock/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost is the adaptive hash cost factor for stored passwords.
const bcryptCost = 10

// invalidCredentials is deliberately identical for "no such user" and
// "wrong password" so login responses cannot be used to enumerate accounts.
const invalidCredentials = "Invalid email or password"

// AuthService orchestrates credentials, sessions and tokens.
type AuthService struct {
	users       *repositories.UserRepository
	sessions    *repositories.SessionRepository
	sites       *repositories.SiteRepository
	invitations *repositories.InvitationRepository
	access      *repositories.AccessRepository
	tokens      *TokenService
}

// NewAuthService creates a new auth service instance
func NewAuthService(db *gorm.DB, tokens *TokenService) *AuthService {
	return &AuthService{
		users:       repositories.NewUserRepository(db),
		sessions:    repositories.NewSessionRepository(db),
		sites:       repositories.NewSiteRepository(db),
		invitations: repositories.NewInvitationRepository(db),
		access:      repositories.NewAccessRepository(db),
		tokens:      tokens,
	}
}

// Login authenticates a user and installs a fresh session, invalidating any
// previous one.
func (s *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewAuthError(invalidCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.NewAuthError(invalidCredentials)
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Replace(user.ID, token, expiresAt); err != nil {
		return nil, err
	}

	// Best effort: a failed last_login stamp must not fail the login.
	if err := s.users.UpdateLastLogin(user.ID, time.Now()); err != nil {
		log.Printf("Failed to update last_login for user %s: %v", user.ID, err)
	}

	return &dto.AuthResponse{
		Token:     token,
		User:      user.Public(),
		ExpiresAt: expiresAt,
	}, nil
}

// Signup registers a new user. When an invitation token and site ID are
// supplied, the referenced site must exist and a valid invitation is
// redeemed into a site access grant.
func (s *AuthService) Signup(req dto.SignupRequest) (*dto.SignupResponse, error) {
	if req.SiteID != "" {
		exists, err := s.sites.Exists(req.SiteID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, models.NewValidationError("Referenced site does not exist")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     req.FirstName + " " + req.LastName,
		Email:    req.Email,
		Password: string(hashed),
		Role:     models.RoleUser,
	}
	if err := s.users.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("Email already registered")
		}
		return nil, err
	}

	response := &dto.SignupResponse{User: user.Public()}

	// Redeeming the invitation is secondary: a stale or reused token must
	// not fail the signup itself.
	if req.InviteToken != "" && req.SiteID != "" {
		invitation, err := s.redeemInvitation(req.InviteToken, req.SiteID, user.ID)
		if err != nil {
			log.Printf("Failed to redeem invitation for user %s: %v", user.ID, err)
		} else {
			response.SiteInvitation = invitation
		}
	}

	return response, nil
}

// redeemInvitation grants site access for a valid, unused, unexpired
// invitation and marks it consumed.
func (s *AuthService) redeemInvitation(token, siteID, userID string) (*models.SiteInvitation, error) {
	invitation, err := s.invitations.FindValidByToken(token)
	if err != nil {
		return nil, err
	}
	if invitation.SiteID != siteID {
		return nil, errors.New("invitation does not match site")
	}

	if err := s.access.Grant(invitation.SiteID, userID, models.AccessRoleMember); err != nil {
		return nil, err
	}
	if err := s.invitations.MarkUsed(invitation.ID); err != nil {
		return nil, err
	}

	now := time.Now()
	invitation.UsedAt = &now
	return &invitation, nil
}

// Logout destroys the session for a token. Destroying an absent session is
// not an error; logout always succeeds.
func (s *AuthService) Logout(token string) {
	if token == "" {
		return
	}
	if _, err := s.sessions.DestroyReport(token); err != nil {
		log.Printf("Failed to destroy session on logout: %v", err)
	}
}

// CurrentUser re-fetches the user row fresh from storage rather than
// trusting claims embedded in a possibly stale token.
func (s *AuthService) CurrentUser(userID string) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewAuthError("Invalid or expired token")
		}
		return nil, err
	}
	return &user, nil
}
