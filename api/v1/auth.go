package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitedock/sitedock/dto"
	"github.com/sitedock/sitedock/middleware"
	"github.com/sitedock/sitedock/services"
)

// Cookie lifetimes in seconds. Login issues the long-lived cookie; hitting
// /me re-issues a 24-hour one to slide the window.
const (
	loginCookieMaxAge = 7 * 24 * 60 * 60
	slideCookieMaxAge = 24 * 60 * 60
)

// AuthController handles authentication endpoints
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// setAuthCookie installs the session token as an HttpOnly strict-same-site
// cookie.
func setAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		middleware.AuthCookieName, // name
		token,                     // value
		maxAge,                    // max age
		"/",                       // path
		"",                        // domain
		true,                      // secure (HTTPS only)
		true,                      // httpOnly (not accessible via JS)
	)
}

// Login handles user authentication
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	response, err := ctl.auth.Login(req)
	if err != nil {
		respondError(c, err)
		return
	}

	setAuthCookie(c, response.Token, loginCookieMaxAge)
	c.JSON(http.StatusOK, response)
}

// Signup handles user registration
func (ctl *AuthController) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "First name, last name, email and password are required"})
		return
	}

	response, err := ctl.auth.Signup(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Logout destroys the presented session, if any. Always succeeds so clients
// can clear state unconditionally.
func (ctl *AuthController) Logout(c *gin.Context) {
	ctl.auth.Logout(middleware.ExtractToken(c))
	setAuthCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetCurrentUser returns the authenticated user's profile, re-fetched from
// storage, and slides the cookie expiry window.
func (ctl *AuthController) GetCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := ctl.auth.CurrentUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if token := middleware.ExtractToken(c); token != "" {
		setAuthCookie(c, token, slideCookieMaxAge)
	}
	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}
