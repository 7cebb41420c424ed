package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sitedock/sitedock/dto"
)

// AuthCookieName is the cookie carrying the session token.
const AuthCookieName = "auth_token"

// TokenVerifier validates a presented token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*dto.TokenClaims, error)
}

// ExtractToken pulls the session token from a request. Source precedence is
// fixed — multiple client types depend on it:
//  1. Authorization: Bearer <token>
//  2. X-Auth-Token header
//  3. auth_token cookie (falling back to the raw Cookie header)
func ExtractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		if token, found := strings.CutPrefix(authHeader, "Bearer "); found && token != "" {
			return token
		}
	}

	if token := c.GetHeader("X-Auth-Token"); token != "" {
		return token
	}

	if token, err := c.Cookie(AuthCookieName); err == nil && token != "" {
		return token
	}

	// Some proxies mangle the structured cookie accessor; parse the raw
	// header as a last resort.
	for _, part := range strings.Split(c.GetHeader("Cookie"), ";") {
		name, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if found && name == AuthCookieName && value != "" {
			return value
		}
	}

	return ""
}

// AuthMiddleware resolves the request's identity once, before handler
// logic. On success the claims land in the context as userId, email and
// role; otherwise the request is rejected with 401.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}
