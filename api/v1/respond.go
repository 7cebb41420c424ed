package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitedock/sitedock/models"
)

// respondError converts an error into a JSON response. Typed errors keep
// their status and message; everything else is logged with full detail and
// reported as a generic 500.
func respondError(c *gin.Context, err error) {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, apiErr)
		return
	}

	log.Printf("Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// currentUserID reads the identity set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return "", false
	}
	return userID.(string), true
}
