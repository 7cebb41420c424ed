package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "sitedock",
		"version": "1.0.0",
	})
}
