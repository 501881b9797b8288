package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck is the GET /health liveness probe.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
