package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusOK is the status reported by a live instance.
const StatusOK = "ok"

// HealthCheck returns the health status of the service
// GET /health
//
// Response:
//
//	200: {"status": "ok"}
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: StatusOK})
}
