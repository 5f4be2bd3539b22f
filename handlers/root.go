package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GreetingMessage is the body of GET /.
const GreetingMessage = "Hello from Kubernetes 🚀"

// Root returns the service greeting
// GET /
//
// Response:
//
//	200: {"message": "Hello from Kubernetes 🚀"}
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, GreetingResponse{Message: GreetingMessage})
}
