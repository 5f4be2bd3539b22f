package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotFound answers requests for paths with no registered route.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Not Found"})
}

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Detail: "Method Not Allowed"})
}
