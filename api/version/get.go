package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get handles version requests
// @Summary Service identity
// @Description Returns the service name and version.
// @Tags version
// @Produce json
// @Success 200 {object} map[string]interface{} "Service identity"
// @Router / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Voice Diary API",
			"version":     "0.1.0",
			"description": "API for recording, analyzing and curating voice diary entries",
			"status":      "running",
		})
	}
}
