package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vocalog/diary-api/api/types"
)

// Get handles health check requests
// @Summary Service health
// @Description Reports overall service health, database connectivity and which analysis adapters are wired.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Health status"
// @Router /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := gin.H{"status": "not configured"}
		if deps != nil && deps.DB != nil {
			dbStatus = getDatabaseStatus(deps)
		}

		status := "ok"
		if dbStatus["status"] == "unhealthy" {
			status = "degraded"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    status,
			"service":   "diary-api",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"database":  dbStatus,
			"adapters":  getAdapterStatus(deps),
		})
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}

// getAdapterStatus reports which analysis adapters are wired in
func getAdapterStatus(deps *types.Dependencies) gin.H {
	if deps == nil {
		return gin.H{
			"transcriber": false,
			"emotion":     false,
			"semantic":    false,
		}
	}
	return gin.H{
		"transcriber": deps.Transcriber != nil,
		"emotion":     deps.EmotionAnalyzer != nil,
		"semantic":    deps.SemanticAnalyzer != nil,
	}
}
