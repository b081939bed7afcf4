package episodes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vocalog/diary-api/api/types"
)

// GetGlobalInsights returns the diary-wide rollup
// @Summary Diary-wide insights
// @Description Aggregates counts, duration and emotion/tag/status frequency tables across every episode.
// @Tags episodes
// @Produce json
// @Success 200 {object} episodes.GlobalInsights "Rollup across all episodes"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/episodes/insights [get]
func GetGlobalInsights(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.EpisodeService == nil {
			types.SendInternalError(c, "Episode service not configured")
			return
		}

		insights, err := deps.EpisodeService.ComputeGlobalInsights(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Failed to compute global insights: %v", err)
			types.SendInternalError(c, "Failed to compute insights")
			return
		}

		c.JSON(http.StatusOK, insights)
	}
}
