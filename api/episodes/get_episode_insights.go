package episodes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vocalog/diary-api/api/types"
	"github.com/vocalog/diary-api/internal/services/curation"
)

// GetInsights returns the aggregate view over one episode's shards
// @Summary Episode insights
// @Description Returns timing stats, emotion frequency tables and ranked key moments for a single episode.
// @Tags episodes
// @Produce json
// @Param id path string true "Episode ID"
// @Success 200 {object} curation.EpisodeInsights "Episode aggregates and key moments"
// @Failure 404 {object} types.ErrorResponse "Episode not found"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/episodes/{id}/insights [get]
func GetInsights(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.CurationService == nil {
			types.SendInternalError(c, "Curation service not configured")
			return
		}

		episodeID := c.Param("id")
		insights, err := deps.CurationService.GetEpisodeInsights(c.Request.Context(), episodeID)
		if err != nil {
			if curation.IsNotFound(err) {
				types.SendError(c, http.StatusNotFound, "episode_not_found", "Episode not found")
			} else {
				log.Printf("[ERROR] Failed to compute insights for episode %s: %v", episodeID, err)
				types.SendInternalError(c, "Failed to compute insights")
			}
			return
		}

		c.JSON(http.StatusOK, insights)
	}
}
