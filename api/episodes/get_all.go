package episodes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vocalog/diary-api/api/types"
)

// GetAll returns every episode with its shard aggregates
// @Summary List episodes
// @Description Lists all diary episodes, newest first, each with shard count, total duration and the dominant emotion.
// @Tags episodes
// @Produce json
// @Success 200 {array} episodes.EpisodeStats "Episodes with aggregates"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/episodes [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.EpisodeService == nil {
			types.SendInternalError(c, "Episode service not configured")
			return
		}

		stats, err := deps.EpisodeService.ListEpisodesWithStats(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Failed to list episodes: %v", err)
			types.SendInternalError(c, "Failed to list episodes")
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}
