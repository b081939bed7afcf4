package episodes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vocalog/diary-api/api/types"
	episodesService "github.com/vocalog/diary-api/internal/services/episodes"
)

// GetByID returns a single episode with all its shards
// @Summary Get episode detail
// @Description Returns the episode summary plus its shards in chronological order.
// @Tags episodes
// @Produce json
// @Param id path string true "Episode ID"
// @Success 200 {object} episodes.EpisodeDetail "Episode with shards"
// @Failure 404 {object} types.ErrorResponse "Episode not found"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/episodes/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.EpisodeService == nil {
			types.SendInternalError(c, "Episode service not configured")
			return
		}

		episodeID := c.Param("id")
		detail, err := deps.EpisodeService.GetEpisodeDetail(c.Request.Context(), episodeID)
		if err != nil {
			if episodesService.IsNotFound(err) {
				types.SendError(c, http.StatusNotFound, "episode_not_found", "Episode not found")
			} else {
				log.Printf("[ERROR] Failed to fetch episode %s: %v", episodeID, err)
				types.SendInternalError(c, "Failed to fetch episode")
			}
			return
		}

		c.JSON(http.StatusOK, detail)
	}
}
