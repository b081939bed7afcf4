package episodes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vocalog/diary-api/api/types"
	episodesService "github.com/vocalog/diary-api/internal/services/episodes"
)

// UpdateEpisodeRequest represents the request to edit an episode.
// Omitted fields stay untouched.
type UpdateEpisodeRequest struct {
	Title *string `json:"title,omitempty" example:"Martes"`
	Note  *string `json:"note,omitempty" example:"Mejor dia"`
}

// Patch edits an episode's title or note
// @Summary Update an episode
// @Description Updates the title and/or note of an episode. Fields left out of the body are not modified.
// @Tags episodes
// @Accept json
// @Produce json
// @Param id path string true "Episode ID"
// @Param request body UpdateEpisodeRequest true "Fields to change"
// @Success 200 {object} episodes.EpisodeStats "Updated episode with aggregates"
// @Failure 400 {object} types.ErrorResponse "Malformed request body"
// @Failure 404 {object} types.ErrorResponse "Episode not found"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/episodes/{id} [patch]
func Patch(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.EpisodeService == nil {
			types.SendInternalError(c, "Episode service not configured")
			return
		}

		episodeID := c.Param("id")

		var req UpdateEpisodeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			types.SendBadRequest(c, "invalid_body", err.Error())
			return
		}

		stats, err := deps.EpisodeService.UpdateEpisode(c.Request.Context(), episodeID, req.Title, req.Note)
		if err != nil {
			if episodesService.IsNotFound(err) {
				types.SendError(c, http.StatusNotFound, "episode_not_found", "Episode not found")
			} else {
				log.Printf("[ERROR] Failed to update episode %s: %v", episodeID, err)
				types.SendInternalError(c, "Failed to update episode")
			}
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}
