package episodes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vocalog/diary-api/api/types"
	"github.com/vocalog/diary-api/internal/services/curation"
)

// CurateEpisodeRequest bounds how many shards the curated view keeps
type CurateEpisodeRequest struct {
	MaxShards *int `json:"maxShards,omitempty" example:"10"`
}

// PostCurate selects the episode's highlight shards
// @Summary Curate an episode
// @Description Scores the episode's shards and returns the top picks in chronological order, together with stats over the full shard set and filter diagnostics.
// @Tags episodes
// @Accept json
// @Produce json
// @Param id path string true "Episode ID"
// @Param request body CurateEpisodeRequest false "Selection bound; defaults to 10"
// @Success 200 {object} curation.CurationResult "Curated view"
// @Failure 400 {object} types.ErrorResponse "Malformed request body"
// @Failure 404 {object} types.ErrorResponse "Episode not found"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/episodes/{id}/curate [post]
func PostCurate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.CurationService == nil {
			types.SendInternalError(c, "Curation service not configured")
			return
		}

		episodeID := c.Param("id")

		var req CurateEpisodeRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				types.SendBadRequest(c, "invalid_body", err.Error())
				return
			}
		}

		maxShards := curation.DefaultMaxShards
		if req.MaxShards != nil {
			maxShards = *req.MaxShards
		}

		result, err := deps.CurationService.CurateEpisode(c.Request.Context(), episodeID, maxShards)
		if err != nil {
			if curation.IsNotFound(err) {
				types.SendError(c, http.StatusNotFound, "episode_not_found", "Episode not found")
			} else {
				log.Printf("[ERROR] Failed to curate episode %s: %v", episodeID, err)
				types.SendInternalError(c, "Failed to curate episode")
			}
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
