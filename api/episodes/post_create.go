package episodes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vocalog/diary-api/api/types"
)

// CreateEpisodeRequest represents the request to create an episode
// @Description Request body for creating a new diary episode
type CreateEpisodeRequest struct {
	Title *string `json:"title,omitempty" example:"Lunes por la noche"`
	Note  *string `json:"note,omitempty" example:"Semana complicada"`
}

// PostCreate creates an empty episode
// @Summary Create an episode
// @Description Creates a new, empty diary episode. Shards are attached afterwards via POST /episodes/{id}/shards.
// @Tags episodes
// @Accept json
// @Produce json
// @Param request body CreateEpisodeRequest false "Optional title and note"
// @Success 201 {object} episodes.EpisodeStats "Created episode"
// @Failure 400 {object} types.ErrorResponse "Malformed request body"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/episodes [post]
func PostCreate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.EpisodeService == nil {
			types.SendInternalError(c, "Episode service not configured")
			return
		}

		var req CreateEpisodeRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				types.SendBadRequest(c, "invalid_body", err.Error())
				return
			}
		}

		stats, err := deps.EpisodeService.CreateEpisode(c.Request.Context(), req.Title, req.Note)
		if err != nil {
			log.Printf("[ERROR] Failed to create episode: %v", err)
			types.SendInternalError(c, "Failed to create episode")
			return
		}

		c.JSON(http.StatusCreated, stats)
	}
}
