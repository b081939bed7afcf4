package shards

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vocalog/diary-api/api/types"
	shardsService "github.com/vocalog/diary-api/internal/services/shards"
)

// PublishShardRequest optionally forces a publish past the readiness
// gate
type PublishShardRequest struct {
	Force bool `json:"force"`
}

// PostPublish publishes a shard to the acting profile's feed
// @Summary Publish a shard
// @Description Marks the shard published and upserts the acting profile's feed entry. Requires the shard to be ready unless force is set. Deleted shards can never be published.
// @Tags shards
// @Accept json
// @Produce json
// @Param id path string true "Shard ID"
// @Param force query boolean false "Skip the readiness check"
// @Param X-Profile-Id header string false "Acting profile; defaults to the local profile"
// @Param request body PublishShardRequest false "Body alternative to the force query parameter"
// @Success 200 {object} shards.PublishResult "Feed entry and published shard"
// @Failure 400 {object} types.ErrorResponse "Shard not ready or already deleted"
// @Failure 404 {object} types.ErrorResponse "Shard not found"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/shards/{id}/publish [post]
func PostPublish(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.ShardService == nil {
			types.SendInternalError(c, "Shard service not configured")
			return
		}

		shardID := c.Param("id")
		profileID := types.ProfileID(c, deps)

		force := false
		if raw := c.Query("force"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				types.SendBadRequest(c, "invalid_parameters", "force must be a boolean")
				return
			}
			force = parsed
		}
		if c.Request.ContentLength > 0 {
			var req PublishShardRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				types.SendBadRequest(c, "invalid_body", err.Error())
				return
			}
			force = force || req.Force
		}

		result, err := deps.ShardService.PublishShardForProfile(c.Request.Context(), profileID, shardID, force)
		if err != nil {
			switch {
			case shardsService.IsNotFound(err):
				types.SendError(c, http.StatusNotFound, "shard_not_found", "Shard not found")
			case errors.Is(err, shardsService.ErrAlreadyDeleted):
				types.SendBadRequest(c, "Cannot publish a deleted shard", "Deleted shards cannot be published")
			case errors.Is(err, shardsService.ErrNotReady):
				types.SendBadRequest(c, "not_ready_to_publish", "Shard is not ready to publish")
			default:
				log.Printf("[ERROR] Failed to publish shard %s for profile %s: %v", shardID, profileID, err)
				types.SendInternalError(c, "Failed to publish shard")
			}
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
