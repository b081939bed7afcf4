package shards

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vocalog/diary-api/api/types"
	shardsService "github.com/vocalog/diary-api/internal/services/shards"
)

// DeleteShardRequest carries the reason recorded on the soft delete
type DeleteShardRequest struct {
	Reason string `json:"reason" example:"user_deleted"`
}

// PostDelete soft-deletes a shard
// @Summary Delete a shard
// @Description Flags the shard deleted and retires the acting profile's feed entry in the same transaction. The row and its audio stay on disk; deletion is permanent with respect to publishing.
// @Tags shards
// @Accept json
// @Produce json
// @Param id path string true "Shard ID"
// @Param X-Profile-Id header string false "Acting profile; defaults to the local profile"
// @Param request body DeleteShardRequest false "Optional delete reason"
// @Success 200 {object} models.Shard "Soft-deleted shard"
// @Failure 400 {object} types.ErrorResponse "Malformed request body"
// @Failure 404 {object} types.ErrorResponse "Shard not found"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/shards/{id}/delete [post]
func PostDelete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.ShardService == nil {
			types.SendInternalError(c, "Shard service not configured")
			return
		}

		shardID := c.Param("id")
		profileID := types.ProfileID(c, deps)

		var req DeleteShardRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				types.SendBadRequest(c, "invalid_body", err.Error())
				return
			}
		}

		shard, err := deps.ShardService.DeleteShard(c.Request.Context(), profileID, shardID, req.Reason)
		if err != nil {
			if shardsService.IsNotFound(err) {
				types.SendError(c, http.StatusNotFound, "shard_not_found", "Shard not found")
			} else {
				log.Printf("[ERROR] Failed to delete shard %s: %v", shardID, err)
				types.SendInternalError(c, "Failed to delete shard")
			}
			return
		}

		c.JSON(http.StatusOK, shard)
	}
}
