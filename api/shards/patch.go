package shards

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vocalog/diary-api/api/types"
	shardsService "github.com/vocalog/diary-api/internal/services/shards"
)

// Patch merges user edits into the shard's analysis document
// @Summary Update a shard
// @Description Shallow-merges the provided fields into analysis.user. Omitted fields stay untouched; setting status to readyToPublish also marks the shard publishable in its meta document.
// @Tags shards
// @Accept json
// @Produce json
// @Param id path string true "Shard ID"
// @Param request body shards.UpdateShardRequest true "User edits"
// @Success 200 {object} models.Shard "Updated shard"
// @Failure 400 {object} types.ErrorResponse "Malformed request body"
// @Failure 404 {object} types.ErrorResponse "Shard not found"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/shards/{id} [patch]
func Patch(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.ShardService == nil {
			types.SendInternalError(c, "Shard service not configured")
			return
		}

		shardID := c.Param("id")

		var req shardsService.UpdateShardRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			types.SendBadRequest(c, "invalid_body", err.Error())
			return
		}

		shard, err := deps.ShardService.UpdateShard(c.Request.Context(), shardID, req)
		if err != nil {
			if shardsService.IsNotFound(err) {
				types.SendError(c, http.StatusNotFound, "shard_not_found", "Shard not found")
			} else {
				log.Printf("[ERROR] Failed to update shard %s: %v", shardID, err)
				types.SendInternalError(c, "Failed to update shard")
			}
			return
		}

		c.JSON(http.StatusOK, shard)
	}
}
