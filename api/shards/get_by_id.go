package shards

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vocalog/diary-api/api/types"
	shardsService "github.com/vocalog/diary-api/internal/services/shards"
)

// GetByID returns a single shard with its documents
// @Summary Get a shard
// @Description Returns the shard row together with its meta, features and analysis documents.
// @Tags shards
// @Produce json
// @Param id path string true "Shard ID"
// @Success 200 {object} models.Shard "Shard"
// @Failure 404 {object} types.ErrorResponse "Shard not found"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/shards/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.ShardService == nil {
			types.SendInternalError(c, "Shard service not configured")
			return
		}

		shardID := c.Param("id")
		shard, err := deps.ShardService.GetShard(c.Request.Context(), shardID)
		if err != nil {
			if shardsService.IsNotFound(err) {
				types.SendError(c, http.StatusNotFound, "shard_not_found", "Shard not found")
			} else {
				log.Printf("[ERROR] Failed to fetch shard %s: %v", shardID, err)
				types.SendInternalError(c, "Failed to fetch shard")
			}
			return
		}

		c.JSON(http.StatusOK, shard)
	}
}
