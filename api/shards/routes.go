package shards

import (
	"github.com/gin-gonic/gin"
	"github.com/vocalog/diary-api/api/types"
)

// RegisterRoutes registers shard routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/shards/:id - Shard with its documents
	router.GET("/:id", GetByID(deps))

	// PATCH /api/v1/shards/:id - Merge user edits into analysis.user
	router.PATCH("/:id", Patch(deps))

	// POST /api/v1/shards/:id/publish - Publish to the acting profile's feed
	router.POST("/:id/publish", PostPublish(deps))

	// POST /api/v1/shards/:id/delete - Soft delete
	router.POST("/:id/delete", PostDelete(deps))
}

// RegisterEpisodeRoutes registers the capture route nested under
// episodes
func RegisterEpisodeRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/episodes/:id/shards - Upload a recording
	router.POST("/:id/shards", PostCreate(deps))
}
