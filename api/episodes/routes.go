package episodes

import (
	"github.com/gin-gonic/gin"
	"github.com/vocalog/diary-api/api/types"
)

// RegisterRoutes registers episode routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/episodes - List episodes with aggregates
	router.GET("", GetAll(deps))

	// POST /api/v1/episodes - Create an empty episode
	router.POST("", PostCreate(deps))

	// GET /api/v1/episodes/insights - Diary-wide rollup
	router.GET("/insights", GetGlobalInsights(deps))

	// GET /api/v1/episodes/:id - Episode detail with shards
	router.GET("/:id", GetByID(deps))

	// PATCH /api/v1/episodes/:id - Edit title or note
	router.PATCH("/:id", Patch(deps))

	// GET /api/v1/episodes/:id/insights - Per-episode aggregates
	router.GET("/:id/insights", GetInsights(deps))

	// POST /api/v1/episodes/:id/curate - Highlight selection
	router.POST("/:id/curate", PostCurate(deps))
}
