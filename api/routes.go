package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vocalog/diary-api/api/analyze"
	"github.com/vocalog/diary-api/api/episodes"
	"github.com/vocalog/diary-api/api/health"
	"github.com/vocalog/diary-api/api/invitations"
	"github.com/vocalog/diary-api/api/me"
	"github.com/vocalog/diary-api/api/shards"
	"github.com/vocalog/diary-api/api/types"
	"github.com/vocalog/diary-api/api/version"
	_ "github.com/vocalog/diary-api/docs/swagger"
	curationService "github.com/vocalog/diary-api/internal/services/curation"
	episodesService "github.com/vocalog/diary-api/internal/services/episodes"
	feedService "github.com/vocalog/diary-api/internal/services/feed"
	profilesService "github.com/vocalog/diary-api/internal/services/profiles"
	shardsService "github.com/vocalog/diary-api/internal/services/shards"
	"github.com/vocalog/diary-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// Initialize services if database is available
	if deps.DB != nil && deps.DB.DB != nil {
		initializeServices(deps)
	}

	// API v1 routes
	v1 := engine.Group("/api/v1")

	limit := func(rps, burst int) gin.HandlerFunc {
		return PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst)
	}
	limitingEnabled := config.GetBool("rate_limiting.enabled")

	// Register episode routes with general rate limiting (10 req/s, burst of 20)
	episodeGroup := v1.Group("/episodes")
	if limitingEnabled {
		episodeGroup.Use(limit(10, 20))
	}
	episodes.RegisterRoutes(episodeGroup, deps)
	shards.RegisterEpisodeRoutes(episodeGroup, deps)

	// Register shard routes with general rate limiting (10 req/s, burst of 20)
	shardGroup := v1.Group("/shards")
	if limitingEnabled {
		shardGroup.Use(limit(10, 20))
	}
	shards.RegisterRoutes(shardGroup, deps)

	// Register synchronous analysis with dedicated rate limiting (5 req/s, burst of 10)
	// since a request runs the full transcription and emotion pass inline
	analyzeGroup := v1.Group("/analyze-shard")
	if limitingEnabled {
		analyzeGroup.Use(limit(5, 10))
	}
	analyze.RegisterRoutes(analyzeGroup, deps)

	// Register profile routes with general rate limiting (10 req/s, burst of 20)
	meGroup := v1.Group("/me")
	if limitingEnabled {
		meGroup.Use(limit(10, 20))
	}
	me.RegisterRoutes(meGroup, deps)

	invitationGroup := v1.Group("/invitations")
	if limitingEnabled {
		invitationGroup.Use(limit(10, 20))
	}
	invitations.RegisterRoutes(invitationGroup, deps)

	return nil
}

// initializeServices fills in any service the caller did not wire,
// building each one straight over the shared database handle
func initializeServices(deps *types.Dependencies) {
	gormDB := deps.DB.DB

	if deps.EpisodeService == nil {
		deps.EpisodeService = episodesService.NewService(episodesService.NewRepository(gormDB))
	}

	if deps.ShardService == nil {
		deps.ShardService = shardsService.NewService(shardsService.NewRepository(gormDB))
	}

	if deps.CurationService == nil {
		deps.CurationService = curationService.NewService(curationService.NewRepository(gormDB))
	}

	if deps.FeedService == nil {
		deps.FeedService = feedService.NewService(feedService.NewRepository(gormDB))
	}

	if deps.ProfileService == nil {
		deps.ProfileService = profilesService.NewService(profilesService.NewRepository(gormDB))
	}
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
