package me

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vocalog/diary-api/api/types"
)

// GetFeed returns the profile's published shards
// @Summary Get the feed
// @Description Returns the acting profile's published shards in publish order, each with its emotion snapshot and transcript snippet. Retired entries are excluded.
// @Tags me
// @Produce json
// @Param X-Profile-Id header string false "Acting profile; defaults to the configured local profile"
// @Success 200 {object} types.FeedResponse "Published items"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/me/feed [get]
func GetFeed(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.FeedService == nil {
			types.SendInternalError(c, "Feed service not configured")
			return
		}

		profileID := types.ProfileID(c, deps)
		ctx := c.Request.Context()

		if deps.ProfileService != nil {
			if _, err := deps.ProfileService.TouchActivity(ctx, profileID); err != nil {
				log.Printf("[WARN] Failed to touch profile %s: %v", profileID, err)
			}
		}

		items, err := deps.FeedService.GetFeedForProfile(ctx, profileID)
		if err != nil {
			log.Printf("[ERROR] Failed to assemble feed for profile %s: %v", profileID, err)
			types.SendInternalError(c, "Failed to assemble feed")
			return
		}

		c.JSON(http.StatusOK, types.FeedResponse{Items: items})
	}
}
