package me

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vocalog/diary-api/api/types"
	"github.com/vocalog/diary-api/internal/services/profiles"
)

// GetProgress returns today's progress and the recent history
// @Summary Get progress history
// @Description Returns today's progress summary plus the last 30 days, newest first. Score endpoints are reconstructed backwards from the profile's current score.
// @Tags me
// @Produce json
// @Param X-Profile-Id header string false "Acting profile; defaults to the configured local profile"
// @Success 200 {object} types.MeProgressResponse "Today plus history"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/me/progress [get]
func GetProgress(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.ProfileService == nil {
			types.SendInternalError(c, "Profile service not configured")
			return
		}

		profileID := types.ProfileID(c, deps)
		ctx := c.Request.Context()

		if _, err := deps.ProfileService.TouchActivity(ctx, profileID); err != nil {
			log.Printf("[ERROR] Failed to load profile %s: %v", profileID, err)
			types.SendInternalError(c, "Failed to load profile")
			return
		}

		today, err := deps.ProfileService.ProgressSummaryForDate(ctx, profileID, time.Now().UTC())
		if err != nil {
			log.Printf("[ERROR] Failed to compute progress for profile %s: %v", profileID, err)
			types.SendInternalError(c, "Failed to compute progress")
			return
		}

		history, err := deps.ProfileService.ProgressHistory(ctx, profileID, profiles.DefaultHistoryDays)
		if err != nil {
			log.Printf("[ERROR] Failed to compute history for profile %s: %v", profileID, err)
			types.SendInternalError(c, "Failed to compute progress")
			return
		}

		c.JSON(http.StatusOK, types.MeProgressResponse{
			Today:   *today,
			History: history,
		})
	}
}
