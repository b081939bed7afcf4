package me

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vocalog/diary-api/api/types"
	"github.com/vocalog/diary-api/internal/services/profiles"
)

// GetMe returns the acting profile with today's progress
// @Summary Get the acting profile
// @Description Returns the profile resolved from X-Profile-Id (created on first contact) together with today's progress summary and the invitation budget. Calling this endpoint counts as activity.
// @Tags me
// @Produce json
// @Param X-Profile-Id header string false "Acting profile; defaults to the configured local profile"
// @Success 200 {object} types.MeResponse "Profile, today's progress and invitation summary"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/me [get]
func GetMe(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.ProfileService == nil {
			types.SendInternalError(c, "Profile service not configured")
			return
		}

		profileID := types.ProfileID(c, deps)
		ctx := c.Request.Context()

		profile, err := deps.ProfileService.TouchActivity(ctx, profileID)
		if err != nil {
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

		out := types.ProfileToOut(profile)
		c.JSON(http.StatusOK, types.MeResponse{
			Profile:       out,
			TodayProgress: *today,
			InvitationsSummary: profiles.InvitationsSummary{
				GrantedTotal: out.InvitationsGrantedTotal,
				Used:         out.InvitationsUsed,
				Remaining:    out.InvitationsRemaining,
			},
		})
	}
}
