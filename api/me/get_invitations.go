package me

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vocalog/diary-api/api/types"
)

// GetInvitations lists the profile's sent invitations
// @Summary List invitations
// @Description Returns the invitations the acting profile has sent, newest first. Pending invitations past their expiry read as expired.
// @Tags me
// @Produce json
// @Param X-Profile-Id header string false "Acting profile; defaults to the configured local profile"
// @Success 200 {object} types.MeInvitationsResponse "Invitation list"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/me/invitations [get]
func GetInvitations(deps *types.Dependencies) gin.HandlerFunc {
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

		invitations, err := deps.ProfileService.ListInvitations(ctx, profileID)
		if err != nil {
			log.Printf("[ERROR] Failed to list invitations for profile %s: %v", profileID, err)
			types.SendInternalError(c, "Failed to list invitations")
			return
		}

		c.JSON(http.StatusOK, types.MeInvitationsResponse{
			Invitations: types.InvitationsToOut(invitations),
		})
	}
}
