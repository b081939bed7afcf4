package invitations

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vocalog/diary-api/api/types"
	"github.com/vocalog/diary-api/internal/services/profiles"
)

// CreateInvitationRequest is the request to invite someone by email
// @Description Request body for creating an invitation
type CreateInvitationRequest struct {
	Email string `json:"email" example:"amiga@example.com"`
}

// PostCreate issues an invitation against the profile's budget
// @Summary Create an invitation
// @Description Creates a pending invitation for the given email, consuming one credit from the acting profile's budget. Fails when no invitations remain.
// @Tags invitations
// @Accept json
// @Produce json
// @Param X-Profile-Id header string false "Acting profile; defaults to the configured local profile"
// @Param request body CreateInvitationRequest true "Invitee email"
// @Success 201 {object} types.CreateInvitationResponse "Created invitation"
// @Failure 400 {object} types.ErrorResponse "Missing email or no invitations remaining"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/invitations [post]
func PostCreate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.ProfileService == nil {
			types.SendInternalError(c, "Profile service not configured")
			return
		}

		var req CreateInvitationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			types.SendBadRequest(c, "invalid_body", err.Error())
			return
		}
		email := strings.TrimSpace(req.Email)
		if email == "" {
			types.SendBadRequest(c, "invalid_body", "email is required")
			return
		}

		profileID := types.ProfileID(c, deps)
		ctx := c.Request.Context()

		if _, err := deps.ProfileService.TouchActivity(ctx, profileID); err != nil {
			log.Printf("[ERROR] Failed to load profile %s: %v", profileID, err)
			types.SendInternalError(c, "Failed to load profile")
			return
		}

		invitation, err := deps.ProfileService.CreateInvitation(ctx, profileID, email)
		if err != nil {
			if errors.Is(err, profiles.ErrNoInvitationsRemaining) {
				types.SendBadRequest(c, "no_invitations_remaining", "No invitations remaining")
				return
			}
			log.Printf("[ERROR] Failed to create invitation for profile %s: %v", profileID, err)
			types.SendInternalError(c, "Failed to create invitation")
			return
		}

		c.JSON(http.StatusCreated, types.CreateInvitationResponse{
			Invitation: types.InvitationToOut(invitation),
		})
	}
}
