package me

import (
	"github.com/gin-gonic/gin"

	"github.com/vocalog/diary-api/api/types"
)

// RegisterRoutes registers the acting-profile routes. Every route
// resolves the profile from the X-Profile-Id header and counts as
// activity for the daily streak.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", GetMe(deps))
	router.GET("/progress", GetProgress(deps))
	router.GET("/invitations", GetInvitations(deps))
	router.GET("/feed", GetFeed(deps))
}
