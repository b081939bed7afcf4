package invitations

import (
	"github.com/gin-gonic/gin"

	"github.com/vocalog/diary-api/api/types"
)

// RegisterRoutes registers invitation routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", PostCreate(deps))
}
