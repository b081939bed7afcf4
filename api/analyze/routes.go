package analyze

import (
	"github.com/gin-gonic/gin"

	"github.com/vocalog/diary-api/api/types"
)

// RegisterRoutes registers the synchronous analysis route
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", PostAnalyze(deps))
}
