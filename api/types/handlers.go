package types

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Handler utility functions to reduce duplication across handlers

// ProfileHeader names the header clients use to identify the acting
// profile. A missing or blank header falls back to the configured
// default so a single-user install never has to send it.
const ProfileHeader = "X-Profile-Id"

// ProfileID resolves the acting profile for a request
func ProfileID(c *gin.Context, deps *Dependencies) string {
	id := strings.TrimSpace(c.GetHeader(ProfileHeader))
	if id != "" {
		return id
	}
	if deps != nil && deps.DefaultProfileID != "" {
		return deps.DefaultProfileID
	}
	return DefaultProfileID
}

// SendError sends an error response with the given status and code
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Error: code, Message: message})
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, code, message string) {
	SendError(c, http.StatusBadRequest, code, message)
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	SendError(c, http.StatusNotFound, "not_found", message)
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	SendError(c, http.StatusInternalServerError, "internal_error", message)
}

// DefaultProfileID is the fallback identity when neither the request
// nor the configuration names one
const DefaultProfileID = "local_profile_1"
