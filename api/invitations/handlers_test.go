package invitations

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalog/diary-api/api/types"
	"github.com/vocalog/diary-api/internal/database"
	"github.com/vocalog/diary-api/internal/models"
	profilesService "github.com/vocalog/diary-api/internal/services/profiles"
)

func setupDeps(t *testing.T) *types.Dependencies {
	t.Helper()

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	t.Cleanup(func() { _ = db.Close() })

	return &types.Dependencies{
		DB:               db,
		ProfileService:   profilesService.NewService(profilesService.NewRepository(db.DB)),
		DefaultProfileID: types.DefaultProfileID,
	}
}

func newRouter(deps *types.Dependencies) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/invitations"), deps)
	return router
}

func postInvitation(t *testing.T, router *gin.Engine, profileID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/invitations", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if profileID != "" {
		req.Header.Set(types.ProfileHeader, profileID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPostCreate(t *testing.T) {
	deps := setupDeps(t)
	router := newRouter(deps)

	w := postInvitation(t, router, "profile-7", `{"email":"amiga@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp types.CreateInvitationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	inv := resp.Invitation
	assert.NotEmpty(t, inv.ID)
	assert.Equal(t, "profile-7", inv.InviterID)
	assert.Equal(t, "amiga@example.com", inv.Email)
	assert.Equal(t, models.InvitationStatePending, inv.State)
	assert.Len(t, inv.Code, profilesService.InvitationCodeLength)

	expires, err := time.Parse(time.RFC3339, inv.ExpiresAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC().Add(profilesService.InvitationTTL), expires, time.Minute)

	// The credit was consumed
	var profile models.Profile
	require.NoError(t, deps.DB.DB.First(&profile, "id = ?", "profile-7").Error)
	assert.Equal(t, 1, profile.InvitationsUsed)
}

func TestPostCreateRequiresEmail(t *testing.T) {
	deps := setupDeps(t)
	router := newRouter(deps)

	for _, body := range []string{`{}`, `{"email":"   "}`} {
		w := postInvitation(t, router, "profile-7", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "invalid_body", resp.Error)
	}
}

func TestPostCreateBudgetExhausted(t *testing.T) {
	deps := setupDeps(t)
	router := newRouter(deps)

	for i := 0; i < models.DefaultInvitationsGranted; i++ {
		w := postInvitation(t, router, "profile-7", `{"email":"amiga@example.com"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := postInvitation(t, router, "profile-7", `{"email":"amiga@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "no_invitations_remaining", resp.Error)

	var count int64
	require.NoError(t, deps.DB.DB.Model(&models.Invitation{}).Count(&count).Error)
	assert.EqualValues(t, models.DefaultInvitationsGranted, count)
}
