package me

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vocalog/diary-api/api/types"
	"github.com/vocalog/diary-api/internal/database"
	"github.com/vocalog/diary-api/internal/models"
	feedService "github.com/vocalog/diary-api/internal/services/feed"
	profilesService "github.com/vocalog/diary-api/internal/services/profiles"
	shardsService "github.com/vocalog/diary-api/internal/services/shards"
)

func setupDeps(t *testing.T) (*types.Dependencies, *gorm.DB) {
	t.Helper()

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	t.Cleanup(func() { _ = db.Close() })

	deps := &types.Dependencies{
		DB:               db,
		ShardService:     shardsService.NewService(shardsService.NewRepository(db.DB)),
		FeedService:      feedService.NewService(feedService.NewRepository(db.DB)),
		ProfileService:   profilesService.NewService(profilesService.NewRepository(db.DB)),
		DefaultProfileID: types.DefaultProfileID,
	}
	return deps, db.DB
}

func newRouter(deps *types.Dependencies) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/me"), deps)
	return router
}

func getAs(t *testing.T, router *gin.Engine, target, profileID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	if profileID != "" {
		req.Header.Set(types.ProfileHeader, profileID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetMeCreatesProfile(t *testing.T) {
	deps, _ := setupDeps(t)
	router := newRouter(deps)

	w := getAs(t, router, "/me", "profile-7")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.MeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "profile-7", resp.Profile.ID)
	assert.Equal(t, models.ProfileRoleGhost, resp.Profile.Role)
	assert.Equal(t, models.ProfileStateOK, resp.Profile.State)
	assert.Zero(t, resp.Profile.TevScore)
	assert.Equal(t, 3, resp.Profile.InvitationsRemaining)

	assert.Equal(t, 3, resp.InvitationsSummary.GrantedTotal)
	assert.Equal(t, 0, resp.InvitationsSummary.Used)
	assert.Equal(t, 3, resp.InvitationsSummary.Remaining)

	today := time.Now().UTC().Format("2006-01-02")
	assert.Equal(t, today, resp.TodayProgress.Date)
	assert.Equal(t, "Eco", resp.TodayProgress.LevelLabel)
}

func TestGetMeDefaultsProfile(t *testing.T) {
	deps, _ := setupDeps(t)
	router := newRouter(deps)

	w := getAs(t, router, "/me", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.MeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, types.DefaultProfileID, resp.Profile.ID)
}

func TestGetProgress(t *testing.T) {
	deps, db := setupDeps(t)
	router := newRouter(deps)

	profile := models.Profile{ID: "profile-7", TevScore: 120, LastActiveAt: time.Now().UTC()}
	require.NoError(t, db.Create(&profile).Error)

	// Today's movement: two upvotes, one downvote, one review, one publication
	for _, direction := range []string{models.VoteUp, models.VoteUp, models.VoteDown, models.VoteReview} {
		require.NoError(t, db.Create(&models.VoteEvent{ProfileID: "profile-7", ShardID: "shard-1", Direction: direction}).Error)
	}
	require.NoError(t, db.Create(&models.PublishedShard{ProfileID: "profile-7", ShardID: "shard-1"}).Error)

	w := getAs(t, router, "/me/progress", "profile-7")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.MeProgressResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	today := resp.Today
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), today.Date)
	assert.Equal(t, 2, today.VotesGiven.Up)
	assert.Equal(t, 1, today.VotesGiven.Down)
	assert.Equal(t, 1, today.ShardsReviewed)
	assert.Equal(t, 1, today.ShardsPublished)
	// +1 up +1 up -1 down +5 publish
	assert.InDelta(t, 6.0, today.TevDelta, 0.001)
	assert.InDelta(t, 120.0, today.TevScoreEnd, 0.001)
	assert.InDelta(t, 114.0, today.TevScoreStart, 0.001)
	assert.Equal(t, "Voz", today.LevelLabel)
	assert.Equal(t, 13, today.ProgressPercentToNextLevel)
	assert.GreaterOrEqual(t, today.ActivityMinutes, 1)

	require.Len(t, resp.History, profilesService.DefaultHistoryDays)
	assert.Equal(t, today.Date, resp.History[0].Date)
	// The day before today starts and ends at today's reconstructed start
	assert.InDelta(t, 114.0, resp.History[1].TevScoreEnd, 0.001)
	assert.InDelta(t, 114.0, resp.History[1].TevScoreStart, 0.001)
}

func TestGetInvitations(t *testing.T) {
	deps, _ := setupDeps(t)
	router := newRouter(deps)

	ctx := context.Background()
	first, err := deps.ProfileService.CreateInvitation(ctx, "profile-7", "una@example.com")
	require.NoError(t, err)
	second, err := deps.ProfileService.CreateInvitation(ctx, "profile-7", "otra@example.com")
	require.NoError(t, err)

	w := getAs(t, router, "/me/invitations", "profile-7")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.MeInvitationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Invitations, 2)

	// Newest first
	ids := []string{resp.Invitations[0].ID, resp.Invitations[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
	for _, inv := range resp.Invitations {
		assert.Equal(t, models.InvitationStatePending, inv.State)
		assert.Len(t, inv.Code, profilesService.InvitationCodeLength)
	}
}

func TestGetFeed(t *testing.T) {
	deps, db := setupDeps(t)
	router := newRouter(deps)

	transcript := "hoy fue un buen día"
	shard := models.Shard{ID: "shard-1", EpisodeID: strPtr("ep-1")}
	require.NoError(t, shard.SetAnalysisDoc(models.AnalysisDocument{
		Transcript: &transcript,
		Emotion: &models.EmotionBlock{
			Primary:    models.EmotionJoy,
			Valence:    models.ValencePositive,
			Activation: models.ActivationHigh,
		},
	}))
	require.NoError(t, shard.SetMetaDoc(models.MetaDocument{PublishState: models.PublishStateReady}))
	require.NoError(t, db.Create(&shard).Error)

	ctx := context.Background()
	_, err := deps.ShardService.PublishShardForProfile(ctx, "profile-7", "shard-1", false)
	require.NoError(t, err)

	w := getAs(t, router, "/me/feed", "profile-7")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.FeedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	item := resp.Items[0]
	assert.Equal(t, "shard-1", item.ShardID)
	assert.Equal(t, "ep-1", item.EpisodeID)
	assert.Equal(t, models.EmotionJoy, item.Emotion.Primary)
	assert.Equal(t, "positive", item.Emotion.Valence)
	assert.Equal(t, "high", item.Emotion.Activation)
	assert.Equal(t, transcript, item.TranscriptSnippet)

	// Another profile sees an empty feed
	w = getAs(t, router, "/me/feed", "profile-8")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)

	// Deleting the shard retires the entry
	_, err = deps.ShardService.DeleteShard(ctx, "profile-7", "shard-1", "")
	require.NoError(t, err)

	w = getAs(t, router, "/me/feed", "profile-7")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
}

func strPtr(s string) *string { return &s }
