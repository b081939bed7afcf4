package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vocalog/diary-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(models.AllModels()...)
	require.NoError(t, err)

	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	db := setupTestDB(t)
	return NewService(NewRepository(db)), db
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func createShard(t *testing.T, db *gorm.DB, id string, analysis models.AnalysisDocument) {
	t.Helper()

	shard := models.Shard{ID: id, StartTime: floatPtr(0), EndTime: floatPtr(10)}
	require.NoError(t, shard.SetAnalysisDoc(analysis))
	require.NoError(t, db.Create(&shard).Error)
}

func publishShard(t *testing.T, db *gorm.DB, profileID, shardID string, publishedAt time.Time, retired bool) {
	t.Helper()

	entry := models.PublishedShard{
		ProfileID:   profileID,
		ShardID:     shardID,
		PublishedAt: publishedAt,
	}
	if retired {
		now := publishedAt.Add(time.Hour)
		entry.RetiredAt = &now
	}
	require.NoError(t, db.Create(&entry).Error)
}

func TestService_GetFeedForProfileOrder(t *testing.T) {
	service, db := newTestService(t)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	createShard(t, db, "shard-old", models.AnalysisDocument{})
	createShard(t, db, "shard-new", models.AnalysisDocument{})
	publishShard(t, db, "profile-1", "shard-old", base, false)
	publishShard(t, db, "profile-1", "shard-new", base.Add(time.Hour), false)

	items, err := service.GetFeedForProfile(context.Background(), "profile-1")
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "shard-new", items[0].ShardID)
	assert.Equal(t, "shard-old", items[1].ShardID)
}

func TestService_GetFeedForProfileSkipsRetiredAndForeign(t *testing.T) {
	service, db := newTestService(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	createShard(t, db, "shard-live", models.AnalysisDocument{})
	createShard(t, db, "shard-retired", models.AnalysisDocument{})
	createShard(t, db, "shard-foreign", models.AnalysisDocument{})
	publishShard(t, db, "profile-1", "shard-live", now, false)
	publishShard(t, db, "profile-1", "shard-retired", now, true)
	publishShard(t, db, "profile-2", "shard-foreign", now, false)

	items, err := service.GetFeedForProfile(context.Background(), "profile-1")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "shard-live", items[0].ShardID)
}

func TestService_GetFeedForProfileSkipsDanglingShard(t *testing.T) {
	service, db := newTestService(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	createShard(t, db, "shard-present", models.AnalysisDocument{})
	publishShard(t, db, "profile-1", "shard-present", now, false)
	publishShard(t, db, "profile-1", "shard-gone", now.Add(time.Hour), false)

	items, err := service.GetFeedForProfile(context.Background(), "profile-1")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "shard-present", items[0].ShardID)
}

func TestService_GetFeedForProfileItemFields(t *testing.T) {
	service, db := newTestService(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	episodeID := "ep-1"
	shard := models.Shard{
		ID:        "shard-1",
		EpisodeID: &episodeID,
		StartTime: floatPtr(5),
		EndTime:   floatPtr(15),
	}
	require.NoError(t, shard.SetAnalysisDoc(models.AnalysisDocument{
		Transcript: strPtr("hoy fue un buen dia"),
		User: &models.UserEdits{
			Status:   models.ShardStatusReviewed,
			UserTags: []string{"trabajo", "familia"},
		},
		Emotion: &models.EmotionBlock{
			Primary:    models.EmotionJoy,
			Valence:    models.ValencePositive,
			Activation: models.ActivationMedium,
			Intensity:  floatPtr(0.6),
			Headline:   strPtr("Emoción moderada."),
		},
	}))
	require.NoError(t, db.Create(&shard).Error)
	publishShard(t, db, "profile-1", "shard-1", now, false)

	items, err := service.GetFeedForProfile(context.Background(), "profile-1")
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "ep-1", item.EpisodeID)
	assert.WithinDuration(t, now, item.PublishedAt, time.Second)
	require.NotNil(t, item.StartTimeSec)
	assert.InDelta(t, 5.0, *item.StartTimeSec, 0.0001)
	assert.Equal(t, models.ShardStatusReviewed, item.Status)
	assert.Equal(t, []string{"trabajo", "familia"}, item.UserTags)
	assert.Equal(t, models.EmotionJoy, item.Emotion.Primary)
	assert.Equal(t, "positive", item.Emotion.Valence)
	assert.Equal(t, "medium", item.Emotion.Activation)
	assert.Equal(t, "Emoción moderada.", item.Emotion.Headline)
	require.NotNil(t, item.Emotion.Intensity)
	assert.InDelta(t, 0.6, *item.Emotion.Intensity, 0.0001)
	assert.Equal(t, "hoy fue un buen dia", item.TranscriptSnippet)
}

func TestService_GetFeedForProfilePrefersTranscriptOverride(t *testing.T) {
	service, db := newTestService(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	createShard(t, db, "shard-1", models.AnalysisDocument{
		Transcript: strPtr("version de la maquina"),
		User:       &models.UserEdits{TranscriptOverride: "version corregida"},
	})
	publishShard(t, db, "profile-1", "shard-1", now, false)

	items, err := service.GetFeedForProfile(context.Background(), "profile-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "version corregida", items[0].TranscriptSnippet)
}

func TestService_GetFeedForProfileEmpty(t *testing.T) {
	service, _ := newTestService(t)

	items, err := service.GetFeedForProfile(context.Background(), "profile-1")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
