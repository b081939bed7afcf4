package episodes

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

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestRepository_CreateEpisode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	episode := &models.Episode{Title: strPtr("Morning walk")}
	err := repo.CreateEpisode(context.Background(), episode)
	require.NoError(t, err)
	assert.NotEmpty(t, episode.ID)

	var retrieved models.Episode
	err = db.First(&retrieved, "id = ?", episode.ID).Error
	require.NoError(t, err)
	require.NotNil(t, retrieved.Title)
	assert.Equal(t, "Morning walk", *retrieved.Title)
}

func TestRepository_GetOrCreateEpisode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	created, err := repo.GetOrCreateEpisode(context.Background(), "ep-seed-1")
	require.NoError(t, err)
	assert.Equal(t, "ep-seed-1", created.ID)

	// Second call returns the same row instead of creating another
	again, err := repo.GetOrCreateEpisode(context.Background(), "ep-seed-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)

	var count int64
	db.Model(&models.Episode{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRepository_GetEpisodeByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	episode := &models.Episode{Title: strPtr("Get by ID")}
	require.NoError(t, repo.CreateEpisode(context.Background(), episode))

	retrieved, err := repo.GetEpisodeByID(context.Background(), episode.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.ID, retrieved.ID)

	_, err = repo.GetEpisodeByID(context.Background(), "missing-episode")
	assert.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestRepository_ListEpisodesNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	older := models.Episode{ID: "ep-older", CreatedAt: base}
	newer := models.Episode{ID: "ep-newer", CreatedAt: base.Add(time.Hour)}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	episodes, err := repo.ListEpisodes(context.Background())
	require.NoError(t, err)
	require.Len(t, episodes, 2)
	assert.Equal(t, "ep-newer", episodes[0].ID)
	assert.Equal(t, "ep-older", episodes[1].ID)
}

func TestRepository_GetShardsByEpisodeIDOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	episode := models.Episode{ID: "ep-1"}
	require.NoError(t, db.Create(&episode).Error)

	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	second := models.Shard{ID: "shard-b", EpisodeID: strPtr("ep-1"), StartTime: floatPtr(10), CreatedAt: base}
	first := models.Shard{ID: "shard-a", EpisodeID: strPtr("ep-1"), StartTime: floatPtr(0), CreatedAt: base.Add(time.Minute)}
	unrelated := models.Shard{ID: "shard-x", EpisodeID: strPtr("ep-2"), StartTime: floatPtr(5), CreatedAt: base}
	require.NoError(t, db.Create(&second).Error)
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&unrelated).Error)

	shards, err := repo.GetShardsByEpisodeID(context.Background(), "ep-1")
	require.NoError(t, err)
	require.Len(t, shards, 2)
	assert.Equal(t, "shard-a", shards[0].ID)
	assert.Equal(t, "shard-b", shards[1].ID)
}

func TestRepository_UpdateEpisode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	episode := &models.Episode{Title: strPtr("Original")}
	require.NoError(t, repo.CreateEpisode(context.Background(), episode))

	episode.Title = strPtr("Updated")
	episode.Note = strPtr("with a note")
	require.NoError(t, repo.UpdateEpisode(context.Background(), episode))

	retrieved, err := repo.GetEpisodeByID(context.Background(), episode.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated", *retrieved.Title)
	assert.Equal(t, "with a note", *retrieved.Note)
}
