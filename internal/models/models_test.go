package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(AllModels()...)
	require.NoError(t, err)

	return db
}

func TestShardBeforeCreateGeneratesID(t *testing.T) {
	db := setupTestDB(t)

	shard := Shard{Source: ShardSourceMic}
	require.NoError(t, db.Create(&shard).Error)

	assert.NotEmpty(t, shard.ID)
	assert.Len(t, shard.ID, 36)
}

func TestShardBeforeCreateKeepsExplicitID(t *testing.T) {
	db := setupTestDB(t)

	shard := Shard{ID: "seed-shard-1", Source: ShardSourceSeed}
	require.NoError(t, db.Create(&shard).Error)

	assert.Equal(t, "seed-shard-1", shard.ID)
}

func TestShardDocumentRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	shard := Shard{Source: ShardSourceMic}
	intensity := 0.42
	require.NoError(t, shard.SetMetaDoc(MetaDocument{
		InputSource: "mic",
		Status:      ShardStatusRaw,
		Intensity:   &intensity,
	}))
	require.NoError(t, shard.SetAnalysisDoc(AnalysisDocument{
		Emotion: &EmotionBlock{Primary: EmotionNeutral, Valence: ValenceNeutral},
	}))
	require.NoError(t, db.Create(&shard).Error)

	var loaded Shard
	require.NoError(t, db.First(&loaded, "id = ?", shard.ID).Error)

	meta, err := loaded.MetaDoc()
	require.NoError(t, err)
	assert.Equal(t, "mic", meta.InputSource)
	assert.Equal(t, ShardStatusRaw, meta.Status)
	require.NotNil(t, meta.Intensity)
	assert.Equal(t, 0.42, *meta.Intensity)

	analysis, err := loaded.AnalysisDoc()
	require.NoError(t, err)
	require.NotNil(t, analysis.Emotion)
	assert.Equal(t, EmotionNeutral, analysis.Emotion.Primary)
}

func TestShardEmptyDocumentsDecode(t *testing.T) {
	shard := Shard{}

	meta, err := shard.MetaDoc()
	require.NoError(t, err)
	assert.Equal(t, MetaDocument{}, meta)

	analysis, err := shard.AnalysisDoc()
	require.NoError(t, err)
	assert.Nil(t, analysis.Emotion)

	features, err := shard.FeatureDoc()
	require.NoError(t, err)
	assert.Nil(t, features.RMS)
}

func TestEpisodeBeforeCreateGeneratesID(t *testing.T) {
	db := setupTestDB(t)

	title := "Morning walk"
	episode := Episode{Title: &title}
	require.NoError(t, db.Create(&episode).Error)

	assert.NotEmpty(t, episode.ID)
}

func TestProfileInvitationsRemaining(t *testing.T) {
	profile := Profile{InvitationsGrantedTotal: 3, InvitationsUsed: 1}
	assert.Equal(t, 2, profile.InvitationsRemaining())

	exhausted := Profile{InvitationsGrantedTotal: 3, InvitationsUsed: 5}
	assert.Equal(t, 0, exhausted.InvitationsRemaining())
}

func TestInvitationEffectiveState(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	pending := Invitation{State: InvitationStatePending, ExpiresAt: now.Add(time.Hour)}
	assert.Equal(t, InvitationStatePending, pending.EffectiveState(now))

	expired := Invitation{State: InvitationStatePending, ExpiresAt: now.Add(-time.Hour)}
	assert.Equal(t, InvitationStateExpired, expired.EffectiveState(now))

	// Accepted invitations never expire retroactively
	accepted := Invitation{State: InvitationStateAccepted, ExpiresAt: now.Add(-time.Hour)}
	assert.Equal(t, InvitationStateAccepted, accepted.EffectiveState(now))
}

func TestPublishedShardBeforeCreateStampsPublishedAt(t *testing.T) {
	db := setupTestDB(t)

	entry := PublishedShard{ProfileID: "profile-1", ShardID: "shard-1"}
	require.NoError(t, db.Create(&entry).Error)

	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.PublishedAt.IsZero())
	assert.False(t, entry.IsRetired())

	retiredAt := time.Now().UTC()
	entry.RetiredAt = &retiredAt
	assert.True(t, entry.IsRetired())
}
