package enrichment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vocalog/diary-api/internal/models"
	"github.com/vocalog/diary-api/internal/services/inference"
	"github.com/vocalog/diary-api/internal/services/shards"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(models.AllModels()...)
	require.NoError(t, err)

	return db
}

func floatPtr(f float64) *float64 { return &f }

type fakeTranscriber struct {
	result inference.Transcription
	err    error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audioPath string) (inference.Transcription, error) {
	if f.err != nil {
		return inference.NeutralTranscription(), f.err
	}
	return f.result, nil
}

type fakeSemantic struct {
	block models.SemanticBlock
	err   error
}

func (f *fakeSemantic) AnalyzeSemantic(ctx context.Context, transcript, language string, features models.FeatureSet) (models.SemanticBlock, error) {
	if f.err != nil {
		return inference.NeutralSemantic(), f.err
	}
	return f.block, nil
}

func newTestShard(t *testing.T, db *gorm.DB) *models.Shard {
	t.Helper()
	require.NoError(t, db.Create(&models.Episode{ID: "ep-1"}).Error)

	service := shards.NewService(shards.NewRepository(db))
	shard, err := service.CreateShard(context.Background(), shards.CreateShardParams{
		EpisodeID: "ep-1",
		StartTime: 0,
		EndTime:   4,
		AudioPath: "data/audio/ep-1/clip.wav",
		Features: models.FeatureSet{
			Duration:  floatPtr(4.0),
			Intensity: floatPtr(0.8),
			RMS:       floatPtr(2000.0),
			Peak:      floatPtr(9000.0),
		},
	})
	require.NoError(t, err)
	return shard
}

func TestPipeline_Enrich(t *testing.T) {
	db := setupTestDB(t)
	shard := newTestShard(t, db)
	store := shards.NewService(shards.NewRepository(db))

	// Seed a user edit that the pass must not clobber.
	_, err := store.UpdateShard(context.Background(), shard.ID, shards.UpdateShardRequest{
		UserNotes: strPtr("guardar esto"),
	})
	require.NoError(t, err)

	pipeline := NewPipeline(
		store,
		&fakeTranscriber{result: inference.Transcription{Text: "hoy todo salio mal", Language: "es", Confidence: 0.9}},
		inference.NewLocalEmotionAnalyzer(),
		&fakeSemantic{block: models.SemanticBlock{
			Summary:    "Descarga de frustracion.",
			Topics:     []string{"trabajo"},
			MomentType: models.MomentTypeVent,
			Flags:      &models.SemanticFlags{NeedsFollowup: true},
		}},
	)

	require.NoError(t, pipeline.Enrich(context.Background(), Task{ShardID: shard.ID, AudioPath: "data/audio/ep-1/clip.wav"}))

	stored, err := store.GetShard(context.Background(), shard.ID)
	require.NoError(t, err)

	doc, err := stored.AnalysisDoc()
	require.NoError(t, err)

	require.NotNil(t, doc.Transcript)
	assert.Equal(t, "hoy todo salio mal", *doc.Transcript)
	require.NotNil(t, doc.TranscriptLanguage)
	assert.Equal(t, "es", *doc.TranscriptLanguage)

	require.NotNil(t, doc.Emotion)
	assert.Equal(t, models.EmotionAnger, doc.Emotion.Primary)
	assert.Equal(t, "negative", doc.Emotion.Valence)
	assert.Equal(t, "high", doc.Emotion.Activation)
	require.NotNil(t, doc.Emotion.Headline)
	assert.Equal(t, "Alza de voz.", *doc.Emotion.Headline)

	require.NotNil(t, doc.Semantic)
	assert.Equal(t, "Descarga de frustracion.", doc.Semantic.Summary)
	assert.Equal(t, models.MomentTypeVent, doc.Semantic.MomentType)

	// The user edit survived the merge.
	require.NotNil(t, doc.User)
	assert.Equal(t, "guardar esto", doc.User.UserNotes)

	meta, err := stored.MetaDoc()
	require.NoError(t, err)
	assert.Equal(t, models.AnalysisSourceLocal, meta.AnalysisSource)
	assert.Equal(t, models.AnalysisModeAuto, meta.AnalysisMode)
	assert.Equal(t, shards.DefaultAnalysisVersion, meta.AnalysisVersion)
	assert.NotEmpty(t, meta.AnalysisAt)
}

func TestPipeline_EnrichNeutralizesAdapterFailures(t *testing.T) {
	db := setupTestDB(t)
	shard := newTestShard(t, db)
	store := shards.NewService(shards.NewRepository(db))

	pipeline := NewPipeline(
		store,
		&fakeTranscriber{err: errors.New("stt unreachable")},
		inference.NewLocalEmotionAnalyzer(),
		&fakeSemantic{err: errors.New("llm unreachable")},
		WithSource(models.AnalysisSourceCloud),
		WithVersion("0.2.0-cloud"),
	)

	require.NoError(t, pipeline.Enrich(context.Background(), Task{ShardID: shard.ID}))

	stored, err := store.GetShard(context.Background(), shard.ID)
	require.NoError(t, err)

	doc, err := stored.AnalysisDoc()
	require.NoError(t, err)

	assert.Nil(t, doc.Transcript)
	require.NotNil(t, doc.Emotion)
	assert.Equal(t, models.EmotionNeutral, doc.Emotion.Primary)
	require.NotNil(t, doc.Semantic)
	assert.Equal(t, "", doc.Semantic.Summary)
	assert.Equal(t, models.MomentTypeOther, doc.Semantic.MomentType)

	assert.Equal(t, models.AnalysisSourceCloud, doc.AnalysisSource)
	assert.Equal(t, "0.2.0-cloud", doc.AnalysisVersion)

	meta, err := stored.MetaDoc()
	require.NoError(t, err)
	assert.Equal(t, models.AnalysisSourceCloud, meta.AnalysisSource)
	assert.Equal(t, "0.2.0-cloud", meta.AnalysisVersion)
}

func TestPipeline_EnrichMissingShard(t *testing.T) {
	db := setupTestDB(t)
	store := shards.NewService(shards.NewRepository(db))

	pipeline := NewPipeline(
		store,
		inference.NewNullTranscriber(),
		inference.NewLocalEmotionAnalyzer(),
		inference.NewStaticSemanticAnalyzer(),
	)

	err := pipeline.Enrich(context.Background(), Task{ShardID: "missing"})
	require.Error(t, err)
	assert.True(t, shards.IsNotFound(err))
}

func strPtr(s string) *string { return &s }
