package curation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalog/diary-api/internal/models"
)

func buildTimedShard(t *testing.T, id string, start, end float64, analysis models.AnalysisDocument) models.Shard {
	t.Helper()

	shard := buildShard(t, id, floatPtr(start), models.FeatureSet{}, analysis)
	shard.EndTime = floatPtr(end)
	return shard
}

func TestBuildInsightStats(t *testing.T) {
	shards := []models.Shard{
		buildTimedShard(t, "a", 0, 10, models.AnalysisDocument{
			Emotion: &models.EmotionBlock{Primary: models.EmotionJoy},
		}),
		buildTimedShard(t, "b", 5, 20, models.AnalysisDocument{}),
	}

	stats := buildInsightStats(buildViews(shards))

	assert.Equal(t, 2, stats.TotalShards)
	assert.Equal(t, 1, stats.ShardsWithEmotion)
	require.NotNil(t, stats.DurationSeconds)
	assert.InDelta(t, 20.0, *stats.DurationSeconds, 0.0001)
	require.NotNil(t, stats.FirstShardAt)
	assert.InDelta(t, 0.0, *stats.FirstShardAt, 0.0001)
	require.NotNil(t, stats.LastShardAt)
	assert.InDelta(t, 20.0, *stats.LastShardAt, 0.0001)
}

func TestBuildInsightStatsNegativeSpanIsUnknown(t *testing.T) {
	// A lone end time before the only start time makes the span
	// meaningless
	withStart := buildShard(t, "a", floatPtr(30), models.FeatureSet{}, models.AnalysisDocument{})
	withEnd := buildShard(t, "b", nil, models.FeatureSet{}, models.AnalysisDocument{})
	withEnd.EndTime = floatPtr(10)

	stats := buildInsightStats(buildViews([]models.Shard{withStart, withEnd}))

	assert.Nil(t, stats.DurationSeconds)
	require.NotNil(t, stats.FirstShardAt)
	assert.InDelta(t, 30.0, *stats.FirstShardAt, 0.0001)
	require.NotNil(t, stats.LastShardAt)
	assert.InDelta(t, 10.0, *stats.LastShardAt, 0.0001)
}

func TestBuildInsightStatsEmpty(t *testing.T) {
	stats := buildInsightStats(nil)

	assert.Equal(t, 0, stats.TotalShards)
	assert.Nil(t, stats.DurationSeconds)
	assert.Nil(t, stats.FirstShardAt)
	assert.Nil(t, stats.LastShardAt)
}

func TestBuildEmotionSummaryTranslatesLabels(t *testing.T) {
	shards := []models.Shard{
		buildShard(t, "a", nil, models.FeatureSet{}, models.AnalysisDocument{
			Emotion: &models.EmotionBlock{
				Primary:    models.EmotionAnger,
				Valence:    models.ValenceNegative,
				Activation: models.ActivationHigh,
			},
		}),
		// legacy fields translate the same way
		buildShard(t, "b", nil, models.FeatureSet{}, models.AnalysisDocument{
			PrimaryEmotion: strPtr(models.EmotionJoy),
			Valence:        strPtr(models.ValencePositive),
			Arousal:        strPtr(models.ActivationLow),
		}),
		// already-translated labels pass through
		buildShard(t, "c", nil, models.FeatureSet{}, models.AnalysisDocument{
			Emotion: &models.EmotionBlock{
				Primary:    models.EmotionJoy,
				Valence:    "positive",
				Activation: "low",
			},
		}),
		// unrecognized labels are dropped from the counts
		buildShard(t, "d", nil, models.FeatureSet{}, models.AnalysisDocument{
			Emotion: &models.EmotionBlock{
				Primary:    "entusiasmo",
				Valence:    "radiante",
				Activation: "altisimo",
			},
		}),
	}

	summary := buildEmotionSummary(buildViews(shards))

	assert.Equal(t, map[string]int{
		models.EmotionAnger: 1,
		models.EmotionJoy:   2,
		"entusiasmo":        1,
	}, summary.PrimaryCounts)
	assert.Equal(t, map[string]int{"negative": 1, "positive": 2}, summary.ValenceCounts)
	assert.Equal(t, map[string]int{"high": 1, "low": 2}, summary.ActivationCounts)
}

func TestBuildKeyMomentsPoolsAndDedup(t *testing.T) {
	episodeID := "ep-1"

	// qualifies for the intensity pool and the negative pool; must
	// surface once, under the earlier pool's reason
	furious := buildShard(t, "furious", floatPtr(0), models.FeatureSet{}, models.AnalysisDocument{
		Transcript: strPtr("no puedo mas con esto"),
		Emotion: &models.EmotionBlock{
			Primary:    models.EmotionAnger,
			Valence:    models.ValenceNegative,
			Activation: models.ActivationHigh,
			Intensity:  floatPtr(0.9),
			Headline:   strPtr("Alza de voz."),
		},
	})
	intense := buildShard(t, "intense", floatPtr(10), models.FeatureSet{}, models.AnalysisDocument{
		Emotion: &models.EmotionBlock{
			Primary:   models.EmotionSurprise,
			Intensity: floatPtr(0.8),
		},
	})
	sad := buildShard(t, "sad", floatPtr(20), models.FeatureSet{}, models.AnalysisDocument{
		User:       &models.UserEdits{TranscriptOverride: "me senti triste"},
		Transcript: strPtr("me senti trsite"),
		Emotion: &models.EmotionBlock{
			Primary:   models.EmotionSadness,
			Valence:   models.ValenceNegative,
			Intensity: floatPtr(0.5),
		},
	})
	glad := buildShard(t, "glad", floatPtr(30), models.FeatureSet{}, models.AnalysisDocument{
		Emotion: &models.EmotionBlock{
			Primary:   models.EmotionGratitude,
			Valence:   models.ValencePositive,
			Intensity: floatPtr(0.6),
		},
	})
	furious.EpisodeID = &episodeID
	intense.EpisodeID = &episodeID
	sad.EpisodeID = &episodeID
	glad.EpisodeID = &episodeID

	moments := buildKeyMoments(buildViews([]models.Shard{glad, sad, intense, furious}))

	require.Len(t, moments, 4)

	assert.Equal(t, "furious", moments[0].ShardID)
	assert.Equal(t, ReasonHighestIntensity, moments[0].Reason)
	assert.Equal(t, models.EmotionAnger, moments[0].Emotion.Primary)
	assert.Equal(t, "negative", moments[0].Emotion.Valence)
	assert.Equal(t, "high", moments[0].Emotion.Activation)
	assert.Equal(t, "Alza de voz.", moments[0].Emotion.Headline)
	assert.Equal(t, "no puedo mas con esto", moments[0].TranscriptSnippet)
	assert.Equal(t, episodeID, moments[0].EpisodeID)

	assert.Equal(t, "intense", moments[1].ShardID)
	assert.Equal(t, ReasonHighestIntensity, moments[1].Reason)

	assert.Equal(t, "sad", moments[2].ShardID)
	assert.Equal(t, ReasonStrongNegative, moments[2].Reason)
	assert.Equal(t, "me senti triste", moments[2].TranscriptSnippet)

	assert.Equal(t, "glad", moments[3].ShardID)
	assert.Equal(t, ReasonStrongPositive, moments[3].Reason)
}

func TestBuildKeyMomentsGlobalCap(t *testing.T) {
	shards := make([]models.Shard, 0, 7)
	for i := 0; i < 7; i++ {
		shards = append(shards, buildShard(t, fmt.Sprintf("shard-%d", i), floatPtr(float64(i)), models.FeatureSet{}, models.AnalysisDocument{
			Emotion: &models.EmotionBlock{
				Primary:   models.EmotionAnger,
				Intensity: floatPtr(0.8 + float64(i)/100),
			},
		}))
	}

	moments := buildKeyMoments(buildViews(shards))

	require.Len(t, moments, MaxKeyMoments)
	// intensity descending within the pool
	assert.Equal(t, "shard-6", moments[0].ShardID)
	assert.Equal(t, "shard-2", moments[4].ShardID)
}

func TestBuildKeyMomentsIntensityFallsBackToFeatures(t *testing.T) {
	// no analyzed intensity, but the acoustic one clears the bar
	loud := buildShard(t, "loud", nil, models.FeatureSet{Intensity: floatPtr(0.8)}, models.AnalysisDocument{
		Emotion: &models.EmotionBlock{Primary: models.EmotionSurprise},
	})
	quiet := buildShard(t, "quiet", nil, models.FeatureSet{Intensity: floatPtr(0.2)}, models.AnalysisDocument{
		Emotion: &models.EmotionBlock{Primary: models.EmotionCalm},
	})

	moments := buildKeyMoments(buildViews([]models.Shard{loud, quiet}))

	require.Len(t, moments, 1)
	assert.Equal(t, "loud", moments[0].ShardID)
}
