package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }

func TestMergeAnalysisCarriesUserBlock(t *testing.T) {
	prev := AnalysisDocument{
		Transcript: strPtr("old transcript"),
		User: &UserEdits{
			Status:    ShardStatusReviewed,
			UserNotes: "keep me",
		},
	}
	next := AnalysisDocument{
		Transcript: strPtr("new transcript"),
		Emotion:    &EmotionBlock{Primary: EmotionJoy, Valence: ValencePositive},
	}

	merged := MergeAnalysis(prev, next)

	assert.Equal(t, "new transcript", *merged.Transcript)
	assert.NotNil(t, merged.User)
	assert.Equal(t, ShardStatusReviewed, merged.User.Status)
	assert.Equal(t, "keep me", merged.User.UserNotes)
	assert.Equal(t, EmotionJoy, merged.Emotion.Primary)
}

func TestMergeAnalysisNewUserBlockWins(t *testing.T) {
	prev := AnalysisDocument{
		User: &UserEdits{Status: ShardStatusRaw, UserNotes: "stale"},
	}
	next := AnalysisDocument{
		User: &UserEdits{Status: ShardStatusReadyToPublish},
	}

	merged := MergeAnalysis(prev, next)

	assert.Equal(t, ShardStatusReadyToPublish, merged.User.Status)
	assert.Empty(t, merged.User.UserNotes)
}

func TestMergeAnalysisCarriesLifecycleFlagsIndividually(t *testing.T) {
	prev := AnalysisDocument{
		PublishState:  strPtr(PublishStatePublished),
		Deleted:       boolPtr(true),
		DeletedReason: strPtr("user_deleted"),
		DeletedAt:     strPtr("2026-08-01T10:00:00Z"),
	}
	next := AnalysisDocument{
		PublishState: strPtr(PublishStateReady),
	}

	merged := MergeAnalysis(prev, next)

	// The flag present in the new document wins; the absent ones are
	// copied forward one by one.
	assert.Equal(t, PublishStateReady, *merged.PublishState)
	assert.True(t, merged.IsDeleted())
	assert.Equal(t, "user_deleted", *merged.DeletedReason)
	assert.Equal(t, "2026-08-01T10:00:00Z", *merged.DeletedAt)
}

func TestMergeAnalysisIdempotent(t *testing.T) {
	prev := AnalysisDocument{
		User:          &UserEdits{Status: ShardStatusReviewed, UserTags: []string{"work"}},
		PublishState:  strPtr(PublishStatePublished),
		Deleted:       boolPtr(false),
		DeletedReason: strPtr(""),
	}
	next := AnalysisDocument{
		Transcript: strPtr("same doc"),
		Emotion:    &EmotionBlock{Primary: EmotionCalm, Valence: ValenceNeutral},
	}

	once := MergeAnalysis(prev, next)
	twice := MergeAnalysis(once, next)

	assert.Equal(t, once, twice)
}

func TestMergeAnalysisEmptyPrevious(t *testing.T) {
	next := AnalysisDocument{
		Transcript: strPtr("first pass"),
	}

	merged := MergeAnalysis(AnalysisDocument{}, next)

	assert.Equal(t, next, merged)
	assert.Nil(t, merged.User)
	assert.Nil(t, merged.Deleted)
}

func TestAnalysisDocumentLabelFallbacks(t *testing.T) {
	structured := AnalysisDocument{
		Emotion: &EmotionBlock{
			Primary:    EmotionAnger,
			Valence:    ValenceNegative,
			Activation: ActivationHigh,
			Intensity:  floatPtr(0.9),
		},
		PrimaryEmotion: strPtr(EmotionNeutral),
		Valence:        strPtr(ValenceNeutral),
		Arousal:        strPtr(ActivationLow),
		Intensity:      floatPtr(0.1),
	}
	assert.Equal(t, EmotionAnger, structured.PrimaryLabel())
	assert.Equal(t, ValenceNegative, structured.ValenceLabel())
	assert.Equal(t, ActivationHigh, structured.ActivationLabel())
	assert.Equal(t, 0.9, *structured.EmotionIntensity())

	legacy := AnalysisDocument{
		PrimaryEmotion: strPtr(EmotionSadness),
		Valence:        strPtr(ValenceNegative),
		Arousal:        strPtr(ActivationLow),
		Intensity:      floatPtr(0.3),
	}
	assert.Equal(t, EmotionSadness, legacy.PrimaryLabel())
	assert.Equal(t, ValenceNegative, legacy.ValenceLabel())
	assert.Equal(t, ActivationLow, legacy.ActivationLabel())
	assert.Equal(t, 0.3, *legacy.EmotionIntensity())

	empty := AnalysisDocument{}
	assert.Equal(t, "", empty.PrimaryLabel())
	assert.Nil(t, empty.EmotionIntensity())
}

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		score float64
		label string
	}{
		{0, "Eco"},
		{99.9, "Eco"},
		{100, "Voz"},
		{249, "Voz"},
		{250, "Coro"},
		{499, "Coro"},
		{500, "Faro"},
		{10000, "Faro"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.label, LevelForScore(tt.score), "score %v", tt.score)
	}
}

func TestLevelProgress(t *testing.T) {
	assert.Equal(t, 0.0, LevelProgress(0))
	assert.Equal(t, 50.0, LevelProgress(50))
	assert.Equal(t, 0.0, LevelProgress(100))
	assert.Equal(t, 50.0, LevelProgress(175))
	assert.Equal(t, 100.0, LevelProgress(500))
	assert.Equal(t, 100.0, LevelProgress(2000))
}
