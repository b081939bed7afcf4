package curation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalog/diary-api/internal/models"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

// buildShard assembles an in-memory shard with encoded documents
func buildShard(t *testing.T, id string, start *float64, features models.FeatureSet, analysis models.AnalysisDocument) models.Shard {
	t.Helper()

	shard := models.Shard{ID: id, StartTime: start}
	require.NoError(t, shard.SetFeatureDoc(features))
	require.NoError(t, shard.SetAnalysisDoc(analysis))
	return shard
}

// audibleFeatures passes the silence heuristic with room to spare
func audibleFeatures() models.FeatureSet {
	return models.FeatureSet{
		RMS:      floatPtr(1500),
		Peak:     floatPtr(8000),
		Duration: floatPtr(5.0),
	}
}

func TestFilterCandidatesExclusions(t *testing.T) {
	tests := []struct {
		name     string
		features models.FeatureSet
		analysis models.AnalysisDocument
		kept     bool
		diag     FilterDiagnostics
	}{
		{
			name:     "audible shard survives",
			features: audibleFeatures(),
			kept:     true,
		},
		{
			name:     "deleted shard excluded",
			features: audibleFeatures(),
			analysis: models.AnalysisDocument{Deleted: boolPtr(true)},
			diag:     FilterDiagnostics{Deleted: 1},
		},
		{
			name: "too short excluded",
			features: models.FeatureSet{
				RMS:      floatPtr(1500),
				Peak:     floatPtr(8000),
				Duration: floatPtr(0.3),
			},
			diag: FilterDiagnostics{TooShort: 1},
		},
		{
			name: "low rms reads as silence even with strong peak",
			features: models.FeatureSet{
				RMS:       floatPtr(250),
				Peak:      floatPtr(800),
				Intensity: floatPtr(0.9),
			},
			diag: FilterDiagnostics{Silence: 1},
		},
		{
			name: "low peak reads as silence even with strong rms",
			features: models.FeatureSet{
				RMS:  floatPtr(1500),
				Peak: floatPtr(400),
			},
			diag: FilterDiagnostics{Silence: 1},
		},
		{
			name:     "missing features read as silence",
			features: models.FeatureSet{},
			diag:     FilterDiagnostics{Silence: 1},
		},
		{
			name: "missing duration passes the length filter",
			features: models.FeatureSet{
				RMS:  floatPtr(1500),
				Peak: floatPtr(8000),
			},
			kept: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shard := buildShard(t, "shard-1", nil, tt.features, tt.analysis)
			candidates, diag := filterCandidates(buildViews([]models.Shard{shard}))

			if tt.kept {
				assert.Len(t, candidates, 1)
			} else {
				assert.Empty(t, candidates)
			}
			assert.Equal(t, tt.diag, diag)
		})
	}
}

func TestScoreCandidate(t *testing.T) {
	tests := []struct {
		name     string
		features models.FeatureSet
		analysis models.AnalysisDocument
		want     float64
	}{
		{
			name:     "base from intensity",
			features: models.FeatureSet{Intensity: floatPtr(0.8)},
			want:     0.8,
		},
		{
			name:     "base falls back to rms over 1000",
			features: models.FeatureSet{RMS: floatPtr(1500)},
			want:     1.5,
		},
		{
			name:     "summary bonus",
			features: models.FeatureSet{Intensity: floatPtr(0.5)},
			analysis: models.AnalysisDocument{
				Semantic: &models.SemanticBlock{Summary: "hablo del trabajo"},
			},
			want: 50.5,
		},
		{
			name:     "non-neutral emotion bonus",
			features: models.FeatureSet{Intensity: floatPtr(0.5)},
			analysis: models.AnalysisDocument{
				Emotion: &models.EmotionBlock{Primary: models.EmotionJoy},
			},
			want: 25.5,
		},
		{
			name:     "neutro earns no emotion bonus",
			features: models.FeatureSet{Intensity: floatPtr(0.5)},
			analysis: models.AnalysisDocument{
				Emotion: &models.EmotionBlock{Primary: models.EmotionNeutral},
			},
			want: 0.5,
		},
		{
			name:     "legacy primaryEmotion earns no bonus",
			features: models.FeatureSet{Intensity: floatPtr(0.5)},
			analysis: models.AnalysisDocument{PrimaryEmotion: strPtr(models.EmotionJoy)},
			want:     0.5,
		},
		{
			name:     "overlong penalty",
			features: models.FeatureSet{Intensity: floatPtr(0.5), Duration: floatPtr(90)},
			want:     -9.5,
		},
		{
			name:     "very short penalty",
			features: models.FeatureSet{Intensity: floatPtr(0.5), Duration: floatPtr(0.7)},
			want:     -4.5,
		},
		{
			name:     "missing duration earns no penalty",
			features: models.FeatureSet{Intensity: floatPtr(0.5)},
			want:     0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shard := buildShard(t, "shard-1", nil, tt.features, tt.analysis)
			views := buildViews([]models.Shard{shard})
			got := scoreCandidate(candidate{View: views[0]})
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestSelectTopReordersChronologically(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// scores: late 75.9, early 50.5, untimed 25.3; early beats the cut
	// anyway, so the output must be timeline order with the untimed
	// shard excluded
	late := buildShard(t, "late", floatPtr(30), models.FeatureSet{RMS: floatPtr(1500), Peak: floatPtr(8000), Intensity: floatPtr(0.9)}, models.AnalysisDocument{
		Semantic: &models.SemanticBlock{Summary: "resumen"},
		Emotion:  &models.EmotionBlock{Primary: models.EmotionAnger},
	})
	early := buildShard(t, "early", floatPtr(5), models.FeatureSet{RMS: floatPtr(1500), Peak: floatPtr(8000), Intensity: floatPtr(0.5)}, models.AnalysisDocument{
		Semantic: &models.SemanticBlock{Summary: "resumen"},
	})
	untimed := buildShard(t, "untimed", nil, models.FeatureSet{RMS: floatPtr(1500), Peak: floatPtr(8000), Intensity: floatPtr(0.3)}, models.AnalysisDocument{
		Emotion: &models.EmotionBlock{Primary: models.EmotionSadness},
	})
	late.CreatedAt = base
	early.CreatedAt = base.Add(time.Minute)
	untimed.CreatedAt = base.Add(2 * time.Minute)

	candidates, diag := filterCandidates(buildViews([]models.Shard{late, early, untimed}))
	require.Len(t, candidates, 3)
	assert.Equal(t, FilterDiagnostics{}, diag)

	selected := selectTop(candidates, 2)
	require.Len(t, selected, 2)
	assert.Equal(t, "early", selected[0].ID)
	assert.Equal(t, "late", selected[1].ID)
}

func TestSelectTopNullStartTimesSortLast(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	timed := buildShard(t, "timed", floatPtr(40), audibleFeatures(), models.AnalysisDocument{})
	untimed := buildShard(t, "untimed", nil, audibleFeatures(), models.AnalysisDocument{})
	untimed.CreatedAt = base
	timed.CreatedAt = base.Add(time.Minute)

	candidates, _ := filterCandidates(buildViews([]models.Shard{untimed, timed}))
	selected := selectTop(candidates, 10)

	require.Len(t, selected, 2)
	assert.Equal(t, "timed", selected[0].ID)
	assert.Equal(t, "untimed", selected[1].ID)
}

func TestSelectTopClampsNegativeMaxShards(t *testing.T) {
	shard := buildShard(t, "shard-1", floatPtr(0), audibleFeatures(), models.AnalysisDocument{})
	candidates, _ := filterCandidates(buildViews([]models.Shard{shard}))

	assert.Empty(t, selectTop(candidates, -3))
	assert.Empty(t, selectTop(candidates, 0))
}

func TestSelectTopDeterministic(t *testing.T) {
	shards := []models.Shard{
		buildShard(t, "a", floatPtr(0), audibleFeatures(), models.AnalysisDocument{}),
		buildShard(t, "b", floatPtr(10), audibleFeatures(), models.AnalysisDocument{}),
		buildShard(t, "c", floatPtr(20), audibleFeatures(), models.AnalysisDocument{}),
	}

	first, _ := filterCandidates(buildViews(shards))
	second, _ := filterCandidates(buildViews(shards))

	one := selectTop(first, 2)
	two := selectTop(second, 2)

	require.Equal(t, len(one), len(two))
	for i := range one {
		assert.Equal(t, one[i].ID, two[i].ID)
	}
}
