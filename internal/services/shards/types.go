package shards

import (
	"github.com/vocalog/diary-api/internal/models"
	"github.com/vocalog/diary-api/pkg/wav"
)

// CreateShardParams carries everything the capture flow knows about a
// new recording. ShardID is pre-generated by the caller because the
// audio file is written to its shard-named path before the row exists;
// leave it empty to let the model hook generate one.
type CreateShardParams struct {
	ShardID   string
	EpisodeID string
	StartTime float64
	EndTime   float64
	Source    string
	AudioPath string
	Features  models.FeatureSet
}

// UpdateShardRequest is the user-edit patch applied to
// analysis.user. Nil fields are left untouched; only userTags uses
// slice presence since JSON has no nil/absent distinction for arrays.
type UpdateShardRequest struct {
	Status             *string  `json:"status,omitempty"`
	UserTags           []string `json:"userTags,omitempty"`
	UserNotes          *string  `json:"userNotes,omitempty"`
	TranscriptOverride *string  `json:"transcriptOverride,omitempty"`
}

// AnalysisUpdate is what an analysis pass wants to persist: the new
// analysis document (merged on write against the stored one) and an
// optional full meta replacement.
type AnalysisUpdate struct {
	Analysis models.AnalysisDocument
	Meta     *models.MetaDocument
}

// PublishResult pairs the feed entry with the shard state after a
// publish
type PublishResult struct {
	Entry *models.PublishedShard `json:"published"`
	Shard *models.Shard          `json:"shard"`
}

// FeatureSetFromAudio converts computed signal features into the
// persisted document shape
func FeatureSetFromAudio(f wav.Features) models.FeatureSet {
	rms := f.RMS
	peak := f.Peak
	zcr := f.ZCR
	centroid := f.SpectralCentroid
	duration := f.Duration
	intensity := f.Intensity
	sampleRate := float64(f.SampleRate)
	channels := float64(f.Channels)
	return models.FeatureSet{
		RMS:              &rms,
		Peak:             &peak,
		ZCR:              &zcr,
		SpectralCentroid: &centroid,
		Duration:         &duration,
		Intensity:        &intensity,
		SampleRate:       &sampleRate,
		Channels:         &channels,
	}
}
