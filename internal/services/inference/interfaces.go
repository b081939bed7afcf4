package inference

import (
	"context"

	"github.com/vocalog/diary-api/internal/models"
)

// Transcription is the speech-to-text result for one audio file
type Transcription struct {
	Text       string  `json:"text"`
	Language   string  `json:"language,omitempty"`
	Confidence float64 `json:"confidence"`
}

// EmotionResult is the raw classifier output before it is folded into
// an analysis document. Labels stay in the Spanish vocabulary; display
// translation happens downstream.
type EmotionResult struct {
	Primary string                     `json:"primary"`
	Labels  []models.EmotionLabelScore `json:"labels"`
	Valence string                     `json:"valence"`
	Arousal string                     `json:"arousal"`
	Prosody *models.ProsodyFlags       `json:"prosody,omitempty"`
}

// Transcriber converts recorded audio to text
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (Transcription, error)
}

// EmotionAnalyzer classifies the emotional tone of a clip
type EmotionAnalyzer interface {
	AnalyzeEmotion(ctx context.Context, audioPath, transcript string, intensity, duration *float64) (EmotionResult, error)
}

// SemanticAnalyzer summarizes what the clip is about
type SemanticAnalyzer interface {
	AnalyzeSemantic(ctx context.Context, transcript, language string, features models.FeatureSet) (models.SemanticBlock, error)
}

// NeutralTranscription is the safe fallback when no transcriber is
// available or one fails
func NeutralTranscription() Transcription {
	return Transcription{}
}

// NeutralEmotion is the safe fallback emotion result
func NeutralEmotion() EmotionResult {
	return EmotionResult{
		Primary: models.EmotionNeutral,
		Valence: models.ValenceNeutral,
		Arousal: models.ActivationMedium,
		Labels: []models.EmotionLabelScore{
			{Label: models.EmotionNeutral, Score: 1.0},
		},
	}
}

// NeutralSemantic is the safe fallback semantic block
func NeutralSemantic() models.SemanticBlock {
	return models.SemanticBlock{
		Summary:    "",
		Topics:     []string{},
		MomentType: models.MomentTypeOther,
		Flags:      &models.SemanticFlags{},
	}
}
