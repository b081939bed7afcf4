package inference

import (
	"context"
	"strings"

	"github.com/vocalog/diary-api/internal/models"
)

// Thresholds for the heuristic emotion classifier
const (
	arousalLowBelow  = 0.25
	arousalHighFrom  = 0.7
	shoutingFrom     = 0.75
	fatigueDuration  = 6.0
	fatigueIntensity = 0.2
)

var (
	positiveKeywords = []string{"gracias", "bien", "feliz", "genial"}
	negativeKeywords = []string{"no", "mal", "odio", "enojo", "enojado"}
)

// NullTranscriber stands in when no speech-to-text backend is
// configured. It always returns an empty transcription.
type NullTranscriber struct{}

var _ Transcriber = (*NullTranscriber)(nil)

func NewNullTranscriber() *NullTranscriber {
	return &NullTranscriber{}
}

func (t *NullTranscriber) Transcribe(ctx context.Context, audioPath string) (Transcription, error) {
	return NeutralTranscription(), nil
}

// LocalEmotionAnalyzer is a deterministic heuristic classifier. It
// keys on transcript keywords and the clip's acoustic intensity, so
// the same inputs always produce the same result.
type LocalEmotionAnalyzer struct{}

var _ EmotionAnalyzer = (*LocalEmotionAnalyzer)(nil)

func NewLocalEmotionAnalyzer() *LocalEmotionAnalyzer {
	return &LocalEmotionAnalyzer{}
}

func (a *LocalEmotionAnalyzer) AnalyzeEmotion(ctx context.Context, audioPath, transcript string, intensity, duration *float64) (EmotionResult, error) {
	text := strings.ToLower(transcript)

	shouting := intensity != nil && *intensity >= shoutingFrom
	tired := duration != nil && *duration >= fatigueDuration && floatOrZero(intensity) < fatigueIntensity

	var primary, valence string
	switch {
	case containsAny(text, positiveKeywords):
		primary = models.EmotionJoy
		valence = models.ValencePositive
	case containsAny(text, negativeKeywords):
		primary = models.EmotionAnger
		valence = models.ValenceNegative
	case tired:
		primary = models.EmotionFatigue
		valence = models.ValenceNeutral
	default:
		primary = models.EmotionNeutral
		valence = models.ValenceNeutral
	}

	var arousal string
	switch {
	case intensity == nil:
		arousal = models.ActivationMedium
	case *intensity < arousalLowBelow:
		arousal = models.ActivationLow
	case *intensity < arousalHighFrom:
		arousal = models.ActivationMedium
	default:
		arousal = models.ActivationHigh
	}

	neutralScore := 0.4
	if primary == models.EmotionNeutral {
		neutralScore = 0.6
	}

	prosody := &models.ProsodyFlags{
		Laughter: models.ProsodyNone,
		Crying:   models.ProsodyNone,
		Shouting: models.ProsodyNone,
		Sighing:  models.ProsodyNone,
		Tension:  models.ProsodyNone,
	}
	if shouting {
		prosody.Shouting = models.ProsodyPresent
		prosody.Tension = models.ProsodyLight
	}

	return EmotionResult{
		Primary: primary,
		Valence: valence,
		Arousal: arousal,
		Labels: []models.EmotionLabelScore{
			{Label: primary, Score: 0.6},
			{Label: models.EmotionNeutral, Score: neutralScore},
		},
		Prosody: prosody,
	}, nil
}

// StaticSemanticAnalyzer always returns the neutral semantic block.
// It serves when no language-model key is configured.
type StaticSemanticAnalyzer struct{}

var _ SemanticAnalyzer = (*StaticSemanticAnalyzer)(nil)

func NewStaticSemanticAnalyzer() *StaticSemanticAnalyzer {
	return &StaticSemanticAnalyzer{}
}

func (a *StaticSemanticAnalyzer) AnalyzeSemantic(ctx context.Context, transcript, language string, features models.FeatureSet) (models.SemanticBlock, error) {
	return NeutralSemantic(), nil
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
