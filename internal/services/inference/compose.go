package inference

import (
	"strings"
	"time"

	"github.com/vocalog/diary-api/internal/models"
)

// ComposeParams collects the adapter outputs of one analysis pass
// over a shard.
type ComposeParams struct {
	Transcription Transcription
	Emotion       EmotionResult
	Semantic      models.SemanticBlock
	Features      models.FeatureSet
	Source        string
	Version       string
	At            time.Time
}

// ComposeAnalysis assembles the machine blocks of an analysis
// document. The emotion block carries the translated valence and
// activation vocabulary; the legacy top-level fields keep the raw
// classifier labels so older readers stay consistent.
func ComposeAnalysis(p ComposeParams) models.AnalysisDocument {
	doc := models.AnalysisDocument{
		TranscriptionConfidence: &p.Transcription.Confidence,
		AnalysisSource:          p.Source,
		AnalysisMode:            models.AnalysisModeAuto,
		AnalysisVersion:         p.Version,
		AnalysisAt:              p.At.UTC().Format(time.RFC3339),
	}
	if doc.AnalysisSource == "" {
		doc.AnalysisSource = models.AnalysisSourceLocal
	}
	if p.Transcription.Text != "" {
		text := p.Transcription.Text
		doc.Transcript = &text
	}
	if p.Transcription.Language != "" {
		language := p.Transcription.Language
		doc.TranscriptLanguage = &language
	}

	valenceEN, _ := models.TranslateValence(p.Emotion.Valence)
	activationEN, _ := models.TranslateActivation(p.Emotion.Arousal)

	emotion := &models.EmotionBlock{
		Primary:      p.Emotion.Primary,
		Valence:      valenceEN,
		Activation:   activationEN,
		Intensity:    p.Features.Intensity,
		Distribution: distributionFromLabels(p.Emotion.Labels),
		Labels:       p.Emotion.Labels,
		Prosody:      p.Emotion.Prosody,
	}
	if headline := EmotionHeadline(p.Emotion.Primary, activationEN, p.Features.Intensity); headline != "" {
		emotion.Headline = &headline
	}
	doc.Emotion = emotion

	semantic := p.Semantic
	doc.Semantic = &semantic

	if p.Emotion.Primary != "" {
		primary := p.Emotion.Primary
		doc.PrimaryEmotion = &primary
	}
	if p.Emotion.Valence != "" {
		valence := p.Emotion.Valence
		doc.Valence = &valence
	}
	if p.Emotion.Arousal != "" {
		arousal := p.Emotion.Arousal
		doc.Arousal = &arousal
	}
	return doc
}

// EmotionHeadline renders the one-line caption shown next to an
// emotion snapshot. Activation uses the translated vocabulary; peak
// is the clip's normalized intensity.
func EmotionHeadline(primary, activation string, peak *float64) string {
	if primary == "" {
		return ""
	}
	switch strings.ToLower(activation) {
	case "high":
		switch strings.ToLower(primary) {
		case models.EmotionAnger, "ira":
			return "Alza de voz."
		case models.EmotionFear, models.EmotionAnxiety:
			return "Tensión evidente."
		}
		return "Emoción intensa."
	case "low":
		return "Tono contenido."
	case "medium":
		return "Emoción moderada."
	}
	if peak != nil && *peak >= shoutingFrom {
		return "Alza de voz."
	}
	return ""
}

// distributionFromLabels normalizes raw classifier scores into a
// probability map. Entries without a label or with a negative score
// are skipped. A duplicate label keeps the last score seen while
// every occurrence still counts toward the normalizing total.
func distributionFromLabels(labels []models.EmotionLabelScore) map[string]float64 {
	distribution := map[string]float64{}
	total := 0.0
	for _, entry := range labels {
		if entry.Label == "" || entry.Score < 0 {
			continue
		}
		distribution[entry.Label] = entry.Score
		total += entry.Score
	}
	if total > 0 {
		for label, score := range distribution {
			distribution[label] = score / total
		}
	}
	return distribution
}
