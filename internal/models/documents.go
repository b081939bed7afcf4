package models

// Emotion labels produced by the local analyzer. Spanish labels are
// the canonical vocabulary; summaries map them to English on the way
// out (see the curation service).
const (
	EmotionNeutral   = "neutro"
	EmotionJoy       = "alegria"
	EmotionSadness   = "tristeza"
	EmotionAnger     = "enojo"
	EmotionFear      = "miedo"
	EmotionAnxiety   = "ansiedad"
	EmotionFatigue   = "cansancio"
	EmotionCalm      = "calma"
	EmotionSurprise  = "sorpresa"
	EmotionGratitude = "gratitud"
)

// Valence values
const (
	ValencePositive = "positivo"
	ValenceNegative = "negativo"
	ValenceNeutral  = "neutral"
)

// Activation (arousal) bands
const (
	ActivationLow    = "bajo"
	ActivationMedium = "medio"
	ActivationHigh   = "alto"
)

// Analysis provenance
const (
	AnalysisSourceLocal = "local"
	AnalysisSourceCloud = "cloud"
	AnalysisModeAuto    = "automatic"
	AnalysisModeManual  = "manual"
)

// Semantic moment types
const (
	MomentTypeCheckIn   = "check-in"
	MomentTypeVent      = "desahogo"
	MomentTypeCrisis    = "crisis"
	MomentTypeMemory    = "recuerdo"
	MomentTypeGoal      = "meta"
	MomentTypeGratitude = "agradecimiento"
	MomentTypeOther     = "otro"
)

// valenceToEnglish maps stored valence labels to the display
// vocabulary. Identity entries keep already-translated labels intact.
var valenceToEnglish = map[string]string{
	ValencePositive: "positive",
	ValenceNegative: "negative",
	ValenceNeutral:  "neutral",
	EmotionNeutral:  "neutral",
	"positive":      "positive",
	"negative":      "negative",
}

var activationToEnglish = map[string]string{
	ActivationLow:    "low",
	ActivationMedium: "medium",
	ActivationHigh:   "high",
	"low":            "low",
	"medium":         "medium",
	"high":           "high",
}

// TranslateValence maps a stored valence label to the English display
// vocabulary. Unrecognized labels report false so callers can drop
// them rather than surface raw values.
func TranslateValence(label string) (string, bool) {
	en, ok := valenceToEnglish[label]
	return en, ok
}

// TranslateActivation maps a stored activation label to the English
// display vocabulary
func TranslateActivation(label string) (string, bool) {
	en, ok := activationToEnglish[label]
	return en, ok
}

// MetaDocument is the shard's recording metadata. It travels as a JSON
// column so fields written by older clients are preserved on rewrite.
type MetaDocument struct {
	CreatedAt       string   `json:"createdAt,omitempty"`
	InputSource     string   `json:"inputSource,omitempty"`
	Intensity       *float64 `json:"intensity,omitempty"`
	Status          string   `json:"status,omitempty"`
	PublishState    string   `json:"publishState,omitempty"`
	AudioPath       string   `json:"audioPath,omitempty"`
	AudioFormat     string   `json:"audioFormat,omitempty"`
	AnalysisSource  string   `json:"analysisSource,omitempty"`
	AnalysisMode    string   `json:"analysisMode,omitempty"`
	AnalysisVersion string   `json:"analysisVersion,omitempty"`
	AnalysisAt      string   `json:"analysisAt,omitempty"`
}

// FeatureSet holds the signal features computed from the raw PCM.
// Values use the int16 sample scale except intensity, which is
// normalized to 0..1.
type FeatureSet struct {
	RMS              *float64 `json:"rms,omitempty"`
	Peak             *float64 `json:"peak,omitempty"`
	ZCR              *float64 `json:"zcr,omitempty"`
	SpectralCentroid *float64 `json:"spectralCentroid,omitempty"`
	Duration         *float64 `json:"duration,omitempty"`
	Intensity        *float64 `json:"intensity,omitempty"`
	SampleRate       *float64 `json:"sampleRate,omitempty"`
	Channels         *float64 `json:"channels,omitempty"`
}

// EmotionLabelScore is one entry of the raw classifier output
type EmotionLabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Prosody flag values
const (
	ProsodyNone    = "none"
	ProsodyLight   = "light"
	ProsodyPresent = "present"
)

// ProsodyFlags marks salient delivery traits detected in the signal
type ProsodyFlags struct {
	Laughter string `json:"laughter,omitempty"`
	Crying   string `json:"crying,omitempty"`
	Shouting string `json:"shouting,omitempty"`
	Sighing  string `json:"sighing,omitempty"`
	Tension  string `json:"tension,omitempty"`
}

// EmotionBlock is the structured emotion result inside an analysis
// document (the v2 shape; legacy documents carry the same values as
// top-level primaryEmotion/valence/arousal fields instead).
type EmotionBlock struct {
	Primary      string              `json:"primary,omitempty"`
	Valence      string              `json:"valence,omitempty"`
	Activation   string              `json:"activation,omitempty"`
	Intensity    *float64            `json:"intensity,omitempty"`
	Distribution map[string]float64  `json:"distribution,omitempty"`
	Labels       []EmotionLabelScore `json:"labels,omitempty"`
	Prosody      *ProsodyFlags       `json:"prosody,omitempty"`
	Headline     *string             `json:"headline,omitempty"`
	Explanation  *string             `json:"explanation,omitempty"`
}

// SemanticFlags carries follow-up markers derived from the transcript
type SemanticFlags struct {
	NeedsFollowup  bool `json:"needsFollowup"`
	PossibleCrisis bool `json:"possibleCrisis"`
}

// SemanticBlock is the structured semantic result inside an analysis
// document
type SemanticBlock struct {
	Summary    string         `json:"summary"`
	Topics     []string       `json:"topics,omitempty"`
	MomentType string         `json:"momentType,omitempty"`
	Flags      *SemanticFlags `json:"flags,omitempty"`
}

// UserEdits is the user-owned block of the analysis document. Machine
// rewrites must never lose it.
type UserEdits struct {
	Status             string   `json:"status,omitempty"`
	UserTags           []string `json:"userTags,omitempty"`
	UserNotes          string   `json:"userNotes,omitempty"`
	TranscriptOverride string   `json:"transcriptOverride,omitempty"`
}

// AnalysisDocument is the evolving result document attached to a
// shard. Machine blocks (transcript, emotion, semantic) are replaced
// wholesale on each analysis pass; the user block and the lifecycle
// flags are carried forward by MergeAnalysis when a new pass omits
// them. Pointer fields distinguish "absent" from a zero value, which
// is what the carry-forward rule keys on.
type AnalysisDocument struct {
	Transcript              *string  `json:"transcript,omitempty"`
	TranscriptLanguage      *string  `json:"transcriptLanguage,omitempty"`
	TranscriptionConfidence *float64 `json:"transcriptionConfidence,omitempty"`

	Emotion  *EmotionBlock  `json:"emotion,omitempty"`
	Semantic *SemanticBlock `json:"semantic,omitempty"`
	User     *UserEdits     `json:"user,omitempty"`

	PublishState  *string `json:"publishState,omitempty"`
	Deleted       *bool   `json:"deleted,omitempty"`
	DeletedReason *string `json:"deletedReason,omitempty"`
	DeletedAt     *string `json:"deletedAt,omitempty"`

	// Legacy top-level fields written by the v1 analyzer. Readiness
	// and curation fall back to these when the emotion block is absent.
	PrimaryEmotion *string  `json:"primaryEmotion,omitempty"`
	Valence        *string  `json:"valence,omitempty"`
	Arousal        *string  `json:"arousal,omitempty"`
	Intensity      *float64 `json:"intensity,omitempty"`

	AnalysisSource  string `json:"analysisSource,omitempty"`
	AnalysisMode    string `json:"analysisMode,omitempty"`
	AnalysisVersion string `json:"analysisVersion,omitempty"`
	AnalysisAt      string `json:"analysisAt,omitempty"`
}

// IsDeleted reports whether the document carries the soft-delete flag
func (d AnalysisDocument) IsDeleted() bool {
	return d.Deleted != nil && *d.Deleted
}

// PrimaryLabel returns the primary emotion, preferring the structured
// block over the legacy top-level field
func (d AnalysisDocument) PrimaryLabel() string {
	if d.Emotion != nil && d.Emotion.Primary != "" {
		return d.Emotion.Primary
	}
	if d.PrimaryEmotion != nil {
		return *d.PrimaryEmotion
	}
	return ""
}

// ValenceLabel returns the valence, preferring the structured block
func (d AnalysisDocument) ValenceLabel() string {
	if d.Emotion != nil && d.Emotion.Valence != "" {
		return d.Emotion.Valence
	}
	if d.Valence != nil {
		return *d.Valence
	}
	return ""
}

// ActivationLabel returns the activation band, preferring the
// structured block
func (d AnalysisDocument) ActivationLabel() string {
	if d.Emotion != nil && d.Emotion.Activation != "" {
		return d.Emotion.Activation
	}
	if d.Arousal != nil {
		return *d.Arousal
	}
	return ""
}

// EmotionIntensity returns the 0..1 intensity, preferring the
// structured block
func (d AnalysisDocument) EmotionIntensity() *float64 {
	if d.Emotion != nil && d.Emotion.Intensity != nil {
		return d.Emotion.Intensity
	}
	return d.Intensity
}

// TranscriptText returns the user's override when present, else the
// machine transcript. Display surfaces always prefer what the user
// corrected by hand.
func (d AnalysisDocument) TranscriptText() string {
	if d.User != nil && d.User.TranscriptOverride != "" {
		return d.User.TranscriptOverride
	}
	if d.Transcript != nil {
		return *d.Transcript
	}
	return ""
}

// MergeAnalysis applies the carry-forward rule for analysis rewrites:
// the new document wins field by field, but the user block and each
// lifecycle flag (publishState, deleted, deletedReason, deletedAt)
// survive when the new document does not set them. Every write path
// that replaces a shard's analysis goes through here so a background
// enrichment pass can never erase a review or a soft delete.
func MergeAnalysis(prev, next AnalysisDocument) AnalysisDocument {
	merged := next

	if merged.User == nil && prev.User != nil {
		userCopy := *prev.User
		merged.User = &userCopy
	}
	if merged.PublishState == nil && prev.PublishState != nil {
		merged.PublishState = prev.PublishState
	}
	if merged.Deleted == nil && prev.Deleted != nil {
		merged.Deleted = prev.Deleted
	}
	if merged.DeletedReason == nil && prev.DeletedReason != nil {
		merged.DeletedReason = prev.DeletedReason
	}
	if merged.DeletedAt == nil && prev.DeletedAt != nil {
		merged.DeletedAt = prev.DeletedAt
	}

	return merged
}
