package enrichment

import (
	"context"
	"log"
	"time"

	"github.com/vocalog/diary-api/internal/models"
	"github.com/vocalog/diary-api/internal/services/inference"
	"github.com/vocalog/diary-api/internal/services/shards"
)

// Pipeline runs the transcribe, emotion and semantic adapters over a
// shard and persists the merged analysis document. Adapter failures
// never abort the pass: the failing stage is replaced with its
// neutral result so a flaky provider still yields a usable document.
type Pipeline struct {
	store       ShardStore
	transcriber inference.Transcriber
	emotion     inference.EmotionAnalyzer
	semantic    inference.SemanticAnalyzer
	source      string
	version     string
}

var _ Enricher = (*Pipeline)(nil)

// PipelineOption is a functional option for configuring the pipeline
type PipelineOption func(*Pipeline)

// WithSource overrides the provenance stamped into analysis documents
func WithSource(source string) PipelineOption {
	return func(p *Pipeline) {
		if source != "" {
			p.source = source
		}
	}
}

// WithVersion overrides the analyzer version stamp
func WithVersion(version string) PipelineOption {
	return func(p *Pipeline) {
		if version != "" {
			p.version = version
		}
	}
}

func NewPipeline(store ShardStore, transcriber inference.Transcriber, emotion inference.EmotionAnalyzer, semantic inference.SemanticAnalyzer, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		store:       store,
		transcriber: transcriber,
		emotion:     emotion,
		semantic:    semantic,
		source:      models.AnalysisSourceLocal,
		version:     shards.DefaultAnalysisVersion,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Enrich runs one analysis pass. Only load and persistence problems
// surface as errors; adapter failures are logged and neutralized.
func (p *Pipeline) Enrich(ctx context.Context, task Task) error {
	shard, err := p.store.GetShard(ctx, task.ShardID)
	if err != nil {
		return err
	}

	features, err := shard.FeatureDoc()
	if err != nil {
		log.Printf("[WARN] Enriching shard %s without features: %v", task.ShardID, err)
		features = models.FeatureSet{}
	}
	meta, err := shard.MetaDoc()
	if err != nil {
		log.Printf("[WARN] Enriching shard %s without meta: %v", task.ShardID, err)
		meta = models.MetaDocument{}
	}

	audioPath := task.AudioPath
	if audioPath == "" {
		audioPath = meta.AudioPath
	}

	transcription, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		log.Printf("[WARN] Transcription failed for shard %s: %v", task.ShardID, err)
		transcription = inference.NeutralTranscription()
	}

	emotion, err := p.emotion.AnalyzeEmotion(ctx, audioPath, transcription.Text, features.Intensity, features.Duration)
	if err != nil {
		log.Printf("[WARN] Emotion analysis failed for shard %s: %v", task.ShardID, err)
		emotion = inference.NeutralEmotion()
	}

	semantic, err := p.semantic.AnalyzeSemantic(ctx, transcription.Text, transcription.Language, features)
	if err != nil {
		log.Printf("[WARN] Semantic analysis failed for shard %s: %v", task.ShardID, err)
		semantic = inference.NeutralSemantic()
	}

	now := time.Now().UTC()
	doc := inference.ComposeAnalysis(inference.ComposeParams{
		Transcription: transcription,
		Emotion:       emotion,
		Semantic:      semantic,
		Features:      features,
		Source:        p.source,
		Version:       p.version,
		At:            now,
	})

	meta.AnalysisSource = p.source
	meta.AnalysisMode = models.AnalysisModeAuto
	meta.AnalysisVersion = p.version
	meta.AnalysisAt = now.Format(time.RFC3339)

	if _, err := p.store.ApplyAnalysis(ctx, task.ShardID, shards.AnalysisUpdate{Analysis: doc, Meta: &meta}); err != nil {
		return err
	}

	log.Printf("[INFO] Enriched shard %s (primary=%s, %d transcript chars)", task.ShardID, emotion.Primary, len(transcription.Text))
	return nil
}
