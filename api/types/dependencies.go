package types

import (
	"github.com/vocalog/diary-api/internal/database"
	"github.com/vocalog/diary-api/internal/services/curation"
	"github.com/vocalog/diary-api/internal/services/enrichment"
	"github.com/vocalog/diary-api/internal/services/episodes"
	"github.com/vocalog/diary-api/internal/services/feed"
	"github.com/vocalog/diary-api/internal/services/inference"
	"github.com/vocalog/diary-api/internal/services/profiles"
	"github.com/vocalog/diary-api/internal/services/shards"
)

// EnrichmentDispatcher queues a background analysis pass for a shard.
// Dispatch reports whether the task was accepted or dropped because
// the queue was full.
type EnrichmentDispatcher interface {
	Dispatch(task enrichment.Task) bool
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB              *database.DB
	EpisodeService  episodes.EpisodeService
	ShardService    shards.ShardService
	CurationService curation.CurationService
	FeedService     feed.FeedService
	ProfileService  profiles.ProfileService
	Dispatcher      EnrichmentDispatcher

	// Analysis adapters for the synchronous /analyze-shard path. The
	// background pipeline holds its own references.
	Transcriber      inference.Transcriber
	EmotionAnalyzer  inference.EmotionAnalyzer
	SemanticAnalyzer inference.SemanticAnalyzer

	// Storage and identity settings handlers need at request time
	AudioDir         string
	WorkDir          string
	DefaultProfileID string
	AnalysisSource   string
	AnalysisVersion  string
}
