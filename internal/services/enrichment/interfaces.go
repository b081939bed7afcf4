package enrichment

import (
	"context"

	"github.com/vocalog/diary-api/internal/models"
	"github.com/vocalog/diary-api/internal/services/shards"
)

// Task is one enrichment request for a captured shard
type Task struct {
	ShardID   string
	AudioPath string
}

// Enricher runs one full analysis pass over a shard
type Enricher interface {
	Enrich(ctx context.Context, task Task) error
}

// ShardStore is the slice of the shard service the pipeline needs:
// reading the stored documents and persisting the merged result.
type ShardStore interface {
	GetShard(ctx context.Context, id string) (*models.Shard, error)
	ApplyAnalysis(ctx context.Context, shardID string, update shards.AnalysisUpdate) (*models.Shard, error)
}
