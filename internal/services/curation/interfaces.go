package curation

import (
	"context"

	"github.com/vocalog/diary-api/internal/models"
)

// ShardSource provides the episode's shards for scoring and
// aggregation
type ShardSource interface {
	EpisodeExists(ctx context.Context, episodeID string) (bool, error)
	GetShardsByEpisodeID(ctx context.Context, episodeID string) ([]models.Shard, error)
}

// CurationService selects highlight shards and aggregates episode
// insights
type CurationService interface {
	CurateEpisode(ctx context.Context, episodeID string, maxShards int) (*CurationResult, error)
	GetEpisodeInsights(ctx context.Context, episodeID string) (*EpisodeInsights, error)
}
