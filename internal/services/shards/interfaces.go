package shards

import (
	"context"

	"github.com/vocalog/diary-api/internal/models"
)

// ShardRepository defines the interface for shard data persistence
type ShardRepository interface {
	CreateShard(ctx context.Context, shard *models.Shard) error
	GetShardByID(ctx context.Context, id string) (*models.Shard, error)
	UpdateShard(ctx context.Context, shard *models.Shard) error
	EpisodeExists(ctx context.Context, episodeID string) (bool, error)

	// PublishShard saves the shard and upserts the profile's feed
	// entry in one transaction, lazily creating the profile
	PublishShard(ctx context.Context, profileID string, shard *models.Shard) (*models.PublishedShard, error)

	// RetireAndSave saves the soft-deleted shard and retires the
	// profile's live feed entry in one transaction
	RetireAndSave(ctx context.Context, profileID string, shard *models.Shard) error
}

// ShardService defines the business logic interface for the shard
// lifecycle
type ShardService interface {
	CreateShard(ctx context.Context, params CreateShardParams) (*models.Shard, error)
	EpisodeExists(ctx context.Context, episodeID string) (bool, error)
	GetShard(ctx context.Context, id string) (*models.Shard, error)
	UpdateShard(ctx context.Context, id string, req UpdateShardRequest) (*models.Shard, error)
	PublishShardForProfile(ctx context.Context, profileID, shardID string, force bool) (*PublishResult, error)
	DeleteShard(ctx context.Context, profileID, shardID, reason string) (*models.Shard, error)
	ApplyAnalysis(ctx context.Context, shardID string, update AnalysisUpdate) (*models.Shard, error)
}
