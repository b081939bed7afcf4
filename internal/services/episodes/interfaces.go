package episodes

import (
	"context"

	"github.com/vocalog/diary-api/internal/models"
)

// EpisodeRepository defines the interface for episode data persistence
type EpisodeRepository interface {
	CreateEpisode(ctx context.Context, episode *models.Episode) error
	GetOrCreateEpisode(ctx context.Context, id string) (*models.Episode, error)

	GetEpisodeByID(ctx context.Context, id string) (*models.Episode, error)
	ListEpisodes(ctx context.Context) ([]models.Episode, error)
	GetShardsByEpisodeID(ctx context.Context, episodeID string) ([]models.Shard, error)
	GetAllShards(ctx context.Context) ([]models.Shard, error)

	UpdateEpisode(ctx context.Context, episode *models.Episode) error
}

// EpisodeService defines the business logic interface for episode
// browsing and aggregation
type EpisodeService interface {
	CreateEpisode(ctx context.Context, title, note *string) (*EpisodeStats, error)
	ListEpisodesWithStats(ctx context.Context) ([]EpisodeStats, error)
	GetEpisodeDetail(ctx context.Context, id string) (*EpisodeDetail, error)
	UpdateEpisode(ctx context.Context, id string, title, note *string) (*EpisodeStats, error)
	ComputeGlobalInsights(ctx context.Context) (*GlobalInsights, error)
}
