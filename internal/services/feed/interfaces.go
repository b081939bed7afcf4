package feed

import (
	"context"

	"github.com/vocalog/diary-api/internal/models"
)

// PublicationSource reads a profile's live publications and the shards
// they point at
type PublicationSource interface {
	GetActivePublications(ctx context.Context, profileID string) ([]models.PublishedShard, error)
	GetShardsByIDs(ctx context.Context, ids []string) (map[string]models.Shard, error)
}

// FeedService assembles the published-shard feed for a profile
type FeedService interface {
	GetFeedForProfile(ctx context.Context, profileID string) ([]FeedItem, error)
}
