package feed

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vocalog/diary-api/internal/models"
)

// Repository reads feed data using GORM
type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements PublicationSource
var _ PublicationSource = (*Repository)(nil)

// NewRepository creates a new feed repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetActivePublications returns the profile's non-retired publications,
// most recently published first
func (r *Repository) GetActivePublications(ctx context.Context, profileID string) ([]models.PublishedShard, error) {
	var entries []models.PublishedShard
	err := r.db.WithContext(ctx).
		Where("profile_id = ? AND retired_at IS NULL", profileID).
		Order("published_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get publications for profile %s: %w", profileID, err)
	}
	return entries, nil
}

// GetShardsByIDs returns the shards that still exist, keyed by ID.
// IDs without a row are simply absent from the map.
func (r *Repository) GetShardsByIDs(ctx context.Context, ids []string) (map[string]models.Shard, error) {
	shardsByID := make(map[string]models.Shard, len(ids))
	if len(ids) == 0 {
		return shardsByID, nil
	}

	var shards []models.Shard
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&shards).Error; err != nil {
		return nil, fmt.Errorf("failed to get shards: %w", err)
	}
	for _, shard := range shards {
		shardsByID[shard.ID] = shard
	}
	return shardsByID, nil
}
