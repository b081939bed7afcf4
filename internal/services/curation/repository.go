package curation

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vocalog/diary-api/internal/models"
)

// Repository reads shards for curation using GORM
type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements ShardSource
var _ ShardSource = (*Repository)(nil)

// NewRepository creates a new curation repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// EpisodeExists checks whether an episode row exists
func (r *Repository) EpisodeExists(ctx context.Context, episodeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Episode{}).Where("id = ?", episodeID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check episode existence: %w", err)
	}
	return count > 0, nil
}

// GetShardsByEpisodeID returns the episode's shards in timeline order.
// Rows without a start time sort first under sqlite's ASC null
// ordering; the selection pass re-sorts for presentation anyway.
func (r *Repository) GetShardsByEpisodeID(ctx context.Context, episodeID string) ([]models.Shard, error) {
	var shards []models.Shard
	err := r.db.WithContext(ctx).
		Where("episode_id = ?", episodeID).
		Order("start_time ASC, created_at ASC").
		Find(&shards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get shards for episode %s: %w", episodeID, err)
	}
	return shards, nil
}
