package episodes

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vocalog/diary-api/internal/models"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements EpisodeRepository interface
var _ EpisodeRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateEpisode(ctx context.Context, episode *models.Episode) error {
	if err := r.db.WithContext(ctx).Create(episode).Error; err != nil {
		return fmt.Errorf("creating episode: %w", err)
	}
	return nil
}

// GetOrCreateEpisode fetches an episode by ID, creating an empty row
// when it does not exist yet. Seed imports reference episodes before
// defining them, so first reference wins.
func (r *Repository) GetOrCreateEpisode(ctx context.Context, id string) (*models.Episode, error) {
	var episode models.Episode
	err := r.db.WithContext(ctx).First(&episode, "id = ?", id).Error
	if err == nil {
		return &episode, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("getting episode: %w", err)
	}

	episode = models.Episode{ID: id}
	if err := r.db.WithContext(ctx).Create(&episode).Error; err != nil {
		return nil, fmt.Errorf("creating episode: %w", err)
	}
	return &episode, nil
}

func (r *Repository) GetEpisodeByID(ctx context.Context, id string) (*models.Episode, error) {
	var episode models.Episode
	if err := r.db.WithContext(ctx).First(&episode, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("episode", id)
		}
		return nil, fmt.Errorf("getting episode: %w", err)
	}
	return &episode, nil
}

func (r *Repository) ListEpisodes(ctx context.Context) ([]models.Episode, error) {
	var episodes []models.Episode
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&episodes).Error; err != nil {
		return nil, fmt.Errorf("listing episodes: %w", err)
	}
	return episodes, nil
}

// GetShardsByEpisodeID returns the episode's shards in chronological
// order. Shards without a start time sort before the rest, matching
// sqlite's ASC NULL ordering.
func (r *Repository) GetShardsByEpisodeID(ctx context.Context, episodeID string) ([]models.Shard, error) {
	var shards []models.Shard
	if err := r.db.WithContext(ctx).
		Where("episode_id = ?", episodeID).
		Order("start_time ASC, created_at ASC").
		Find(&shards).Error; err != nil {
		return nil, fmt.Errorf("getting shards for episode: %w", err)
	}
	return shards, nil
}

func (r *Repository) GetAllShards(ctx context.Context) ([]models.Shard, error) {
	var shards []models.Shard
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&shards).Error; err != nil {
		return nil, fmt.Errorf("getting shards: %w", err)
	}
	return shards, nil
}

func (r *Repository) UpdateEpisode(ctx context.Context, episode *models.Episode) error {
	result := r.db.WithContext(ctx).Save(episode)
	if result.Error != nil {
		return fmt.Errorf("updating episode: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("episode", episode.ID)
	}
	return nil
}
