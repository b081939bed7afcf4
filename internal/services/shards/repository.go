package shards

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vocalog/diary-api/internal/models"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements ShardRepository interface
var _ ShardRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateShard(ctx context.Context, shard *models.Shard) error {
	if err := r.db.WithContext(ctx).Create(shard).Error; err != nil {
		return fmt.Errorf("creating shard: %w", err)
	}
	return nil
}

func (r *Repository) GetShardByID(ctx context.Context, id string) (*models.Shard, error) {
	var shard models.Shard
	if err := r.db.WithContext(ctx).First(&shard, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("shard", id)
		}
		return nil, fmt.Errorf("getting shard: %w", err)
	}
	return &shard, nil
}

func (r *Repository) UpdateShard(ctx context.Context, shard *models.Shard) error {
	result := r.db.WithContext(ctx).Save(shard)
	if result.Error != nil {
		return fmt.Errorf("updating shard: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("shard", shard.ID)
	}
	return nil
}

func (r *Repository) EpisodeExists(ctx context.Context, episodeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Episode{}).
		Where("id = ?", episodeID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking episode: %w", err)
	}
	return count > 0, nil
}

// PublishShard persists the published shard state and its feed entry
// atomically. The (profile, shard) pair stays unique by querying
// before inserting; a re-publish refreshes published_at and clears a
// previous retirement instead of adding a second row. The publish
// award lands on the profile only when the entry goes live, not on a
// refresh of an already-live one.
func (r *Repository) PublishShard(ctx context.Context, profileID string, shard *models.Shard) (*models.PublishedShard, error) {
	var entry models.PublishedShard

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		// Lazily ensure the acting profile exists
		var profile models.Profile
		if err := tx.Where("id = ?", profileID).
			Attrs(models.Profile{
				ID:                      profileID,
				Role:                    models.ProfileRoleGhost,
				State:                   models.ProfileStateOK,
				InvitationsGrantedTotal: models.DefaultInvitationsGranted,
				LastActiveAt:            now,
			}).
			FirstOrCreate(&profile).Error; err != nil {
			return fmt.Errorf("ensuring profile: %w", err)
		}

		if err := tx.Save(shard).Error; err != nil {
			return fmt.Errorf("saving shard: %w", err)
		}

		wentLive := false
		err := tx.Where("profile_id = ? AND shard_id = ?", profileID, shard.ID).
			First(&entry).Error
		switch {
		case err == nil:
			wentLive = entry.RetiredAt != nil
			entry.PublishedAt = now
			entry.RetiredAt = nil
			entry.EpisodeID = shard.EpisodeID
			if err := tx.Save(&entry).Error; err != nil {
				return fmt.Errorf("refreshing feed entry: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			wentLive = true
			entry = models.PublishedShard{
				ProfileID:   profileID,
				ShardID:     shard.ID,
				EpisodeID:   shard.EpisodeID,
				PublishedAt: now,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return fmt.Errorf("creating feed entry: %w", err)
			}
		default:
			return fmt.Errorf("checking feed entry: %w", err)
		}

		if wentLive {
			if err := tx.Model(&models.Profile{}).
				Where("id = ?", profileID).
				UpdateColumn("tev_score", gorm.Expr("tev_score + ?", models.TevPublishAward)).Error; err != nil {
				return fmt.Errorf("awarding publish: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// RetireAndSave persists the soft-deleted shard and pulls the acting
// profile's live feed entry in the same transaction, so the feed can
// never show a shard the owner just deleted. Other profiles'
// publications are left alone.
func (r *Repository) RetireAndSave(ctx context.Context, profileID string, shard *models.Shard) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(shard).Error; err != nil {
			return fmt.Errorf("saving shard: %w", err)
		}

		if err := tx.Model(&models.PublishedShard{}).
			Where("profile_id = ? AND shard_id = ? AND retired_at IS NULL", profileID, shard.ID).
			Update("retired_at", time.Now().UTC()).Error; err != nil {
			return fmt.Errorf("retiring feed entry: %w", err)
		}

		return nil
	})
}
