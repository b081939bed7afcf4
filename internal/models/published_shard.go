package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PublishedShard is one entry of a profile's public feed. Retiring an
// entry sets RetiredAt instead of deleting the row, so the feed keeps
// an auditable history while the query surface only sees live rows.
type PublishedShard struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProfileID string  `json:"profile_id" gorm:"not null;index:idx_published_profile;size:64"`
	ShardID   string  `json:"shard_id" gorm:"not null;index;size:64"`
	EpisodeID *string `json:"episode_id,omitempty" gorm:"size:64"`

	PublishedAt time.Time  `json:"published_at" gorm:"index"`
	RetiredAt   *time.Time `json:"retired_at,omitempty"`
}

// BeforeCreate generates an ID before creating a new feed entry
func (p *PublishedShard) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.PublishedAt.IsZero() {
		p.PublishedAt = time.Now().UTC()
	}
	return nil
}

// TableName returns the table name for the PublishedShard model
func (PublishedShard) TableName() string {
	return "published_shards"
}

// IsRetired reports whether the entry has been pulled from the feed
func (p *PublishedShard) IsRetired() bool {
	return p.RetiredAt != nil
}
