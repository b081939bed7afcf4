package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Episode groups the shards recorded in one diary session
type Episode struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title *string `json:"title,omitempty" gorm:"size:255"`
	Note  *string `json:"note,omitempty" gorm:"type:text"`

	Shards []Shard `json:"shards,omitempty" gorm:"foreignKey:EpisodeID"`
}

// BeforeCreate generates an ID before creating a new episode
func (e *Episode) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Episode model
func (Episode) TableName() string {
	return "episodes"
}
