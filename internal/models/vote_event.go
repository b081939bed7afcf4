package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vote event kinds. Review events mark a shard the profile finished
// reviewing; they carry no score weight of their own.
const (
	VoteUp     = "up"
	VoteDown   = "down"
	VoteReview = "review"
)

// VoteEvent records a single gamification event cast by a profile on
// a shard. The core only aggregates these; they are written by the
// seeding flow and by future community surfaces.
type VoteEvent struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	CreatedAt time.Time `json:"created_at"`

	ProfileID string `json:"profile_id" gorm:"not null;index;size:64"`
	ShardID   string `json:"shard_id" gorm:"index;size:64"`
	Direction string `json:"direction" gorm:"size:10"`
}

// BeforeCreate generates an ID before creating a new vote event
func (v *VoteEvent) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the VoteEvent model
func (VoteEvent) TableName() string {
	return "vote_events"
}
