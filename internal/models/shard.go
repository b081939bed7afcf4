package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Shard recording sources
const (
	ShardSourceMic    = "mic"
	ShardSourceUpload = "upload"
	ShardSourceSeed   = "seed"
)

// User review states carried in analysis.user.status and mirrored
// into meta.status once the shard becomes publishable
const (
	ShardStatusRaw            = "raw"
	ShardStatusReviewed       = "reviewed"
	ShardStatusReadyToPublish = "readyToPublish"
)

// Publish states carried in meta.publishState / analysis.publishState
const (
	PublishStateReady          = "ready"
	PublishStateReadyToPublish = "readyToPublish"
	PublishStatePublished      = "published"
)

// Shard is a single recorded audio fragment together with its signal
// features and the evolving analysis document attached to it.
// Meta, Features and Analysis are stored as JSON documents so the
// document shapes can evolve without schema migrations.
type Shard struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	EpisodeID *string  `json:"episode_id,omitempty" gorm:"index;size:64"`
	StartTime *float64 `json:"start_time,omitempty"`
	EndTime   *float64 `json:"end_time,omitempty"`
	Source    string   `json:"source" gorm:"size:50"`

	Meta     datatypes.JSON `json:"meta,omitempty" gorm:"type:json"`
	Features datatypes.JSON `json:"features,omitempty" gorm:"type:json"`
	Analysis datatypes.JSON `json:"analysis,omitempty" gorm:"type:json"`
}

// BeforeCreate generates an ID before creating a new shard
func (s *Shard) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Shard model
func (Shard) TableName() string {
	return "shards"
}

// MetaDoc decodes the meta column. A missing or empty column decodes
// to the zero document rather than an error.
func (s *Shard) MetaDoc() (MetaDocument, error) {
	var doc MetaDocument
	if len(s.Meta) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(s.Meta, &doc); err != nil {
		return MetaDocument{}, err
	}
	return doc, nil
}

// SetMetaDoc encodes doc into the meta column
func (s *Shard) SetMetaDoc(doc MetaDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.Meta = datatypes.JSON(raw)
	return nil
}

// FeatureDoc decodes the features column
func (s *Shard) FeatureDoc() (FeatureSet, error) {
	var doc FeatureSet
	if len(s.Features) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(s.Features, &doc); err != nil {
		return FeatureSet{}, err
	}
	return doc, nil
}

// SetFeatureDoc encodes doc into the features column
func (s *Shard) SetFeatureDoc(doc FeatureSet) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.Features = datatypes.JSON(raw)
	return nil
}

// AnalysisDoc decodes the analysis column
func (s *Shard) AnalysisDoc() (AnalysisDocument, error) {
	var doc AnalysisDocument
	if len(s.Analysis) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(s.Analysis, &doc); err != nil {
		return AnalysisDocument{}, err
	}
	return doc, nil
}

// SetAnalysisDoc encodes doc into the analysis column
func (s *Shard) SetAnalysisDoc(doc AnalysisDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.Analysis = datatypes.JSON(raw)
	return nil
}
