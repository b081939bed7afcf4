package curation

import (
	"github.com/vocalog/diary-api/internal/models"
)

// Key moment selection reasons, in pool priority order
const (
	ReasonHighestIntensity = "highestIntensity"
	ReasonStrongNegative   = "strongNegative"
	ReasonStrongPositive   = "strongPositive"
)

// DefaultMaxShards bounds a curated view when the caller does not say
// how many shards it wants
const DefaultMaxShards = 10

// MaxKeyMoments caps the insight key-moment list across all pools
const MaxKeyMoments = 5

// FilterDiagnostics counts why shards were excluded from curation
// candidacy, one counter per reason
type FilterDiagnostics struct {
	Deleted  int `json:"deleted"`
	TooShort int `json:"tooShort"`
	Silence  int `json:"silence"`
}

// InsightStats aggregates timing and emotion coverage over the full
// shard set of an episode
type InsightStats struct {
	TotalShards       int      `json:"totalShards"`
	DurationSeconds   *float64 `json:"durationSeconds,omitempty"`
	ShardsWithEmotion int      `json:"shardsWithEmotion"`
	FirstShardAt      *float64 `json:"firstShardAt,omitempty"`
	LastShardAt       *float64 `json:"lastShardAt,omitempty"`
}

// EmotionSummary holds the three frequency tables of an episode.
// Primary counts keep the raw labels; valence and activation counts
// are translated to the English display vocabulary.
type EmotionSummary struct {
	PrimaryCounts    map[string]int `json:"primaryCounts"`
	ValenceCounts    map[string]int `json:"valenceCounts"`
	ActivationCounts map[string]int `json:"activationCounts"`
}

// EmotionSnapshot is the compact emotion view attached to a key moment
type EmotionSnapshot struct {
	Primary    string `json:"primary,omitempty"`
	Valence    string `json:"valence,omitempty"`
	Activation string `json:"activation,omitempty"`
	Headline   string `json:"headline,omitempty"`
}

// KeyMoment is one ranked highlight of an episode
type KeyMoment struct {
	ShardID           string          `json:"shardId"`
	EpisodeID         string          `json:"episodeId"`
	StartTime         *float64        `json:"startTime,omitempty"`
	EndTime           *float64        `json:"endTime,omitempty"`
	Reason            string          `json:"reason"`
	Emotion           EmotionSnapshot `json:"emotion"`
	TranscriptSnippet string          `json:"transcriptSnippet,omitempty"`
}

// CurationResult is the curated episode view: the selected shards in
// chronological order plus summary fields computed over the FULL
// shard set, independent of what the filter kept
type CurationResult struct {
	EpisodeID      string            `json:"episodeId"`
	MaxShards      int               `json:"maxShards"`
	Shards         []models.Shard    `json:"shards"`
	Stats          InsightStats      `json:"stats"`
	EmotionSummary EmotionSummary    `json:"emotionSummary"`
	Diagnostics    FilterDiagnostics `json:"diagnostics"`
}

// EpisodeInsights is the aggregate view over all shards of an episode
type EpisodeInsights struct {
	EpisodeID      string         `json:"episodeId"`
	Stats          InsightStats   `json:"stats"`
	EmotionSummary EmotionSummary `json:"emotionSummary"`
	KeyMoments     []KeyMoment    `json:"keyMoments"`
}
