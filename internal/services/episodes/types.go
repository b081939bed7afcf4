package episodes

import (
	"time"

	"github.com/vocalog/diary-api/internal/models"
)

// EpisodeStats is the list/summary view of an episode: row fields plus
// aggregates derived from its shards
type EpisodeStats struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"createdAt"`
	Title           *string   `json:"title,omitempty"`
	Note            *string   `json:"note,omitempty"`
	ShardCount      int       `json:"shardCount"`
	DurationSeconds *float64  `json:"durationSeconds,omitempty"`
	PrimaryEmotion  *string   `json:"primaryEmotion,omitempty"`
	Valence         *string   `json:"valence,omitempty"`
	Arousal         *string   `json:"arousal,omitempty"`
}

// EpisodeDetail is the summary plus the episode's shards in
// chronological order
type EpisodeDetail struct {
	EpisodeStats
	Shards []models.Shard `json:"shards"`
}

// FrequencyEntry is one row of a frequency table, ordered by count
type FrequencyEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// GlobalInsights is the rollup across every episode in the diary
type GlobalInsights struct {
	TotalEpisodes        int              `json:"totalEpisodes"`
	TotalShards          int              `json:"totalShards"`
	TotalDurationSeconds *float64         `json:"totalDurationSeconds,omitempty"`
	Tags                 []FrequencyEntry `json:"tags"`
	Statuses             []FrequencyEntry `json:"statuses"`
	Emotions             []FrequencyEntry `json:"emotions"`
	LastEpisode          *EpisodeStats    `json:"lastEpisode,omitempty"`
}
