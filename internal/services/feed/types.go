package feed

import (
	"time"
)

// FeedItemEmotion is the compact emotion view carried by a feed item.
// The primary label stays in the stored vocabulary; valence and
// activation are translated for display.
type FeedItemEmotion struct {
	Primary    string   `json:"primary,omitempty"`
	Valence    string   `json:"valence,omitempty"`
	Activation string   `json:"activation,omitempty"`
	Headline   string   `json:"headline,omitempty"`
	Intensity  *float64 `json:"intensity,omitempty"`
}

// FeedItem is one published shard as shown on a profile's feed
type FeedItem struct {
	ID                string          `json:"id"`
	ShardID           string          `json:"shardId"`
	EpisodeID         string          `json:"episodeId"`
	PublishedAt       time.Time       `json:"publishedAt"`
	StartTimeSec      *float64        `json:"startTimeSec,omitempty"`
	EndTimeSec        *float64        `json:"endTimeSec,omitempty"`
	Status            string          `json:"status,omitempty"`
	UserTags          []string        `json:"userTags"`
	Emotion           FeedItemEmotion `json:"emotion"`
	TranscriptSnippet string          `json:"transcriptSnippet,omitempty"`
}
