package curation

import (
	"context"
	"log"
)

// Service implements CurationService on top of a ShardSource
type Service struct {
	source ShardSource
}

// Ensure Service implements CurationService
var _ CurationService = (*Service)(nil)

// NewService creates a new curation service
func NewService(source ShardSource) *Service {
	return &Service{source: source}
}

// CurateEpisode scores the episode's shards and returns the top
// maxShards in chronological order. Episode-level stats and the
// emotion summary are computed over the full shard set, so filtering
// never skews them.
func (s *Service) CurateEpisode(ctx context.Context, episodeID string, maxShards int) (*CurationResult, error) {
	views, err := s.loadViews(ctx, episodeID)
	if err != nil {
		return nil, err
	}

	if maxShards < 0 {
		maxShards = 0
	}

	candidates, diagnostics := filterCandidates(views)
	selected := selectTop(candidates, maxShards)

	log.Printf("[DEBUG] Curated episode %s: %d of %d shards selected (deleted=%d tooShort=%d silence=%d)",
		episodeID, len(selected), len(views), diagnostics.Deleted, diagnostics.TooShort, diagnostics.Silence)

	return &CurationResult{
		EpisodeID:      episodeID,
		MaxShards:      maxShards,
		Shards:         selected,
		Stats:          buildInsightStats(views),
		EmotionSummary: buildEmotionSummary(views),
		Diagnostics:    diagnostics,
	}, nil
}

// GetEpisodeInsights aggregates stats, emotion frequencies and key
// moments over every shard of the episode
func (s *Service) GetEpisodeInsights(ctx context.Context, episodeID string) (*EpisodeInsights, error) {
	views, err := s.loadViews(ctx, episodeID)
	if err != nil {
		return nil, err
	}

	return &EpisodeInsights{
		EpisodeID:      episodeID,
		Stats:          buildInsightStats(views),
		EmotionSummary: buildEmotionSummary(views),
		KeyMoments:     buildKeyMoments(views),
	}, nil
}

func (s *Service) loadViews(ctx context.Context, episodeID string) ([]shardView, error) {
	exists, err := s.source.EpisodeExists(ctx, episodeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, NewNotFoundError("episode", episodeID)
	}

	shards, err := s.source.GetShardsByEpisodeID(ctx, episodeID)
	if err != nil {
		return nil, err
	}
	return buildViews(shards), nil
}
