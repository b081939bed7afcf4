package feed

import (
	"context"
	"log"

	"github.com/vocalog/diary-api/internal/models"
)

// Service implements FeedService on top of a PublicationSource
type Service struct {
	source PublicationSource
}

// Ensure Service implements FeedService
var _ FeedService = (*Service)(nil)

// NewService creates a new feed service
func NewService(source PublicationSource) *Service {
	return &Service{source: source}
}

// GetFeedForProfile assembles the profile's feed in publish order.
// A publication whose shard row has vanished is skipped silently; a
// dangling entry is not worth failing the whole feed over.
func (s *Service) GetFeedForProfile(ctx context.Context, profileID string) ([]FeedItem, error) {
	entries, err := s.source.GetActivePublications(ctx, profileID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ShardID)
	}
	shardsByID, err := s.source.GetShardsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]FeedItem, 0, len(entries))
	for _, entry := range entries {
		shard, ok := shardsByID[entry.ShardID]
		if !ok {
			log.Printf("[WARN] Skipping feed entry %s: shard %s no longer exists", entry.ID, entry.ShardID)
			continue
		}
		items = append(items, buildFeedItem(entry, shard))
	}

	return items, nil
}

func buildFeedItem(entry models.PublishedShard, shard models.Shard) FeedItem {
	item := FeedItem{
		ID:           entry.ID,
		ShardID:      entry.ShardID,
		PublishedAt:  entry.PublishedAt,
		StartTimeSec: shard.StartTime,
		EndTimeSec:   shard.EndTime,
		UserTags:     []string{},
	}

	switch {
	case entry.EpisodeID != nil:
		item.EpisodeID = *entry.EpisodeID
	case shard.EpisodeID != nil:
		item.EpisodeID = *shard.EpisodeID
	}

	analysis, err := shard.AnalysisDoc()
	if err != nil {
		log.Printf("[WARN] Skipping undecodable analysis on shard %s: %v", shard.ID, err)
		return item
	}

	if analysis.User != nil {
		item.Status = analysis.User.Status
		if len(analysis.User.UserTags) > 0 {
			item.UserTags = append(item.UserTags, analysis.User.UserTags...)
		}
	}

	item.Emotion = FeedItemEmotion{
		Primary:   analysis.PrimaryLabel(),
		Intensity: analysis.EmotionIntensity(),
	}
	if en, ok := models.TranslateValence(analysis.ValenceLabel()); ok {
		item.Emotion.Valence = en
	}
	if en, ok := models.TranslateActivation(analysis.ActivationLabel()); ok {
		item.Emotion.Activation = en
	}
	if analysis.Emotion != nil && analysis.Emotion.Headline != nil {
		item.Emotion.Headline = *analysis.Emotion.Headline
	}

	item.TranscriptSnippet = analysis.TranscriptText()

	return item
}
