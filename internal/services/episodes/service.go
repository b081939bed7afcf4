package episodes

import (
	"context"
	"sort"

	"github.com/vocalog/diary-api/internal/models"
)

// Service implements the EpisodeService interface with business logic
type Service struct {
	repository EpisodeRepository
}

// Ensure Service implements EpisodeService interface
var _ EpisodeService = (*Service)(nil)

func NewService(repository EpisodeRepository) *Service {
	return &Service{repository: repository}
}

// CreateEpisode creates an empty episode for a new recording session
func (s *Service) CreateEpisode(ctx context.Context, title, note *string) (*EpisodeStats, error) {
	episode := &models.Episode{Title: title, Note: note}
	if err := s.repository.CreateEpisode(ctx, episode); err != nil {
		return nil, err
	}

	stats := buildEpisodeStats(episode, nil)
	return &stats, nil
}

// ListEpisodesWithStats returns every episode newest-first, each with
// aggregates derived from its shards
func (s *Service) ListEpisodesWithStats(ctx context.Context) ([]EpisodeStats, error) {
	episodeRows, err := s.repository.ListEpisodes(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]EpisodeStats, 0, len(episodeRows))
	for i := range episodeRows {
		shards, err := s.repository.GetShardsByEpisodeID(ctx, episodeRows[i].ID)
		if err != nil {
			return nil, err
		}
		stats = append(stats, buildEpisodeStats(&episodeRows[i], shards))
	}
	return stats, nil
}

// GetEpisodeDetail returns the episode summary plus its shards in
// chronological order
func (s *Service) GetEpisodeDetail(ctx context.Context, id string) (*EpisodeDetail, error) {
	episode, err := s.repository.GetEpisodeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	shards, err := s.repository.GetShardsByEpisodeID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &EpisodeDetail{
		EpisodeStats: buildEpisodeStats(episode, shards),
		Shards:       shards,
	}, nil
}

// UpdateEpisode assigns the non-nil fields and returns the refreshed
// summary
func (s *Service) UpdateEpisode(ctx context.Context, id string, title, note *string) (*EpisodeStats, error) {
	episode, err := s.repository.GetEpisodeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title != nil {
		episode.Title = title
	}
	if note != nil {
		episode.Note = note
	}

	if err := s.repository.UpdateEpisode(ctx, episode); err != nil {
		return nil, err
	}

	shards, err := s.repository.GetShardsByEpisodeID(ctx, id)
	if err != nil {
		return nil, err
	}

	stats := buildEpisodeStats(episode, shards)
	return &stats, nil
}

// ComputeGlobalInsights aggregates tags, statuses and emotions across
// the whole diary
func (s *Service) ComputeGlobalInsights(ctx context.Context) (*GlobalInsights, error) {
	episodeRows, err := s.repository.ListEpisodes(ctx)
	if err != nil {
		return nil, err
	}
	shards, err := s.repository.GetAllShards(ctx)
	if err != nil {
		return nil, err
	}

	tagCounts := map[string]int{}
	statusCounts := map[string]int{}
	emotionCounts := map[string]int{}
	var totalDuration float64
	haveDuration := false

	for i := range shards {
		shard := &shards[i]
		if shard.StartTime != nil && shard.EndTime != nil {
			if delta := *shard.EndTime - *shard.StartTime; delta > 0 {
				totalDuration += delta
				haveDuration = true
			}
		}

		doc, err := shard.AnalysisDoc()
		if err != nil {
			continue
		}
		if doc.User != nil {
			for _, tag := range doc.User.UserTags {
				if tag != "" {
					tagCounts[tag]++
				}
			}
			if doc.User.Status != "" {
				statusCounts[doc.User.Status]++
			}
		}
		if emotion := legacyFirstPrimary(doc); emotion != "" {
			emotionCounts[emotion]++
		}
	}

	insights := &GlobalInsights{
		TotalEpisodes: len(episodeRows),
		TotalShards:   len(shards),
		Tags:          sortFrequencies(tagCounts),
		Statuses:      sortFrequencies(statusCounts),
		Emotions:      sortFrequencies(emotionCounts),
	}
	if haveDuration {
		insights.TotalDurationSeconds = &totalDuration
	}

	if len(episodeRows) > 0 {
		last := &episodeRows[0]
		lastShards, err := s.repository.GetShardsByEpisodeID(ctx, last.ID)
		if err != nil {
			return nil, err
		}
		stats := buildEpisodeStats(last, lastShards)
		insights.LastEpisode = &stats
	}

	return insights, nil
}

// buildEpisodeStats derives the summary aggregates from an episode's
// shard set
func buildEpisodeStats(episode *models.Episode, shards []models.Shard) EpisodeStats {
	stats := EpisodeStats{
		ID:         episode.ID,
		CreatedAt:  episode.CreatedAt,
		Title:      episode.Title,
		Note:       episode.Note,
		ShardCount: len(shards),
	}

	stats.DurationSeconds = episodeSpanSeconds(shards)
	stats.PrimaryEmotion, stats.Valence, stats.Arousal = latestShardEmotion(shards)
	return stats
}

// episodeSpanSeconds computes max(end) - min(start) across the shard
// set. A negative span means inconsistent timestamps and reads as
// unknown rather than an error.
func episodeSpanSeconds(shards []models.Shard) *float64 {
	var minStart, maxEnd *float64
	for i := range shards {
		if st := shards[i].StartTime; st != nil {
			if minStart == nil || *st < *minStart {
				minStart = st
			}
		}
		if et := shards[i].EndTime; et != nil {
			if maxEnd == nil || *et > *maxEnd {
				maxEnd = et
			}
		}
	}
	if minStart == nil || maxEnd == nil {
		return nil
	}
	span := *maxEnd - *minStart
	if span < 0 {
		return nil
	}
	return &span
}

// latestShardEmotion reads the display emotion from the most recently
// created shard. Browse views keep the original reading order: legacy
// top-level fields first, then the structured emotion block.
func latestShardEmotion(shards []models.Shard) (primary, valence, arousal *string) {
	if len(shards) == 0 {
		return nil, nil, nil
	}

	latest := &shards[0]
	for i := range shards[1:] {
		if shards[i+1].CreatedAt.After(latest.CreatedAt) {
			latest = &shards[i+1]
		}
	}

	doc, err := latest.AnalysisDoc()
	if err != nil {
		return nil, nil, nil
	}

	if doc.PrimaryEmotion != nil && *doc.PrimaryEmotion != "" {
		primary = doc.PrimaryEmotion
	} else if doc.Emotion != nil && doc.Emotion.Primary != "" {
		p := doc.Emotion.Primary
		primary = &p
	}

	if doc.Valence != nil && *doc.Valence != "" {
		valence = doc.Valence
	} else if doc.Emotion != nil && doc.Emotion.Valence != "" {
		v := doc.Emotion.Valence
		valence = &v
	}

	if doc.Arousal != nil && *doc.Arousal != "" {
		arousal = doc.Arousal
	} else if doc.Emotion != nil && doc.Emotion.Activation != "" {
		a := doc.Emotion.Activation
		arousal = &a
	}

	return primary, valence, arousal
}

// legacyFirstPrimary reads the primary emotion the way the browse
// views do: legacy field first, structured block second
func legacyFirstPrimary(doc models.AnalysisDocument) string {
	if doc.PrimaryEmotion != nil && *doc.PrimaryEmotion != "" {
		return *doc.PrimaryEmotion
	}
	if doc.Emotion != nil {
		return doc.Emotion.Primary
	}
	return ""
}

// sortFrequencies orders a frequency table by count descending with
// name as the tiebreak so output is stable
func sortFrequencies(counts map[string]int) []FrequencyEntry {
	entries := make([]FrequencyEntry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, FrequencyEntry{Name: name, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}
