package curation

import (
	"sort"

	"github.com/vocalog/diary-api/internal/models"
)

// intensityThreshold qualifies a shard for the highest-intensity pool
// even when no activation label is stored.
const intensityThreshold = 0.75

// buildInsightStats aggregates timeline figures over every shard of
// the episode, curation filters not applied
func buildInsightStats(views []shardView) InsightStats {
	stats := InsightStats{TotalShards: len(views)}

	var minStart, maxEnd *float64
	for _, view := range views {
		if s := view.Shard.StartTime; s != nil {
			if minStart == nil || *s < *minStart {
				v := *s
				minStart = &v
			}
		}
		if e := view.Shard.EndTime; e != nil {
			if maxEnd == nil || *e > *maxEnd {
				v := *e
				maxEnd = &v
			}
		}
		if view.Analysis.PrimaryLabel() != "" {
			stats.ShardsWithEmotion++
		}
	}

	stats.FirstShardAt = minStart
	stats.LastShardAt = maxEnd
	if minStart != nil && maxEnd != nil {
		delta := *maxEnd - *minStart
		if delta >= 0 {
			stats.DurationSeconds = &delta
		}
	}

	return stats
}

// buildEmotionSummary tallies primary emotions by their stored label
// and valence/activation in the translated vocabulary
func buildEmotionSummary(views []shardView) EmotionSummary {
	summary := EmotionSummary{
		PrimaryCounts:    make(map[string]int),
		ValenceCounts:    make(map[string]int),
		ActivationCounts: make(map[string]int),
	}

	for _, view := range views {
		if primary := view.Analysis.PrimaryLabel(); primary != "" {
			summary.PrimaryCounts[primary]++
		}
		if en, ok := models.TranslateValence(view.Analysis.ValenceLabel()); ok {
			summary.ValenceCounts[en]++
		}
		if en, ok := models.TranslateActivation(view.Analysis.ActivationLabel()); ok {
			summary.ActivationCounts[en]++
		}
	}

	return summary
}

// buildKeyMoments picks up to MaxKeyMoments shards from three pools in
// priority order: intense moments first, then strongly negative, then
// strongly positive. A shard claimed by an earlier pool never appears
// again under a later reason.
func buildKeyMoments(views []shardView) []KeyMoment {
	moments := make([]KeyMoment, 0, MaxKeyMoments)
	used := make(map[string]bool)

	pools := []struct {
		reason  string
		matches func(shardView) bool
	}{
		{ReasonHighestIntensity, isHighIntensity},
		{ReasonStrongNegative, hasValence("negative")},
		{ReasonStrongPositive, hasValence("positive")},
	}

	for _, pool := range pools {
		if len(moments) >= MaxKeyMoments {
			break
		}

		members := make([]shardView, 0, len(views))
		for _, view := range views {
			if used[view.Shard.ID] {
				continue
			}
			if pool.matches(view) {
				members = append(members, view)
			}
		}
		sortByIntensityDesc(members)

		for _, view := range members {
			if len(moments) >= MaxKeyMoments {
				break
			}
			used[view.Shard.ID] = true
			moments = append(moments, buildKeyMoment(view, pool.reason))
		}
	}

	return moments
}

func isHighIntensity(view shardView) bool {
	if en, ok := models.TranslateActivation(view.Analysis.ActivationLabel()); ok && en == "high" {
		return true
	}
	return effectiveIntensity(view) >= intensityThreshold
}

func hasValence(want string) func(shardView) bool {
	return func(view shardView) bool {
		en, ok := models.TranslateValence(view.Analysis.ValenceLabel())
		return ok && en == want
	}
}

// effectiveIntensity prefers the analyzed emotional intensity and
// falls back to the acoustic one
func effectiveIntensity(view shardView) float64 {
	if i := view.Analysis.EmotionIntensity(); i != nil {
		return *i
	}
	return floatOrZero(view.Features.Intensity)
}

func sortByIntensityDesc(views []shardView) {
	sort.SliceStable(views, func(i, j int) bool {
		return effectiveIntensity(views[i]) > effectiveIntensity(views[j])
	})
}

func buildKeyMoment(view shardView, reason string) KeyMoment {
	moment := KeyMoment{
		ShardID:           view.Shard.ID,
		StartTime:         view.Shard.StartTime,
		EndTime:           view.Shard.EndTime,
		Reason:            reason,
		Emotion:           snapshotFor(view.Analysis),
		TranscriptSnippet: view.Analysis.TranscriptText(),
	}
	if view.Shard.EpisodeID != nil {
		moment.EpisodeID = *view.Shard.EpisodeID
	}
	return moment
}

// snapshotFor keeps the stored primary label but reports valence and
// activation in the translated vocabulary
func snapshotFor(analysis models.AnalysisDocument) EmotionSnapshot {
	snapshot := EmotionSnapshot{
		Primary: analysis.PrimaryLabel(),
	}
	if en, ok := models.TranslateValence(analysis.ValenceLabel()); ok {
		snapshot.Valence = en
	}
	if en, ok := models.TranslateActivation(analysis.ActivationLabel()); ok {
		snapshot.Activation = en
	}
	if analysis.Emotion != nil && analysis.Emotion.Headline != nil {
		snapshot.Headline = *analysis.Emotion.Headline
	}
	return snapshot
}
