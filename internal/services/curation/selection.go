package curation

import (
	"log"
	"sort"

	"github.com/vocalog/diary-api/internal/models"
)

// Filter thresholds. RMS and peak are on the int16 sample scale.
const (
	minShardDuration = 0.5
	minRMS           = 300.0
	minPeak          = 600.0
)

// Scoring weights
const (
	summaryBonus       = 50.0
	emotionBonus       = 25.0
	overlongPenalty    = 10.0
	veryShortPenalty   = 5.0
	overlongThreshold  = 60.0
	veryShortThreshold = 1.0
)

// shardView is a shard with its documents decoded once. Curation is
// advisory, so documents that fail to decode read as empty instead of
// failing the request.
type shardView struct {
	Shard    *models.Shard
	Analysis models.AnalysisDocument
	Features models.FeatureSet
}

func buildViews(shards []models.Shard) []shardView {
	views := make([]shardView, 0, len(shards))
	for i := range shards {
		view := shardView{Shard: &shards[i]}

		analysis, err := shards[i].AnalysisDoc()
		if err != nil {
			log.Printf("[WARN] Skipping undecodable analysis on shard %s: %v", shards[i].ID, err)
		} else {
			view.Analysis = analysis
		}

		features, err := shards[i].FeatureDoc()
		if err != nil {
			log.Printf("[WARN] Skipping undecodable features on shard %s: %v", shards[i].ID, err)
		} else {
			view.Features = features
		}

		views = append(views, view)
	}
	return views
}

// candidate is a shard that survived filtering, with its score
type candidate struct {
	View  shardView
	Score float64
}

// filterCandidates drops deleted, too-short and silent shards,
// counting each exclusion reason
func filterCandidates(views []shardView) ([]candidate, FilterDiagnostics) {
	var diag FilterDiagnostics
	candidates := make([]candidate, 0, len(views))

	for _, view := range views {
		if view.Analysis.IsDeleted() {
			diag.Deleted++
			continue
		}

		if d := view.Features.Duration; d != nil && *d < minShardDuration {
			diag.TooShort++
			continue
		}

		// Either weak signal alone reads as silence. Missing values
		// count as zero, so shards without features are excluded here.
		rms := floatOrZero(view.Features.RMS)
		peak := floatOrZero(view.Features.Peak)
		if rms < minRMS || peak < minPeak {
			diag.Silence++
			continue
		}

		candidates = append(candidates, candidate{View: view})
	}

	return candidates, diag
}

// scoreCandidate computes the additive interest score
func scoreCandidate(c candidate) float64 {
	var score float64
	if c.View.Features.Intensity != nil {
		score = *c.View.Features.Intensity
	} else {
		score = floatOrZero(c.View.Features.RMS) / 1000.0
	}

	if c.View.Analysis.Semantic != nil && c.View.Analysis.Semantic.Summary != "" {
		score += summaryBonus
	}

	if emotion := c.View.Analysis.Emotion; emotion != nil && emotion.Primary != "" && !isNeutralLabel(emotion.Primary) {
		score += emotionBonus
	}

	if d := c.View.Features.Duration; d != nil {
		if *d > overlongThreshold {
			score -= overlongPenalty
		}
		if *d < veryShortThreshold {
			score -= veryShortPenalty
		}
	}

	return score
}

// selectTop takes the maxShards best candidates and returns them in
// chronological order for presentation
func selectTop(candidates []candidate, maxShards int) []models.Shard {
	if maxShards < 0 {
		maxShards = 0
	}

	for i := range candidates {
		candidates[i].Score = scoreCandidate(candidates[i])
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > maxShards {
		candidates = candidates[:maxShards]
	}

	selected := make([]models.Shard, 0, len(candidates))
	for _, c := range candidates {
		selected = append(selected, *c.View.Shard)
	}
	sortChronologically(selected)
	return selected
}

// sortChronologically orders shards by (start_time is null, start_time,
// created_at); shards without a timeline position go last
func sortChronologically(shards []models.Shard) {
	sort.SliceStable(shards, func(i, j int) bool {
		si, sj := shards[i].StartTime, shards[j].StartTime
		switch {
		case si == nil && sj != nil:
			return false
		case si != nil && sj == nil:
			return true
		case si != nil && sj != nil && *si != *sj:
			return *si < *sj
		}
		return shards[i].CreatedAt.Before(shards[j].CreatedAt)
	})
}

func isNeutralLabel(label string) bool {
	return label == models.EmotionNeutral || label == models.ValenceNeutral
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
