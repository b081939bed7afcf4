package profiles

import (
	"math"
	"time"

	"github.com/vocalog/diary-api/internal/models"
)

// utcDate truncates a time to its UTC calendar day
func utcDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// dayWindow returns the half-open [start, end) range of the day
// containing t, in UTC
func dayWindow(t time.Time) (time.Time, time.Time) {
	start := utcDate(t)
	return start, start.AddDate(0, 0, 1)
}

// summarizeDay reconstructs one day's progress from its events.
// scoreEnd anchors the reconstruction: no score history is stored, so
// the day's start is derived by walking the delta back from the end.
func summarizeDay(day time.Time, scoreEnd float64, votes []models.VoteEvent, publications []models.PublishedShard) ProgressSummary {
	summary := ProgressSummary{
		Date:            utcDate(day).Format("2006-01-02"),
		ShardsPublished: len(publications),
	}

	minutes := make(map[string]bool)
	var delta float64

	for _, event := range votes {
		switch event.Direction {
		case models.VoteUp:
			summary.VotesGiven.Up++
			delta += models.TevVoteAward
		case models.VoteDown:
			summary.VotesGiven.Down++
			delta -= models.TevVoteAward
		case models.VoteReview:
			summary.ShardsReviewed++
		}
		minutes[event.CreatedAt.UTC().Format("15:04")] = true
	}

	for _, entry := range publications {
		delta += models.TevPublishAward
		minutes[entry.PublishedAt.UTC().Format("15:04")] = true
	}

	summary.ActivityMinutes = len(minutes)
	summary.TevDelta = delta
	summary.TevScoreEnd = scoreEnd
	summary.TevScoreStart = scoreEnd - delta

	summary.LevelLabel = models.LevelForScore(scoreEnd)
	summary.ProgressPercentToNextLevel = int(math.Round(models.LevelProgress(scoreEnd)))

	return summary
}
