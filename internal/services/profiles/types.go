package profiles

// VotesGiven tallies the votes a profile cast during one day
type VotesGiven struct {
	Up   int `json:"up"`
	Down int `json:"down"`
}

// ProgressSummary is one day of gamification movement for a profile.
// Score endpoints are reconstructed from the day's events, anchored at
// the profile's current score.
type ProgressSummary struct {
	Date string `json:"date"`

	TevScoreStart float64 `json:"tevScoreStart"`
	TevScoreEnd   float64 `json:"tevScoreEnd"`
	TevDelta      float64 `json:"tevDelta"`

	VotesGiven VotesGiven `json:"votesGiven"`

	ActivityMinutes int `json:"activityMinutes"`
	ShardsReviewed  int `json:"shardsReviewed"`
	ShardsPublished int `json:"shardsPublished"`

	LevelLabel                 string `json:"levelLabel"`
	ProgressPercentToNextLevel int    `json:"progressPercentToNextLevel"`
}

// InvitationsSummary is the compact invitation budget view
type InvitationsSummary struct {
	GrantedTotal int `json:"grantedTotal"`
	Used         int `json:"used"`
	Remaining    int `json:"remaining"`
}
