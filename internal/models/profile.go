package models

import (
	"time"

	"gorm.io/gorm"
)

// Profile roles
const (
	ProfileRoleGhost  = "ghost"
	ProfileRoleActive = "active"
)

// Profile account states
const (
	ProfileStateOK        = "ok"
	ProfileStateSuspended = "suspended"
	ProfileStateBanned    = "banned"
)

// Gamification deltas. Progress summaries reconstruct a day's score
// movement from these, so publish/vote writers and the progress reader
// must agree on them.
const (
	TevPublishAward = 5.0
	TevVoteAward    = 1.0
)

// DefaultInvitationsGranted seeds a new profile's invitation budget
const DefaultInvitationsGranted = 3

// Level thresholds for the progress display. A profile sits in the
// highest band whose threshold its score reaches.
var levelBands = []struct {
	Threshold float64
	Label     string
}{
	{0, "Eco"},
	{100, "Voz"},
	{250, "Coro"},
	{500, "Faro"},
}

// Profile is a lightweight local identity. IDs arrive from the client
// (the X-Profile-Id header), so there is no generated-key hook here.
type Profile struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Role         string    `json:"role" gorm:"size:20;default:ghost"`
	State        string    `json:"state" gorm:"size:20;default:ok"`
	TevScore     float64   `json:"tev_score" gorm:"default:0"`
	DailyStreak  int       `json:"daily_streak" gorm:"default:0"`
	LastActiveAt time.Time `json:"last_active_at"`

	InvitationsGrantedTotal int `json:"invitations_granted_total" gorm:"default:3"`
	InvitationsUsed         int `json:"invitations_used" gorm:"default:0"`
}

// BeforeCreate stamps activity so a fresh profile is never "inactive
// since zero time"
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.LastActiveAt.IsZero() {
		p.LastActiveAt = time.Now().UTC()
	}
	return nil
}

// TableName returns the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}

// InvitationsRemaining returns how many invitations the profile can
// still send
func (p *Profile) InvitationsRemaining() int {
	remaining := p.InvitationsGrantedTotal - p.InvitationsUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// LevelLabel returns the display label for the profile's score band
func (p *Profile) LevelLabel() string {
	return LevelForScore(p.TevScore)
}

// LevelForScore maps a score onto its band label
func LevelForScore(score float64) string {
	label := levelBands[0].Label
	for _, band := range levelBands {
		if score >= band.Threshold {
			label = band.Label
		}
	}
	return label
}

// LevelProgress returns how far (0..100) the score has advanced
// through its current band. The top band always reports 100.
func LevelProgress(score float64) float64 {
	for i := len(levelBands) - 1; i >= 0; i-- {
		if score < levelBands[i].Threshold {
			continue
		}
		if i == len(levelBands)-1 {
			return 100
		}
		lower := levelBands[i].Threshold
		upper := levelBands[i+1].Threshold
		pct := (score - lower) / (upper - lower) * 100
		if pct < 0 {
			return 0
		}
		if pct > 100 {
			return 100
		}
		return pct
	}
	return 0
}
