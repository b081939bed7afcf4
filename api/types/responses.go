package types

import (
	"github.com/vocalog/diary-api/internal/services/feed"
	"github.com/vocalog/diary-api/internal/services/profiles"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ErrorResponse is the error payload every endpoint returns. Error
// carries the stable machine code, Message the human-readable text.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ProfileOut is the wire form of a profile. Timestamps are ISO-8601
// strings in UTC.
type ProfileOut struct {
	ID           string  `json:"id"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
	Role         string  `json:"role"`
	State        string  `json:"state"`
	TevScore     float64 `json:"tevScore"`
	DailyStreak  int     `json:"dailyStreak"`
	LastActiveAt string  `json:"lastActiveAt"`

	InvitationsGrantedTotal int `json:"invitationsGrantedTotal"`
	InvitationsUsed         int `json:"invitationsUsed"`
	InvitationsRemaining    int `json:"invitationsRemaining"`
}

// InvitationOut is the wire form of an invitation. State folds expiry
// in, so a pending invite past its deadline reads "expired".
type InvitationOut struct {
	ID         string  `json:"id"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
	InviterID  string  `json:"inviterId"`
	InviteeID  *string `json:"inviteeId"`
	Email      string  `json:"email"`
	Code       string  `json:"code"`
	State      string  `json:"state"`
	ExpiresAt  string  `json:"expiresAt"`
	AcceptedAt *string `json:"acceptedAt"`
	RevokedAt  *string `json:"revokedAt"`
}

// MeResponse bundles everything the home screen needs in one call
type MeResponse struct {
	Profile            ProfileOut                  `json:"profile"`
	TodayProgress      profiles.ProgressSummary    `json:"todayProgress"`
	InvitationsSummary profiles.InvitationsSummary `json:"invitationsSummary"`
}

// MeProgressResponse is today's progress plus the recent history
type MeProgressResponse struct {
	Today   profiles.ProgressSummary   `json:"today"`
	History []profiles.ProgressSummary `json:"history"`
}

// MeInvitationsResponse lists the invitations the profile has sent
type MeInvitationsResponse struct {
	Invitations []InvitationOut `json:"invitations"`
}

// CreateInvitationResponse wraps a freshly created invitation
type CreateInvitationResponse struct {
	Invitation InvitationOut `json:"invitation"`
}

// FeedResponse wraps the profile's published items in publish order
type FeedResponse struct {
	Items []feed.FeedItem `json:"items"`
}
