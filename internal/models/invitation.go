package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invitation states
const (
	InvitationStatePending  = "pending"
	InvitationStateAccepted = "accepted"
	InvitationStateRevoked  = "revoked"
	InvitationStateExpired  = "expired"
)

// Invitation is a single-use invite code sent by a profile
type Invitation struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	InviterID string  `json:"inviter_id" gorm:"not null;index;size:64"`
	InviteeID *string `json:"invitee_id,omitempty" gorm:"size:64"`
	Email     string  `json:"email" gorm:"not null;size:255"`
	Code      string  `json:"code" gorm:"uniqueIndex;not null;size:20"`
	State     string  `json:"state" gorm:"size:20;default:pending"`

	ExpiresAt  time.Time  `json:"expires_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
}

// BeforeCreate generates an ID before creating a new invitation
func (i *Invitation) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Invitation model
func (Invitation) TableName() string {
	return "invitations"
}

// EffectiveState folds expiry into the stored state so callers see
// "expired" without a background sweeper having run
func (i *Invitation) EffectiveState(now time.Time) string {
	if i.State == InvitationStatePending && now.After(i.ExpiresAt) {
		return InvitationStateExpired
	}
	return i.State
}
