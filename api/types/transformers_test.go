package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vocalog/diary-api/internal/models"
)

func TestProfileToOut(t *testing.T) {
	created := time.Date(2026, 2, 10, 8, 30, 0, 0, time.UTC)
	active := time.Date(2026, 3, 1, 19, 4, 5, 0, time.UTC)

	profile := &models.Profile{
		ID:                      "local_profile_1",
		CreatedAt:               created,
		UpdatedAt:               active,
		Role:                    models.ProfileRoleGhost,
		State:                   models.ProfileStateOK,
		TevScore:                42.5,
		DailyStreak:             3,
		LastActiveAt:            active,
		InvitationsGrantedTotal: 3,
		InvitationsUsed:         1,
	}

	out := ProfileToOut(profile)

	assert.Equal(t, "local_profile_1", out.ID)
	assert.Equal(t, "2026-02-10T08:30:00Z", out.CreatedAt)
	assert.Equal(t, "2026-03-01T19:04:05Z", out.LastActiveAt)
	assert.Equal(t, "ghost", out.Role)
	assert.Equal(t, "ok", out.State)
	assert.Equal(t, 42.5, out.TevScore)
	assert.Equal(t, 3, out.DailyStreak)
	assert.Equal(t, 3, out.InvitationsGrantedTotal)
	assert.Equal(t, 1, out.InvitationsUsed)
	assert.Equal(t, 2, out.InvitationsRemaining)
}

func TestProfileToOutClampsRemaining(t *testing.T) {
	profile := &models.Profile{
		ID:                      "p1",
		InvitationsGrantedTotal: 2,
		InvitationsUsed:         5,
	}

	out := ProfileToOut(profile)
	assert.Equal(t, 0, out.InvitationsRemaining)
}

func TestInvitationToOut(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	accepted := created.Add(2 * time.Hour)
	invitee := "guest-1"

	inv := &models.Invitation{
		ID:         "inv-1",
		CreatedAt:  created,
		UpdatedAt:  accepted,
		InviterID:  "local_profile_1",
		InviteeID:  &invitee,
		Email:      "amiga@example.com",
		Code:       "ABC123",
		State:      models.InvitationStateAccepted,
		ExpiresAt:  created.Add(14 * 24 * time.Hour),
		AcceptedAt: &accepted,
	}

	out := InvitationToOut(inv)

	assert.Equal(t, "inv-1", out.ID)
	assert.Equal(t, "local_profile_1", out.InviterID)
	assert.Equal(t, "amiga@example.com", out.Email)
	assert.Equal(t, "accepted", out.State)
	assert.Equal(t, "2026-03-01T14:00:00Z", *out.AcceptedAt)
	assert.Nil(t, out.RevokedAt)
	assert.Equal(t, "guest-1", *out.InviteeID)
}

func TestInvitationToOutReportsExpired(t *testing.T) {
	inv := &models.Invitation{
		ID:        "inv-2",
		InviterID: "p1",
		Email:     "late@example.com",
		Code:      "ZZZ999",
		State:     models.InvitationStatePending,
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}

	out := InvitationToOut(inv)
	assert.Equal(t, "expired", out.State)
}

func TestInvitationsToOutEmpty(t *testing.T) {
	out := InvitationsToOut(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
