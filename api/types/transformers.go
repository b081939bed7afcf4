package types

import (
	"time"

	"github.com/vocalog/diary-api/internal/models"
)

// ISOTime formats a timestamp the way clients expect: UTC RFC3339
// with the Z suffix
func ISOTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ISOTimePtr formats an optional timestamp, keeping nil as nil
func ISOTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := ISOTime(*t)
	return &s
}

// ProfileToOut transforms a profile row into its wire form
func ProfileToOut(p *models.Profile) ProfileOut {
	return ProfileOut{
		ID:           p.ID,
		CreatedAt:    ISOTime(p.CreatedAt),
		UpdatedAt:    ISOTime(p.UpdatedAt),
		Role:         p.Role,
		State:        p.State,
		TevScore:     p.TevScore,
		DailyStreak:  p.DailyStreak,
		LastActiveAt: ISOTime(p.LastActiveAt),

		InvitationsGrantedTotal: p.InvitationsGrantedTotal,
		InvitationsUsed:         p.InvitationsUsed,
		InvitationsRemaining:    p.InvitationsRemaining(),
	}
}

// InvitationToOut transforms an invitation row into its wire form,
// reporting the effective state as of now
func InvitationToOut(inv *models.Invitation) InvitationOut {
	return InvitationOut{
		ID:         inv.ID,
		CreatedAt:  ISOTime(inv.CreatedAt),
		UpdatedAt:  ISOTime(inv.UpdatedAt),
		InviterID:  inv.InviterID,
		InviteeID:  inv.InviteeID,
		Email:      inv.Email,
		Code:       inv.Code,
		State:      inv.EffectiveState(time.Now().UTC()),
		ExpiresAt:  ISOTime(inv.ExpiresAt),
		AcceptedAt: ISOTimePtr(inv.AcceptedAt),
		RevokedAt:  ISOTimePtr(inv.RevokedAt),
	}
}

// InvitationsToOut transforms a list of invitations
func InvitationsToOut(invitations []models.Invitation) []InvitationOut {
	out := make([]InvitationOut, 0, len(invitations))
	for i := range invitations {
		out = append(out, InvitationToOut(&invitations[i]))
	}
	return out
}
