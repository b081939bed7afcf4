package profiles

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"time"

	"github.com/vocalog/diary-api/internal/models"
)

// Service implements ProfileService
type Service struct {
	repository ProfileRepository
}

// Ensure Service implements ProfileService interface
var _ ProfileService = (*Service)(nil)

// NewService creates a new profile service
func NewService(repository ProfileRepository) *Service {
	return &Service{repository: repository}
}

// GetOrCreateProfile returns the profile, creating a default one on
// first contact
func (s *Service) GetOrCreateProfile(ctx context.Context, id string) (*models.Profile, error) {
	if id == "" {
		return nil, NewValidationError("id", "profile id is required")
	}
	return s.repository.GetOrCreateProfile(ctx, id)
}

// TouchActivity stamps the profile's activity and maintains the daily
// streak: another touch on the same UTC day changes nothing, a touch
// on the next day extends the streak, and a longer gap restarts it.
func (s *Service) TouchActivity(ctx context.Context, id string) (*models.Profile, error) {
	profile, err := s.GetOrCreateProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	gap := int(utcDate(now).Sub(utcDate(profile.LastActiveAt)).Hours() / 24)
	switch {
	case gap <= 0:
		// same day (or clock skew), streak unchanged
	case gap == 1:
		profile.DailyStreak++
	default:
		profile.DailyStreak = 1
	}
	profile.LastActiveAt = now

	if err := s.repository.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// CreateInvitation issues a pending invitation against the inviter's
// budget. The credit is consumed atomically with the insert; an
// exhausted budget surfaces as ErrNoInvitationsRemaining.
func (s *Service) CreateInvitation(ctx context.Context, inviterID, email string) (*models.Invitation, error) {
	if email == "" {
		return nil, NewValidationError("email", "email is required")
	}

	inviter, err := s.GetOrCreateProfile(ctx, inviterID)
	if err != nil {
		return nil, err
	}

	code, err := generateInviteCode()
	if err != nil {
		return nil, fmt.Errorf("generating invitation code: %w", err)
	}

	invitation := &models.Invitation{
		InviterID: inviter.ID,
		Email:     email,
		Code:      code,
		State:     models.InvitationStatePending,
		ExpiresAt: time.Now().UTC().Add(InvitationTTL),
	}
	if err := s.repository.CreateInvitation(ctx, invitation); err != nil {
		return nil, err
	}

	log.Printf("[INFO] Profile %s created invitation %s for %s", inviter.ID, invitation.ID, email)
	return invitation, nil
}

// ListInvitations returns the profile's invitations, newest first
func (s *Service) ListInvitations(ctx context.Context, profileID string) ([]models.Invitation, error) {
	return s.repository.ListInvitationsByInviter(ctx, profileID)
}

// RecordVote stores a gamification event for the profile
func (s *Service) RecordVote(ctx context.Context, profileID, shardID, direction string) error {
	switch direction {
	case models.VoteUp, models.VoteDown, models.VoteReview:
	default:
		return NewValidationError("direction", fmt.Sprintf("unknown vote direction %q", direction))
	}

	profile, err := s.GetOrCreateProfile(ctx, profileID)
	if err != nil {
		return err
	}

	return s.repository.RecordVote(ctx, &models.VoteEvent{
		ProfileID: profile.ID,
		ShardID:   shardID,
		Direction: direction,
	})
}

// ProgressSummaryForDate reconstructs the given day's progress,
// anchored at the profile's current score
func (s *Service) ProgressSummaryForDate(ctx context.Context, profileID string, day time.Time) (*ProgressSummary, error) {
	profile, err := s.repository.GetProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	from, to := dayWindow(day)
	votes, err := s.repository.GetVoteEventsBetween(ctx, profileID, from, to)
	if err != nil {
		return nil, err
	}
	publications, err := s.repository.GetPublicationsBetween(ctx, profileID, from, to)
	if err != nil {
		return nil, err
	}

	summary := summarizeDay(day, profile.TevScore, votes, publications)
	return &summary, nil
}

// ProgressHistory returns the last days summaries, today first. Each
// earlier day is anchored at the later day's reconstructed start, so
// the score walks back consistently through the whole window.
func (s *Service) ProgressHistory(ctx context.Context, profileID string, days int) ([]ProgressSummary, error) {
	if days <= 0 {
		days = DefaultHistoryDays
	}

	profile, err := s.repository.GetProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	today := utcDate(time.Now())
	from := today.AddDate(0, 0, -(days - 1))
	to := today.AddDate(0, 0, 1)

	votes, err := s.repository.GetVoteEventsBetween(ctx, profileID, from, to)
	if err != nil {
		return nil, err
	}
	publications, err := s.repository.GetPublicationsBetween(ctx, profileID, from, to)
	if err != nil {
		return nil, err
	}

	votesByDay := make(map[time.Time][]models.VoteEvent)
	for _, event := range votes {
		key := utcDate(event.CreatedAt)
		votesByDay[key] = append(votesByDay[key], event)
	}
	publicationsByDay := make(map[time.Time][]models.PublishedShard)
	for _, entry := range publications {
		key := utcDate(entry.PublishedAt)
		publicationsByDay[key] = append(publicationsByDay[key], entry)
	}

	summaries := make([]ProgressSummary, 0, days)
	scoreEnd := profile.TevScore
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, -i)
		summary := summarizeDay(day, scoreEnd, votesByDay[day], publicationsByDay[day])
		summaries = append(summaries, summary)
		scoreEnd = summary.TevScoreStart
	}

	return summaries, nil
}

// generateInviteCode returns a random uppercase base32 code
func generateInviteCode() (string, error) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

	buf := make([]byte, InvitationCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf), nil
}

// Constants for default configuration
const (
	// InvitationTTL is how long an invitation stays redeemable
	InvitationTTL = 14 * 24 * time.Hour

	// InvitationCodeLength is the invite code length in characters
	InvitationCodeLength = 10

	// DefaultHistoryDays is the progress history window
	DefaultHistoryDays = 30
)
