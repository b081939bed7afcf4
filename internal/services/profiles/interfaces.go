package profiles

import (
	"context"
	"time"

	"github.com/vocalog/diary-api/internal/models"
)

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	GetProfileByID(ctx context.Context, id string) (*models.Profile, error)
	GetOrCreateProfile(ctx context.Context, id string) (*models.Profile, error)
	SaveProfile(ctx context.Context, profile *models.Profile) error

	CreateInvitation(ctx context.Context, invitation *models.Invitation) error
	ListInvitationsByInviter(ctx context.Context, inviterID string) ([]models.Invitation, error)

	GetVoteEventsBetween(ctx context.Context, profileID string, from, to time.Time) ([]models.VoteEvent, error)
	GetPublicationsBetween(ctx context.Context, profileID string, from, to time.Time) ([]models.PublishedShard, error)
	RecordVote(ctx context.Context, event *models.VoteEvent) error
}

// ProfileService defines the profile, invitation and progress
// operations
type ProfileService interface {
	GetOrCreateProfile(ctx context.Context, id string) (*models.Profile, error)
	TouchActivity(ctx context.Context, id string) (*models.Profile, error)
	CreateInvitation(ctx context.Context, inviterID, email string) (*models.Invitation, error)
	ListInvitations(ctx context.Context, profileID string) ([]models.Invitation, error)
	RecordVote(ctx context.Context, profileID, shardID, direction string) error
	ProgressSummaryForDate(ctx context.Context, profileID string, day time.Time) (*ProgressSummary, error)
	ProgressHistory(ctx context.Context, profileID string, days int) ([]ProgressSummary, error)
}
