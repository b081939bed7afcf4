package profiles

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vocalog/diary-api/internal/models"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements ProfileRepository interface
var _ ProfileRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("profile", id)
		}
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	return &profile, nil
}

// GetOrCreateProfile returns the profile, creating it with defaults on
// first contact. Uses the same defaults as the lazy ensure on the
// publish path.
func (r *Repository) GetOrCreateProfile(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Attrs(models.Profile{
			ID:                      id,
			Role:                    models.ProfileRoleGhost,
			State:                   models.ProfileStateOK,
			InvitationsGrantedTotal: models.DefaultInvitationsGranted,
			LastActiveAt:            time.Now().UTC(),
		}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, fmt.Errorf("ensuring profile: %w", err)
	}
	return &profile, nil
}

func (r *Repository) SaveProfile(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// CreateInvitation stores the invitation and consumes one credit in
// the same transaction. A conditional update guards the budget, so two
// racing requests cannot spend the same credit.
func (r *Repository) CreateInvitation(ctx context.Context, invitation *models.Invitation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Profile{}).
			Where("id = ? AND invitations_used < invitations_granted_total", invitation.InviterID).
			UpdateColumn("invitations_used", gorm.Expr("invitations_used + 1"))
		if result.Error != nil {
			return fmt.Errorf("consuming invitation credit: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNoInvitationsRemaining
		}

		if err := tx.Create(invitation).Error; err != nil {
			return fmt.Errorf("creating invitation: %w", err)
		}
		return nil
	})
}

func (r *Repository) ListInvitationsByInviter(ctx context.Context, inviterID string) ([]models.Invitation, error) {
	var invitations []models.Invitation
	err := r.db.WithContext(ctx).
		Where("inviter_id = ?", inviterID).
		Order("created_at DESC").
		Find(&invitations).Error
	if err != nil {
		return nil, fmt.Errorf("listing invitations: %w", err)
	}
	return invitations, nil
}

func (r *Repository) GetVoteEventsBetween(ctx context.Context, profileID string, from, to time.Time) ([]models.VoteEvent, error) {
	var events []models.VoteEvent
	err := r.db.WithContext(ctx).
		Where("profile_id = ? AND created_at >= ? AND created_at < ?", profileID, from, to).
		Order("created_at ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("listing vote events: %w", err)
	}
	return events, nil
}

func (r *Repository) GetPublicationsBetween(ctx context.Context, profileID string, from, to time.Time) ([]models.PublishedShard, error) {
	var entries []models.PublishedShard
	err := r.db.WithContext(ctx).
		Where("profile_id = ? AND published_at >= ? AND published_at < ?", profileID, from, to).
		Order("published_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("listing publications: %w", err)
	}
	return entries, nil
}

func (r *Repository) RecordVote(ctx context.Context, event *models.VoteEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("recording vote event: %w", err)
	}
	return nil
}
