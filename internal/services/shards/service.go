package shards

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/vocalog/diary-api/internal/models"
)

// Service implements the ShardService interface with the lifecycle
// rules: readiness, user-edit merge, publish, soft delete, and the
// merge-on-write analysis persistence every write path shares.
type Service struct {
	repository      ShardRepository
	analysisVersion string
}

// Ensure Service implements ShardService interface
var _ ShardService = (*Service)(nil)

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithAnalysisVersion overrides the version stamped into new shard
// meta documents
func WithAnalysisVersion(version string) ServiceOption {
	return func(s *Service) {
		if version != "" {
			s.analysisVersion = version
		}
	}
}

func NewService(repository ShardRepository, opts ...ServiceOption) *Service {
	s := &Service{
		repository:      repository,
		analysisVersion: DefaultAnalysisVersion,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateShard persists a freshly captured recording with its default
// meta and neutral analysis documents. Enrichment runs later; until
// then the shard reads as a raw, neutral moment.
func (s *Service) CreateShard(ctx context.Context, params CreateShardParams) (*models.Shard, error) {
	exists, err := s.repository.EpisodeExists(ctx, params.EpisodeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, NewNotFoundError("episode", params.EpisodeID)
	}

	source := params.Source
	if source == "" {
		source = models.ShardSourceMic
	}

	start := params.StartTime
	end := params.EndTime
	if end <= 0 && params.Features.Duration != nil && *params.Features.Duration > 0 {
		// Clients that stream without a timeline send end_time 0
		end = start + *params.Features.Duration
	}

	now := time.Now().UTC()
	intensity := 1.0
	meta := models.MetaDocument{
		CreatedAt:       now.Format(time.RFC3339),
		InputSource:     source,
		Intensity:       &intensity,
		Status:          models.ShardStatusRaw,
		AudioPath:       params.AudioPath,
		AnalysisSource:  models.AnalysisSourceLocal,
		AnalysisMode:    models.AnalysisModeAuto,
		AnalysisVersion: s.analysisVersion,
	}
	analysis := models.AnalysisDocument{
		Emotion: &models.EmotionBlock{
			Primary:    models.EmotionNeutral,
			Valence:    models.ValenceNeutral,
			Activation: models.ActivationMedium,
		},
		Semantic: &models.SemanticBlock{
			Summary:    "",
			Topics:     []string{},
			MomentType: models.MomentTypeOther,
		},
	}

	shard := &models.Shard{
		ID:        params.ShardID,
		EpisodeID: &params.EpisodeID,
		StartTime: &start,
		EndTime:   &end,
		Source:    source,
	}
	if err := shard.SetMetaDoc(meta); err != nil {
		return nil, fmt.Errorf("encoding meta: %w", err)
	}
	if err := shard.SetFeatureDoc(params.Features); err != nil {
		return nil, fmt.Errorf("encoding features: %w", err)
	}
	if err := shard.SetAnalysisDoc(analysis); err != nil {
		return nil, fmt.Errorf("encoding analysis: %w", err)
	}

	if err := s.repository.CreateShard(ctx, shard); err != nil {
		return nil, err
	}

	log.Printf("[INFO] Created shard %s in episode %s", shard.ID, params.EpisodeID)
	return shard, nil
}

// EpisodeExists reports whether an episode can accept new shards.
// The capture handler checks this before writing audio to disk.
func (s *Service) EpisodeExists(ctx context.Context, episodeID string) (bool, error) {
	return s.repository.EpisodeExists(ctx, episodeID)
}

// GetShard retrieves a shard by ID
func (s *Service) GetShard(ctx context.Context, id string) (*models.Shard, error) {
	return s.repository.GetShardByID(ctx, id)
}

// UpdateShard shallow-merges the non-nil request fields into
// analysis.user. When the merged status reads readyToPublish it is
// mirrored into meta.status and meta.publishState so machine-side
// readers agree with the user's intent.
func (s *Service) UpdateShard(ctx context.Context, id string, req UpdateShardRequest) (*models.Shard, error) {
	shard, err := s.repository.GetShardByID(ctx, id)
	if err != nil {
		return nil, err
	}

	analysis, err := shard.AnalysisDoc()
	if err != nil {
		return nil, fmt.Errorf("decoding analysis: %w", err)
	}

	user := models.UserEdits{}
	if analysis.User != nil {
		user = *analysis.User
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.UserTags != nil {
		user.UserTags = req.UserTags
	}
	if req.UserNotes != nil {
		user.UserNotes = *req.UserNotes
	}
	if req.TranscriptOverride != nil {
		user.TranscriptOverride = *req.TranscriptOverride
	}
	analysis.User = &user

	if err := shard.SetAnalysisDoc(analysis); err != nil {
		return nil, fmt.Errorf("encoding analysis: %w", err)
	}

	if user.Status == models.ShardStatusReadyToPublish {
		meta, err := shard.MetaDoc()
		if err != nil {
			return nil, fmt.Errorf("decoding meta: %w", err)
		}
		meta.Status = models.ShardStatusReadyToPublish
		meta.PublishState = models.PublishStateReadyToPublish
		if err := shard.SetMetaDoc(meta); err != nil {
			return nil, fmt.Errorf("encoding meta: %w", err)
		}
	}

	if err := s.repository.UpdateShard(ctx, shard); err != nil {
		return nil, err
	}

	return shard, nil
}

// PublishShardForProfile runs the publish gate in order: the shard
// must exist, must not be deleted, and must be ready unless force is
// set. Then the analysis is stamped published and the profile's feed
// entry upserted.
func (s *Service) PublishShardForProfile(ctx context.Context, profileID, shardID string, force bool) (*PublishResult, error) {
	shard, err := s.repository.GetShardByID(ctx, shardID)
	if err != nil {
		return nil, err
	}

	analysis, err := shard.AnalysisDoc()
	if err != nil {
		return nil, fmt.Errorf("decoding analysis: %w", err)
	}
	if analysis.IsDeleted() {
		return nil, ErrAlreadyDeleted
	}

	meta, err := shard.MetaDoc()
	if err != nil {
		return nil, fmt.Errorf("decoding meta: %w", err)
	}
	if !force && !IsReadyToPublish(analysis, meta) {
		return nil, ErrNotReady
	}

	published := models.PublishStatePublished
	analysis.PublishState = &published
	if err := shard.SetAnalysisDoc(analysis); err != nil {
		return nil, fmt.Errorf("encoding analysis: %w", err)
	}

	entry, err := s.repository.PublishShard(ctx, profileID, shard)
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] Published shard %s for profile %s (force=%v)", shardID, profileID, force)
	return &PublishResult{Entry: entry, Shard: shard}, nil
}

// DeleteShard soft-deletes the shard and retires the acting profile's
// feed entry atomically. publishState is left untouched so the
// document still records that the shard was once published.
func (s *Service) DeleteShard(ctx context.Context, profileID, shardID, reason string) (*models.Shard, error) {
	shard, err := s.repository.GetShardByID(ctx, shardID)
	if err != nil {
		return nil, err
	}

	analysis, err := shard.AnalysisDoc()
	if err != nil {
		return nil, fmt.Errorf("decoding analysis: %w", err)
	}

	if reason == "" {
		reason = DefaultDeleteReason
	}
	deleted := true
	deletedAt := time.Now().UTC().Format(time.RFC3339)
	analysis.Deleted = &deleted
	analysis.DeletedReason = &reason
	analysis.DeletedAt = &deletedAt

	if err := shard.SetAnalysisDoc(analysis); err != nil {
		return nil, fmt.Errorf("encoding analysis: %w", err)
	}

	if err := s.repository.RetireAndSave(ctx, profileID, shard); err != nil {
		return nil, err
	}

	log.Printf("[INFO] Soft-deleted shard %s (reason=%s)", shardID, reason)
	return shard, nil
}

// ApplyAnalysis is the merge-on-write persistence path shared by
// enrichment, the synchronous analyze endpoint and seeding. The new
// document always goes through MergeAnalysis against the stored one,
// so a background pass can never erase user edits or lifecycle flags.
func (s *Service) ApplyAnalysis(ctx context.Context, shardID string, update AnalysisUpdate) (*models.Shard, error) {
	shard, err := s.repository.GetShardByID(ctx, shardID)
	if err != nil {
		return nil, err
	}

	prev, err := shard.AnalysisDoc()
	if err != nil {
		log.Printf("[WARN] Replacing undecodable analysis document on shard %s: %v", shardID, err)
		prev = models.AnalysisDocument{}
	}

	merged := models.MergeAnalysis(prev, update.Analysis)
	if err := shard.SetAnalysisDoc(merged); err != nil {
		return nil, fmt.Errorf("encoding analysis: %w", err)
	}
	if update.Meta != nil {
		if err := shard.SetMetaDoc(*update.Meta); err != nil {
			return nil, fmt.Errorf("encoding meta: %w", err)
		}
	}

	if err := s.repository.UpdateShard(ctx, shard); err != nil {
		return nil, err
	}

	return shard, nil
}

// Constants for default configuration
const (
	DefaultAnalysisVersion = "0.1.0-local"
	DefaultDeleteReason    = "user_deleted"
)
