package shards

import (
	"github.com/vocalog/diary-api/internal/models"
)

// IsReadyToPublish reports whether a shard may be published. Readiness
// can be signalled three ways because user edits and machine passes
// land in different sub-documents: the user marks the shard ready in
// analysis.user.status, a machine pass promotes meta.status, or a
// machine pass sets meta.publishState. Any one of them suffices.
func IsReadyToPublish(analysis models.AnalysisDocument, meta models.MetaDocument) bool {
	if analysis.User != nil && analysis.User.Status == models.ShardStatusReadyToPublish {
		return true
	}

	switch meta.Status {
	case models.ShardStatusReadyToPublish, models.ShardStatusReviewed:
		return true
	}

	switch meta.PublishState {
	case models.PublishStateReady, models.PublishStateReadyToPublish:
		return true
	}

	return false
}
