package models

// AllModels returns every model registered for auto-migration
func AllModels() []interface{} {
	return []interface{}{
		&Episode{},
		&Shard{},
		&PublishedShard{},
		&Profile{},
		&Invitation{},
		&VoteEvent{},
	}
}
