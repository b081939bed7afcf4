package shards

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrShardNotFound   = errors.New("shard not found")
	ErrEpisodeNotFound = errors.New("episode not found")
	ErrNotReady        = errors.New("not_ready_to_publish")
	ErrAlreadyDeleted  = errors.New("Cannot publish a deleted shard")
	ErrInvalidInput    = errors.New("invalid input")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       interface{}
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s with identifier %v not found", e.Resource, e.ID)
}

func (e NotFoundError) Is(target error) bool {
	switch target {
	case ErrShardNotFound:
		return e.Resource == "shard"
	case ErrEpisodeNotFound:
		return e.Resource == "episode"
	}
	return false
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource string, id interface{}) error {
	return NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var notFoundErr NotFoundError
	return errors.As(err, &notFoundErr) ||
		errors.Is(err, ErrShardNotFound) ||
		errors.Is(err, ErrEpisodeNotFound)
}
