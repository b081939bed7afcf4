package wav

import "errors"

// Common errors
var (
	ErrInvalidHeader     = errors.New("invalid wav header")
	ErrTruncatedFile     = errors.New("wav file truncated")
	ErrUnsupportedFormat = errors.New("unsupported wav encoding")
	ErrNoAudioData       = errors.New("wav file contains no audio data")
)
