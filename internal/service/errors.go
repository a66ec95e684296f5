package service

import (
	"errors"
	"fmt"
)

// Store / input errors.
var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrInvalidRating  = errors.New("rating must be an integer between 1 and 5")
)

// Caption service errors, one per user-distinguishable cause.
var (
	ErrInvalidCredentials = errors.New("caption service rejected the API credentials")
	ErrCaptionTimeout     = errors.New("caption request timed out")
	ErrCaptionNetwork     = errors.New("caption service unreachable")
)

// ErrStorageUnavailable is returned when no image storage is configured.
var ErrStorageUnavailable = errors.New("image storage is not configured")

// ValidationError reports malformed filter or review input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// UpstreamError carries the caption service's own error message for
// failures that are neither auth, timeout, nor transport problems.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("caption service error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("caption service error (status %d)", e.StatusCode)
}
