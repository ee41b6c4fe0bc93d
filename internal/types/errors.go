package types

import "errors"

// Domain specific errors for search fallback and review submission.
var (
	ErrNotFound          = errors.New("requested item not found")
	ErrBadRequest        = errors.New("bad request")
	ErrNoCredential      = errors.New("no places api credential configured")
	ErrRemoteUnavailable = errors.New("place search service unavailable")
	ErrRemoteEmpty       = errors.New("place search returned no places")
	ErrInvalidReview     = errors.New("review rating is required")
)
