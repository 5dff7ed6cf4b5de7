package resolver

import "errors"

// Terminal request-side failures. Provider-side failures are surfaced
// unchanged from the provider package so callers can tell the kinds apart.
var (
	// ErrInvalidRequest means a required key field is missing or invalid.
	// No cache or provider call has happened.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound means the referenced subject or pre-authored content
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmptyGeneration means the provider returned only whitespace.
	// The empty result is never cached.
	ErrEmptyGeneration = errors.New("provider generated empty content")
)
