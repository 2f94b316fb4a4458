package domain

import "errors"

var (
	// Caller errors. Surfaced to the HTTP edge.
	ErrInvalidParameters = errors.New("invalid parameters")
	ErrOriginNotFound    = errors.New("origin not found")
	ErrUnsupportedArea   = errors.New("location outside supported prayer area")

	// Upstream failures. The mosque pipeline always absorbs these via fallback.
	ErrProviderUnavailable = errors.New("provider unavailable")
)
