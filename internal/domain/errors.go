package domain

import "errors"

var (
	// ErrInvalidQuery signals a query rejected before any retrieval.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrCatalogUnavailable signals that a kind's catalog provider could not be reached.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrKindTimeout signals a kind that missed the overall search deadline.
	ErrKindTimeout = errors.New("kind timed out")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
)
