package search

import (
	"context"

	"github.com/kailas-cloud/unisearch/internal/domain/search/candidate"
	"github.com/kailas-cloud/unisearch/internal/domain/search/event"
	"github.com/kailas-cloud/unisearch/internal/domain/search/query"
)

// Retriever produces scored, filtered candidates of one kind for a query.
type Retriever interface {
	Retrieve(ctx context.Context, q query.Query) ([]candidate.Candidate, error)
}

// EventEmitter delivers search events to the analytics collaborator.
// Emission is best-effort; failures are logged and swallowed.
type EventEmitter interface {
	Emit(ctx context.Context, ev event.Event) error
}
